package bootstrap

import (
	"context"
	"log/slog"

	"campus-booking/internal/infra/revocation"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/cookie"
	"campus-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewRevocationList,
		NewCookieOptions,
	),
)

// NewRevocationList keeps revoked sessions in Redis when REDIS_URL is set, in process otherwise.
func NewRevocationList(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.RevocationList, error) {
	if cfg.Redis.URL == "" {
		slog.Warn("REDIS_URL is not set, revoked sessions are kept in process memory")
		return revocation.NewMemoryList(clk), nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return revocation.NewRedisList(client, cfg.Redis.KeyPrefix, clk), nil
}

func NewCookieOptions(cfg config.Config) cookie.Options {
	return cookie.NewOptions(cfg.Session, cfg.Server.IsProduction())
}
