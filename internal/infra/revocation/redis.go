package revocation

import (
	"context"
	"time"

	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisList stores revoked token ids as keys that expire together with the token.
type RedisList struct {
	client *redis.Client
	prefix string
	clock  clock.Clock
}

func NewRedisList(client *redis.Client, prefix string, clk clock.Clock) *RedisList {
	return &RedisList{client: client, prefix: prefix, clock: clk}
}

func (l *RedisList) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(l.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.prefix+tokenID, "1", ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store revoked token")
	}
	return nil
}

func (l *RedisList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+tokenID).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to look up revoked token")
	}
	return n > 0, nil
}
