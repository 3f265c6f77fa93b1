package bootstrap

import (
	"errors"

	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	if cfg.Session.TTL <= 0 {
		return nil, errors.New("invalid SESSION_TTL: must be positive")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.TTL, clk), nil
}
