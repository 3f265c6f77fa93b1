package bootstrap

import (
	"time"

	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		clock.NewRealClock,
	),
)

// NewLocation is the campus time zone every date and slot is interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Server.Location()
}
