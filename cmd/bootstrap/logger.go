package bootstrap

import (
	"log/slog"

	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
	// installs the default slog logger before other modules log
	fx.Invoke(func(*middleware.Logger) {}),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
