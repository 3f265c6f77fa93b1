package components

import (
	"campus-booking/internal/handler"
	"campus-booking/internal/handler/api"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/cookie"
	"campus-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cmds commands.AuthCommands, opts cookie.Options, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(cmds, opts, cfg.Session.TTL)
		},
		api.NewReservationHandler,
		api.NewSeatHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
