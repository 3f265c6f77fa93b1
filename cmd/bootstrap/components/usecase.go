package components

import (
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/usecase"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseSessionModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		func(
			u shared.UnitOfWork,
			policies policy.Set,
			cfg config.Config,
			publisher shared.EventPublisher,
			clk clock.Clock,
		) commands.ReservationCommands {
			return commands.NewReservationCommands(u, policies, cfg.Auth.AdminUserIDs, publisher, clk)
		},
		func(
			u shared.UnitOfWork,
			policies policy.Set,
			cfg config.Config,
			publisher shared.EventPublisher,
			clk clock.Clock,
		) commands.SeatCommands {
			return commands.NewSeatCommands(u, policies, cfg.Policy.SeatMinSession, publisher, clk)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(u shared.UnitOfWork, policies policy.Set, cfg config.Config, clk clock.Clock) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(u, policies, cfg.Policy.SlotGranularity, clk)
		},
		queries.NewReservationQueries,
		queries.NewResourceQueries,
		queries.NewSeatQueries,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionVerifier,
	),
)
