package bootstrap

import (
	"context"
	"log/slog"

	"campus-booking/internal/infra/broker"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.Broker.URL == "" {
		slog.Info("AMQP_URL is not set, domain events are not published")
		return broker.NopPublisher{}, nil
	}

	publisher, err := broker.Dial(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
