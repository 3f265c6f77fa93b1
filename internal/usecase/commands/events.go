package commands

import (
	"context"
	"log/slog"

	"campus-booking/internal/usecase/shared"
)

// publish runs after commit. The state change already happened, so a broker failure is only logged.
func publish(ctx context.Context, p shared.EventPublisher, event shared.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"type", string(event.Type),
			"user_id", event.UserID,
			"error", err.Error())
	}
}
