package shared

import (
	"context"
	"time"

	"campus-booking/internal/domain/session"
)

// RevocationList remembers invalidated session token ids until they would have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Authenticator checks member credentials against the identity provider.
type Authenticator interface {
	Authenticate(ctx context.Context, creds session.Credentials) (session.Identity, error)
}

type EventType string

const (
	EventReservationCreated   EventType = "reservation.created"
	EventReservationCancelled EventType = "reservation.cancelled"
	EventReservationApproved  EventType = "reservation.approved"
	EventReservationRejected  EventType = "reservation.rejected"
	EventSeatCheckedIn        EventType = "seat.checked_in"
	EventSeatCheckedOut       EventType = "seat.checked_out"
)

// Event is published after the transaction that produced it commits.
type Event struct {
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	UserID     string         `json:"user_id"`
	ResourceID string         `json:"resource_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
