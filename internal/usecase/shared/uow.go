package shared

import (
	"context"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTxContention is returned when a serializable transaction kept failing after its retries.
var ErrTxContention = errs.Reject(errs.KindConflict, "the resource is busy, please try again")

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	SeatUsages() SeatUsageRepository
	AuditLog() AuditLogRepository
	Reads() Reads
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	UpdateStatus(ctx context.Context, res *reservation.Reservation) error
}

type SeatUsageRepository interface {
	Open(ctx context.Context, usage occupancy.Usage) error
	Close(ctx context.Context, usage occupancy.Usage) error
}

type AuditLogRepository interface {
	Append(ctx context.Context, entry AuditEntry) error
}

// Reads is the query surface shared by commands and queries. Inside Within it observes the transaction.
type Reads interface {
	Resource(ctx context.Context, id string) (*resource.Resource, error)
	SeatResource(ctx context.Context, seatNumber int) (*resource.Resource, error)
	Resources(ctx context.Context, filter ResourceFilter) ([]*resource.Resource, error)
	Semesters(ctx context.Context, date time.Time) (calendar.Table, error)
	ClassSchedule(ctx context.Context, filter ScheduleFilter) ([]ScheduleEntry, error)
	Reservations(ctx context.Context, filter ReservationFilter) ([]ReservationRow, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationRow, error)
	ReservationUsage(ctx context.Context, filter UsageFilter) (UsageTotals, error)
	OpenSeatUsages(ctx context.Context, filter SeatUsageFilter) ([]occupancy.Usage, error)
	SeatUsagesSince(ctx context.Context, userID string, since time.Time) ([]occupancy.Usage, error)
}
