package shared

import (
	"time"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

type ResourceFilter struct {
	Kind resource.Kind
	IDs  []string
}

type ScheduleFilter struct {
	ResourceIDs  []string
	DayOfWeek    string
	SemesterCode string
}

// ScheduleEntry is one weekly class slot of the imported timetable.
type ScheduleEntry struct {
	ResourceID   string
	DayOfWeek    string
	Start        timeslot.TimeOfDay
	End          timeslot.TimeOfDay
	SemesterCode string
	CourseName   string
}

func (e ScheduleEntry) On(date time.Time) (timeslot.Interval, error) {
	return timeslot.OnDate(date, e.Start, e.End)
}

// ReservationFilter narrows reservation reads. Zero fields do not filter.
type ReservationFilter struct {
	ResourceIDs []string
	Date        *time.Time
	FromDate    *time.Time
	Statuses    []reservation.Status
	UserID      string
}

type ReservationRow struct {
	ID           uuid.UUID
	ResourceID   string
	ResourceName string
	ResourceKind resource.Kind
	UserID       string
	UserName     string
	Date         time.Time
	StartAt      time.Time
	EndAt        time.Time
	Purpose      string
	Attendees    *int
	Status       reservation.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r ReservationRow) Interval() timeslot.Interval {
	return timeslot.Interval{Start: r.StartAt, End: r.EndAt}
}

func (r ReservationRow) ToDomain() *reservation.Reservation {
	return reservation.Restore(
		r.ID,
		r.ResourceID, r.UserID, r.UserName,
		r.Date,
		r.Interval(),
		r.Purpose,
		r.Attendees,
		r.Status,
		r.CreatedAt, r.UpdatedAt,
	)
}

// UsageFilter selects a member's reservations of one kind starting within [From, To).
type UsageFilter struct {
	UserID   string
	Kind     resource.Kind
	Statuses []reservation.Status
	From     time.Time
	To       time.Time
}

type UsageTotals struct {
	Duration time.Duration
	Count    int
}

type SeatUsageFilter struct {
	SeatNumber *int
	UserID     string
}

type AuditAction string

const (
	AuditCreated   AuditAction = "created"
	AuditCancelled AuditAction = "cancelled"
	AuditApproved  AuditAction = "approved"
	AuditRejected  AuditAction = "rejected"
)

type AuditEntry struct {
	ReservationID uuid.UUID
	ResourceID    string
	UserID        string
	Action        AuditAction
	At            time.Time
}
