package reservation

import (
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrScheduleConflict    = errs.Reject(errs.KindConflict, "the requested time overlaps a class schedule")
	ErrReservationConflict = errs.Reject(errs.KindConflict, "the requested time overlaps an existing reservation")
)

// Booking is an interval held by a reservation in a blocking status.
type Booking struct {
	ID       uuid.UUID
	Interval timeslot.Interval
}

// Occupancy is everything that holds a resource on one date.
type Occupancy struct {
	Schedule     []timeslot.Interval
	Reservations []Booking
	// Exclude skips one reservation, used when re-checking a reservation against its peers.
	Exclude uuid.UUID
}

// FirstConflict returns the rejection for the first source overlapping interval, or nil.
// Class schedules are checked before reservations.
func (o Occupancy) FirstConflict(interval timeslot.Interval) error {
	for _, s := range o.Schedule {
		if s.Overlaps(interval) {
			return ErrScheduleConflict
		}
	}
	for _, b := range o.Reservations {
		if o.Exclude != uuid.Nil && b.ID == o.Exclude {
			continue
		}
		if b.Interval.Overlaps(interval) {
			return ErrReservationConflict
		}
	}
	return nil
}

func (o Occupancy) IsAvailable(interval timeslot.Interval) bool {
	return o.FirstConflict(interval) == nil
}
