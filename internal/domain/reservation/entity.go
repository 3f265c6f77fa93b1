package reservation

import (
	"strings"
	"time"
	"unicode/utf8"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxPurposeLength = 200

var (
	ErrPurposeRequired    = errs.Reject(errs.KindInvalidInput, "purpose is required")
	ErrPurposeTooLong     = errs.Reject(errs.KindInvalidInput, "purpose must be at most 200 characters")
	ErrAttendeesRequired  = errs.Reject(errs.KindInvalidInput, "attendees is required")
	ErrInvalidAttendees   = errs.Reject(errs.KindInvalidInput, "attendees must be at least 1")
	ErrCapacityExceeded   = errs.Reject(errs.KindInvalidInput, "attendees exceed the resource capacity")
	ErrAnonymousOwner     = errs.Reject(errs.KindUnauthenticated, "login required")
	ErrNotOwner           = errs.Reject(errs.KindForbidden, "only the owner can cancel this reservation")
	ErrNotCancellable     = errs.Reject(errs.KindConflict, "reservation is not in a cancellable status")
	ErrNotPending         = errs.Reject(errs.KindConflict, "reservation is not pending")
	ErrInvalidInitialStep = errs.Reject(errs.KindInvalidInput, "reservation must start as pending or approved")
)

type Reservation struct {
	id         uuid.UUID
	resourceID string
	userID     string
	userName   string
	date       time.Time
	interval   timeslot.Interval
	purpose    string
	attendees  *int
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// Draft holds the validated fields of a reservation about to be created.
type Draft struct {
	ResourceID string
	Owner      session.Identity
	Date       time.Time
	Interval   timeslot.Interval
	Purpose    string
	Attendees  *int
	Status     Status
}

func New(d Draft, now time.Time) (*Reservation, error) {
	if !d.Owner.Authenticated() {
		return nil, ErrAnonymousOwner
	}
	if d.Status != StatusPending && d.Status != StatusApproved {
		return nil, ErrInvalidInitialStep
	}
	return &Reservation{
		id:         uuid.New(),
		resourceID: d.ResourceID,
		userID:     d.Owner.UserID,
		userName:   d.Owner.DisplayName,
		date:       d.Date,
		interval:   d.Interval,
		purpose:    strings.TrimSpace(d.Purpose),
		attendees:  d.Attendees,
		status:     d.Status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Restore rebuilds a persisted reservation without validation.
func Restore(
	id uuid.UUID,
	resourceID, userID, userName string,
	date time.Time,
	interval timeslot.Interval,
	purpose string,
	attendees *int,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		userName:   userName,
		date:       date,
		interval:   interval,
		purpose:    purpose,
		attendees:  attendees,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) Cancel(requesterID string, now time.Time) error {
	if r.userID != requesterID {
		return ErrNotOwner
	}
	if !r.status.Cancellable() {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) Approve(now time.Time) error {
	return r.decide(StatusApproved, now)
}

func (r *Reservation) Reject(now time.Time) error {
	return r.decide(StatusRejected, now)
}

func (r *Reservation) decide(to Status, now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID { return r.id }
func (r *Reservation) ResourceID() string { return r.resourceID }
func (r *Reservation) UserID() string { return r.userID }
func (r *Reservation) UserName() string { return r.userName }
func (r *Reservation) Date() time.Time { return r.date }
func (r *Reservation) Interval() timeslot.Interval { return r.interval }
func (r *Reservation) Purpose() string { return r.purpose }
func (r *Reservation) Attendees() *int { return r.attendees }
func (r *Reservation) Status() Status { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// CheckPurpose validates the free-text purpose. An empty purpose is allowed unless required.
func CheckPurpose(purpose string, required bool) error {
	p := strings.TrimSpace(purpose)
	if p == "" {
		if required {
			return ErrPurposeRequired
		}
		return nil
	}
	if utf8.RuneCountInString(p) > MaxPurposeLength {
		return ErrPurposeTooLong
	}
	return nil
}

// CheckCapacity validates the attendee count against the resource capacity.
// A nil capacity means the resource has no limit.
func CheckCapacity(capacity, attendees *int, required bool) error {
	if attendees == nil {
		if required {
			return ErrAttendeesRequired
		}
		return nil
	}
	if *attendees < 1 {
		return ErrInvalidAttendees
	}
	if capacity != nil && *attendees > *capacity {
		return ErrCapacityExceeded
	}
	return nil
}
