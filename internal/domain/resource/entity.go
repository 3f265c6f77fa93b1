package resource

import (
	"strings"

	"campus-booking/internal/pkg/errs"
)

var (
	ErrUnknownKind     = errs.Reject(errs.KindInvalidInput, "resource kind must be one of classroom, study_room, reading_seat")
	ErrEmptyResourceID = errs.Reject(errs.KindInvalidInput, "resource id is required")
)

type Kind string

const (
	KindClassroom   Kind = "classroom"
	KindStudyRoom   Kind = "study_room"
	KindReadingSeat Kind = "reading_seat"
)

var Kinds = []Kind{KindClassroom, KindStudyRoom, KindReadingSeat}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindClassroom, KindStudyRoom, KindReadingSeat:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

func (k Kind) String() string {
	return string(k)
}

// Reservable reports whether the kind is booked by time interval.
// Reading seats are occupied by check-in instead.
func (k Kind) Reservable() bool {
	return k == KindClassroom || k == KindStudyRoom
}

// Resource is immutable reference data.
type Resource struct {
	id         string
	kind       Kind
	name       string
	capacity   *int
	seatNumber *int
}

func NewResource(id string, kind Kind, name string, capacity, seatNumber *int) (*Resource, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyResourceID
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return &Resource{
		id:         id,
		kind:       kind,
		name:       strings.TrimSpace(name),
		capacity:   capacity,
		seatNumber: seatNumber,
	}, nil
}

func (r *Resource) ID() string { return r.id }
func (r *Resource) Kind() Kind { return r.kind }
func (r *Resource) Name() string { return r.name }
func (r *Resource) Capacity() *int { return r.capacity }
func (r *Resource) SeatNumber() *int { return r.seatNumber }
