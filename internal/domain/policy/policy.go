// Package policy records the per-kind booking rules.
package policy

import (
	"slices"
	"time"

	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/errs"
)

var ErrUnsupportedKind = errs.Reject(errs.KindInvalidInput, "no booking policy for this resource kind")

var (
	ErrNoBlockingStatus   = errs.New("blocking statuses must not be empty")
	ErrApprovedNotBlocked = errs.New("blocking statuses must include approved")
	ErrInitialNotBlocked  = errs.New("blocking statuses must include the initial status")
)

type Policy struct {
	Kind resource.Kind
	// Blocking lists the reservation statuses that hold the resource.
	Blocking        []reservation.Status
	Limits          quota.Limits
	CapacityChecked bool
	RequiresPurpose bool
	// ScheduleBound kinds need a semester and are blocked by the class schedule.
	ScheduleBound bool
	InitialStatus reservation.Status
}

func (p Policy) Blocks(s reservation.Status) bool {
	return slices.Contains(p.Blocking, s)
}

// Validate checks that every reservation the kind accepts keeps holding its resource.
// Kinds without reservations, such as reading seats, have nothing to check.
func (p Policy) Validate() error {
	if p.InitialStatus == "" {
		return nil
	}
	if len(p.Blocking) == 0 {
		return ErrNoBlockingStatus
	}
	if !p.Blocks(reservation.StatusApproved) {
		return ErrApprovedNotBlocked
	}
	if !p.Blocks(p.InitialStatus) {
		return ErrInitialNotBlocked
	}
	return nil
}

type Set map[resource.Kind]Policy

func (s Set) For(kind resource.Kind) (Policy, error) {
	p, ok := s[kind]
	if !ok {
		return Policy{}, ErrUnsupportedKind
	}
	return p, nil
}

// BlockingUnion returns every status that blocks at least one kind.
func (s Set) BlockingUnion() []reservation.Status {
	var out []reservation.Status
	for _, k := range resource.Kinds {
		p, ok := s[k]
		if !ok {
			continue
		}
		for _, st := range p.Blocking {
			if !slices.Contains(out, st) {
				out = append(out, st)
			}
		}
	}
	return out
}

// Defaults mirrors the documented configuration defaults.
func Defaults() Set {
	held := []reservation.Status{reservation.StatusPending, reservation.StatusApproved}
	return Set{
		resource.KindClassroom: {
			Kind:            resource.KindClassroom,
			Blocking:        held,
			CapacityChecked: true,
			RequiresPurpose: true,
			ScheduleBound:   true,
			InitialStatus:   reservation.StatusPending,
		},
		resource.KindStudyRoom: {
			Kind:          resource.KindStudyRoom,
			Blocking:      held,
			Limits:        quota.Limits{DailyHours: 2 * time.Hour, MonthlyHours: 20 * time.Hour},
			InitialStatus: reservation.StatusApproved,
		},
		resource.KindReadingSeat: {
			Kind:   resource.KindReadingSeat,
			Limits: quota.Limits{DailyHours: 6 * time.Hour, DailyCount: 10},
		},
	}
}
