// Package occupancy holds the reading seat rules: one open session per seat and one per member.
package occupancy

import (
	"time"

	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSeatOccupied     = errs.Reject(errs.KindConflict, "seat is already occupied")
	ErrAlreadySeated    = errs.Reject(errs.KindConflict, "you are already checked in to another seat")
	ErrSeatNotOccupied  = errs.Reject(errs.KindConflict, "seat is not occupied")
	ErrNotSeatHolder    = errs.Reject(errs.KindForbidden, "seat is held by another member")
	ErrInvalidSeat      = errs.Reject(errs.KindInvalidInput, "seat number must be a positive integer")
	ErrAnonymousVisitor = errs.Reject(errs.KindUnauthenticated, "login required")
)

// Usage is one seat session. A nil EndAt means the seat is still held.
type Usage struct {
	ID         uuid.UUID
	SeatNumber int
	UserID     string
	UserName   string
	StartAt    time.Time
	EndAt      *time.Time
}

func Start(seatNumber int, who session.Identity, now time.Time) (Usage, error) {
	if seatNumber < 1 {
		return Usage{}, ErrInvalidSeat
	}
	if !who.Authenticated() {
		return Usage{}, ErrAnonymousVisitor
	}
	return Usage{
		ID:         uuid.New(),
		SeatNumber: seatNumber,
		UserID:     who.UserID,
		UserName:   who.DisplayName,
		StartAt:    now,
	}, nil
}

func (u Usage) Open() bool {
	return u.EndAt == nil
}

// Duration counts an open session up to now.
func (u Usage) Duration(now time.Time) time.Duration {
	end := now
	if u.EndAt != nil {
		end = *u.EndAt
	}
	if end.Before(u.StartAt) {
		return 0
	}
	return end.Sub(u.StartAt)
}

func (u *Usage) Close(now time.Time) {
	u.EndAt = &now
}

// State is what the store holds for a check-in attempt.
type State struct {
	SeatHolder *Usage
	UserSeat   *Usage
	// Today lists the member's sessions that started on the current day.
	Today []Usage
}

func (s State) TodayUsage(now time.Time) quota.Usage {
	var u quota.Usage
	for _, t := range s.Today {
		u.Day += t.Duration(now)
		u.DayCount++
	}
	return u
}

// CheckIn admits a member to a free seat. The minimum session is charged against the daily cap.
func CheckIn(s State, limits quota.Limits, minSession time.Duration, now time.Time) error {
	if s.SeatHolder != nil {
		return ErrSeatOccupied
	}
	if s.UserSeat != nil {
		return ErrAlreadySeated
	}
	return quota.Check(limits, s.TodayUsage(now), quota.Request{Duration: minSession, Count: 1})
}

func CheckOut(open *Usage, requesterID string) error {
	if open == nil || !open.Open() {
		return ErrSeatNotOccupied
	}
	if open.UserID != requesterID {
		return ErrNotSeatHolder
	}
	return nil
}
