package commands

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/commands/seat_mock.go -package=commandsmock

import (
	"context"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Partial unique indexes over open seat usages.
const (
	openSeatIndex = "seat_usages_open_seat_idx"
	openUserIndex = "seat_usages_open_user_idx"
)

type SeatResult struct {
	UsageID    uuid.UUID
	SeatNumber int
	StartAt    time.Time
}

type SeatCommands interface {
	CheckIn(ctx context.Context, requester session.Identity, seatNumber int) (*SeatResult, error)
	CheckOut(ctx context.Context, requester session.Identity, seatNumber int) error
}

type seatCommandsImpl struct {
	uow        shared.UnitOfWork
	policies   policy.Set
	minSession time.Duration
	publisher  shared.EventPublisher
	clock      clock.Clock
}

func NewSeatCommands(
	uow shared.UnitOfWork,
	policies policy.Set,
	minSession time.Duration,
	publisher shared.EventPublisher,
	clock clock.Clock,
) SeatCommands {
	return &seatCommandsImpl{
		uow:        uow,
		policies:   policies,
		minSession: minSession,
		publisher:  publisher,
		clock:      clock,
	}
}

func (c *seatCommandsImpl) CheckIn(ctx context.Context, requester session.Identity, seatNumber int) (*SeatResult, error) {
	if !requester.Authenticated() {
		return nil, ErrLoginRequired
	}
	if seatNumber < 1 {
		return nil, occupancy.ErrInvalidSeat
	}
	pol, err := c.policies.For(resource.KindReadingSeat)
	if err != nil {
		return nil, err
	}

	var started occupancy.Usage
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		now := c.clock.Now()

		if err := c.ensureSeat(ctx, reads, seatNumber); err != nil {
			return err
		}

		state, err := c.loadState(ctx, reads, requester.UserID, seatNumber, now)
		if err != nil {
			return err
		}
		if err := occupancy.CheckIn(state, pol.Limits, c.minSession, now); err != nil {
			return err
		}

		usage, err := occupancy.Start(seatNumber, requester, now)
		if err != nil {
			return err
		}
		if err := tx.SeatUsages().Open(ctx, usage); err != nil {
			return translateSeatConflict(err)
		}
		started = usage
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.publisher, seatEvent(shared.EventSeatCheckedIn, started, c.clock.Now()))

	return &SeatResult{UsageID: started.ID, SeatNumber: started.SeatNumber, StartAt: started.StartAt}, nil
}

func (c *seatCommandsImpl) CheckOut(ctx context.Context, requester session.Identity, seatNumber int) error {
	if !requester.Authenticated() {
		return ErrLoginRequired
	}
	if seatNumber < 1 {
		return occupancy.ErrInvalidSeat
	}

	var closed occupancy.Usage
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		if err := c.ensureSeat(ctx, reads, seatNumber); err != nil {
			return err
		}

		open, err := reads.OpenSeatUsages(ctx, shared.SeatUsageFilter{SeatNumber: &seatNumber})
		if err != nil {
			return errs.Wrap(err, "failed to load seat usage")
		}
		var holder *occupancy.Usage
		if len(open) > 0 {
			holder = &open[0]
		}
		if err := occupancy.CheckOut(holder, requester.UserID); err != nil {
			return err
		}

		holder.Close(c.clock.Now())
		if err := tx.SeatUsages().Close(ctx, *holder); err != nil {
			return err
		}
		closed = *holder
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, c.publisher, seatEvent(shared.EventSeatCheckedOut, closed, c.clock.Now()))
	return nil
}

func (c *seatCommandsImpl) ensureSeat(ctx context.Context, reads shared.Reads, seatNumber int) error {
	if _, err := reads.SeatResource(ctx, seatNumber); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSeatNotFound
		}
		return errs.Wrap(err, "failed to load seat")
	}
	return nil
}

func (c *seatCommandsImpl) loadState(
	ctx context.Context,
	reads shared.Reads,
	userID string,
	seatNumber int,
	now time.Time,
) (occupancy.State, error) {
	var state occupancy.State

	holders, err := reads.OpenSeatUsages(ctx, shared.SeatUsageFilter{SeatNumber: &seatNumber})
	if err != nil {
		return state, errs.Wrap(err, "failed to load seat holder")
	}
	if len(holders) > 0 {
		state.SeatHolder = &holders[0]
	}

	mine, err := reads.OpenSeatUsages(ctx, shared.SeatUsageFilter{UserID: userID})
	if err != nil {
		return state, errs.Wrap(err, "failed to load member seat")
	}
	if len(mine) > 0 {
		state.UserSeat = &mine[0]
	}

	state.Today, err = reads.SeatUsagesSince(ctx, userID, calendar.StartOfDay(now))
	if err != nil {
		return state, errs.Wrap(err, "failed to load today's seat usage")
	}
	return state, nil
}

// translateSeatConflict maps a lost race on the open-usage indexes to the rejection the pre-check would give.
func translateSeatConflict(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	if infra.ViolatedConstraint(err) == openUserIndex {
		return occupancy.ErrAlreadySeated
	}
	return occupancy.ErrSeatOccupied
}

func seatEvent(t shared.EventType, u occupancy.Usage, at time.Time) shared.Event {
	payload := map[string]any{
		"usage_id":    u.ID.String(),
		"seat_number": u.SeatNumber,
		"start_at":    u.StartAt,
	}
	if u.EndAt != nil {
		payload["end_at"] = *u.EndAt
	}
	return shared.Event{
		Type:       t,
		OccurredAt: at,
		UserID:     u.UserID,
		Payload:    payload,
	}
}
