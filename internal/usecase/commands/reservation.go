package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"strings"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateReservationInput carries the raw request fields. Parsing happens here so that the
// identity check always runs before field validation.
type CreateReservationInput struct {
	ResourceID string
	UserID     string
	Date       string
	StartTime  string
	EndTime    string
	Purpose    string
	Attendees  *int
}

type ReservationResult struct {
	ID     uuid.UUID
	Status reservation.Status
}

type ReservationCommands interface {
	Create(ctx context.Context, requester session.Identity, in CreateReservationInput) (*ReservationResult, error)
	Cancel(ctx context.Context, requester session.Identity, id uuid.UUID) error
	Decide(ctx context.Context, requester session.Identity, id uuid.UUID, approve bool) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	policies  policy.Set
	admins    map[string]struct{}
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	policies policy.Set,
	adminUserIDs []string,
	publisher shared.EventPublisher,
	clock clock.Clock,
) ReservationCommands {
	admins := make(map[string]struct{}, len(adminUserIDs))
	for _, id := range adminUserIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = struct{}{}
		}
	}
	return &reservationCommandsImpl{
		uow:       uow,
		policies:  policies,
		admins:    admins,
		publisher: publisher,
		clock:     clock,
	}
}

type reservationRequest struct {
	resourceID string
	date       time.Time
	interval   timeslot.Interval
	purpose    string
	attendees  *int
}

func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	requester session.Identity,
	in CreateReservationInput,
) (*ReservationResult, error) {
	if !requester.Authenticated() {
		return nil, ErrLoginRequired
	}
	if claimed := strings.TrimSpace(in.UserID); claimed != "" && claimed != requester.UserID {
		return nil, ErrOwnerMismatch
	}

	req, err := c.parseCreate(in)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		res, err := reads.Resource(ctx, req.resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Wrap(err, "failed to load resource")
		}
		if !res.Kind().Reservable() {
			return ErrNotReservable
		}
		pol, err := c.policies.For(res.Kind())
		if err != nil {
			return err
		}

		if err := reservation.CheckCapacity(res.Capacity(), req.attendees, pol.CapacityChecked); err != nil {
			return err
		}
		if err := reservation.CheckPurpose(req.purpose, pol.RequiresPurpose); err != nil {
			return err
		}

		occ, err := c.occupancy(ctx, reads, res, pol, req.date)
		if err != nil {
			return err
		}
		if err := occ.FirstConflict(req.interval); err != nil {
			return err
		}

		if !pol.Limits.Unlimited() {
			usage, err := c.usage(ctx, reads, requester.UserID, pol, req.date)
			if err != nil {
				return err
			}
			if err := quota.Check(pol.Limits, usage, quota.Request{Duration: req.interval.Duration(), Count: 1}); err != nil {
				return err
			}
		}

		r, err := reservation.New(reservation.Draft{
			ResourceID: res.ID(),
			Owner:      requester,
			Date:       req.date,
			Interval:   req.interval,
			Purpose:    req.purpose,
			Attendees:  req.attendees,
			Status:     pol.InitialStatus,
		}, c.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return reservation.ErrReservationConflict
			}
			return err
		}
		if err := tx.AuditLog().Append(ctx, auditEntry(r, shared.AuditCreated, c.clock.Now())); err != nil {
			return err
		}

		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(ctx, c.publisher, reservationEvent(shared.EventReservationCreated, created, c.clock.Now()))

	return &ReservationResult{ID: created.ID(), Status: created.Status()}, nil
}

func (c *reservationCommandsImpl) parseCreate(in CreateReservationInput) (reservationRequest, error) {
	resourceID := strings.TrimSpace(in.ResourceID)
	if resourceID == "" {
		return reservationRequest{}, ErrResourceIDRequired
	}
	date, err := calendar.ParseDate(in.Date, c.clock.Location())
	if err != nil {
		return reservationRequest{}, err
	}
	start, err := timeslot.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return reservationRequest{}, err
	}
	end, err := timeslot.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return reservationRequest{}, err
	}
	interval, err := timeslot.OnDate(date, start, end)
	if err != nil {
		return reservationRequest{}, err
	}
	if interval.Start.Before(c.clock.Now()) {
		return reservationRequest{}, ErrPastInterval
	}
	if err := reservation.CheckPurpose(in.Purpose, false); err != nil {
		return reservationRequest{}, err
	}
	return reservationRequest{
		resourceID: resourceID,
		date:       date,
		interval:   interval,
		purpose:    in.Purpose,
		attendees:  in.Attendees,
	}, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, requester session.Identity, id uuid.UUID) error {
	if !requester.Authenticated() {
		return ErrLoginRequired
	}

	var cancelled *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.load(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := r.Cancel(requester.UserID, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, r); err != nil {
			return err
		}
		if err := tx.AuditLog().Append(ctx, auditEntry(r, shared.AuditCancelled, c.clock.Now())); err != nil {
			return err
		}
		cancelled = r
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, c.publisher, reservationEvent(shared.EventReservationCancelled, cancelled, c.clock.Now()))
	return nil
}

func (c *reservationCommandsImpl) Decide(
	ctx context.Context,
	requester session.Identity,
	id uuid.UUID,
	approve bool,
) (*ReservationResult, error) {
	if !requester.Authenticated() {
		return nil, ErrLoginRequired
	}
	if _, ok := c.admins[requester.UserID]; !ok {
		return nil, ErrNotAdmin
	}

	var decided *reservation.Reservation
	action := shared.AuditRejected
	if approve {
		action = shared.AuditApproved
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.load(ctx, tx, id)
		if err != nil {
			return err
		}
		now := c.clock.Now()

		if !approve {
			if err := r.Reject(now); err != nil {
				return err
			}
		} else {
			if r.Status() != reservation.StatusPending {
				return reservation.ErrNotPending
			}
			if err := c.recheck(ctx, tx.Reads(), r); err != nil {
				return err
			}
			if err := r.Approve(now); err != nil {
				return err
			}
		}

		if err := tx.Reservations().UpdateStatus(ctx, r); err != nil {
			return err
		}
		if err := tx.AuditLog().Append(ctx, auditEntry(r, action, now)); err != nil {
			return err
		}
		decided = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	eventType := shared.EventReservationRejected
	if approve {
		eventType = shared.EventReservationApproved
	}
	publish(ctx, c.publisher, reservationEvent(eventType, decided, c.clock.Now()))

	return &ReservationResult{ID: decided.ID(), Status: decided.Status()}, nil
}

// recheck verifies a pending reservation still fits before it is approved.
func (c *reservationCommandsImpl) recheck(ctx context.Context, reads shared.Reads, r *reservation.Reservation) error {
	res, err := reads.Resource(ctx, r.ResourceID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResourceNotFound
		}
		return errs.Wrap(err, "failed to load resource")
	}
	pol, err := c.policies.For(res.Kind())
	if err != nil {
		return err
	}
	occ, err := c.occupancy(ctx, reads, res, pol, r.Date())
	if err != nil {
		return err
	}
	occ.Exclude = r.ID()
	return occ.FirstConflict(r.Interval())
}

func (c *reservationCommandsImpl) load(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}
	return row.ToDomain(), nil
}

func (c *reservationCommandsImpl) occupancy(
	ctx context.Context,
	reads shared.Reads,
	res *resource.Resource,
	pol policy.Policy,
	date time.Time,
) (reservation.Occupancy, error) {
	var semesterCode string
	if pol.ScheduleBound {
		sem, ok, err := shared.ResolveTerm(ctx, reads, date)
		if err != nil {
			return reservation.Occupancy{}, err
		}
		if !ok {
			return reservation.Occupancy{}, ErrOutOfTerm
		}
		semesterCode = sem.Code
	}

	occs, err := shared.LoadOccupancies(ctx, reads, c.policies, []*resource.Resource{res}, date, semesterCode)
	if err != nil {
		return reservation.Occupancy{}, err
	}
	return occs[res.ID()], nil
}

// usage sums the member's blocking reservations of the same kind in the day and month of date.
func (c *reservationCommandsImpl) usage(
	ctx context.Context,
	reads shared.Reads,
	userID string,
	pol policy.Policy,
	date time.Time,
) (quota.Usage, error) {
	dayStart := calendar.StartOfDay(date)
	day, err := reads.ReservationUsage(ctx, shared.UsageFilter{
		UserID:   userID,
		Kind:     pol.Kind,
		Statuses: pol.Blocking,
		From:     dayStart,
		To:       dayStart.AddDate(0, 0, 1),
	})
	if err != nil {
		return quota.Usage{}, errs.Wrap(err, "failed to aggregate daily usage")
	}

	usage := quota.Usage{Day: day.Duration, DayCount: day.Count}
	if pol.Limits.MonthlyHours > 0 {
		monthStart := calendar.StartOfMonth(date)
		month, err := reads.ReservationUsage(ctx, shared.UsageFilter{
			UserID:   userID,
			Kind:     pol.Kind,
			Statuses: pol.Blocking,
			From:     monthStart,
			To:       monthStart.AddDate(0, 1, 0),
		})
		if err != nil {
			return quota.Usage{}, errs.Wrap(err, "failed to aggregate monthly usage")
		}
		usage.Month = month.Duration
	}
	return usage, nil
}

func auditEntry(r *reservation.Reservation, action shared.AuditAction, at time.Time) shared.AuditEntry {
	return shared.AuditEntry{
		ReservationID: r.ID(),
		ResourceID:    r.ResourceID(),
		UserID:        r.UserID(),
		Action:        action,
		At:            at,
	}
}

func reservationEvent(t shared.EventType, r *reservation.Reservation, at time.Time) shared.Event {
	return shared.Event{
		Type:       t,
		OccurredAt: at,
		UserID:     r.UserID(),
		ResourceID: r.ResourceID(),
		Payload: map[string]any{
			"reservation_id": r.ID().String(),
			"date":           r.Date().Format(calendar.DateLayout),
			"start_at":       r.Interval().Start,
			"end_at":         r.Interval().End,
			"status":         r.Status().String(),
		},
	}
}
