package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"
)

// visible excludes cancelled rows, which only survive for the audit trail.
var visible = []reservation.Status{
	reservation.StatusPending,
	reservation.StatusApproved,
	reservation.StatusRejected,
}

type ReservationQueries interface {
	Mine(ctx context.Context, requester session.Identity) ([]ReservationView, error)
	ByDate(ctx context.Context, date, resourceID string) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationQueries(uow shared.UnitOfWork, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, clock: clock}
}

// Mine lists the requester's reservations from today on.
func (q *reservationQueriesImpl) Mine(ctx context.Context, requester session.Identity) ([]ReservationView, error) {
	if !requester.Authenticated() {
		return nil, ErrLoginRequired
	}
	today := calendar.StartOfDay(q.clock.Now())
	return q.list(ctx, shared.ReservationFilter{
		UserID:   requester.UserID,
		FromDate: &today,
		Statuses: visible,
	})
}

func (q *reservationQueriesImpl) ByDate(ctx context.Context, date, resourceID string) ([]ReservationView, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}
	d, err := calendar.ParseDate(date, q.clock.Location())
	if err != nil {
		return nil, err
	}

	filter := shared.ReservationFilter{Date: &d, Statuses: visible}
	if id := strings.TrimSpace(resourceID); id != "" {
		filter.ResourceIDs = []string{id}
	}
	return q.list(ctx, filter)
}

func (q *reservationQueriesImpl) list(ctx context.Context, filter shared.ReservationFilter) ([]ReservationView, error) {
	var views []ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rows, err := reads.Reservations(ctx, filter)
		if err != nil {
			return errs.Wrap(err, "failed to list reservations")
		}
		views = make([]ReservationView, 0, len(rows))
		for _, r := range rows {
			views = append(views, toReservationView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toReservationView(r shared.ReservationRow) ReservationView {
	return ReservationView{
		ID:           r.ID,
		ResourceID:   r.ResourceID,
		ResourceName: r.ResourceName,
		ResourceKind: r.ResourceKind.String(),
		UserID:       r.UserID,
		UserName:     r.UserName,
		Date:         r.Date.Format(calendar.DateLayout),
		StartTime:    r.StartAt.Format("15:04"),
		EndTime:      r.EndAt.Format("15:04"),
		Purpose:      r.Purpose,
		Attendees:    r.Attendees,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
	}
}
