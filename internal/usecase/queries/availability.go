package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/infra"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"
)

// Window used when the caller gives no start or end.
const (
	DefaultWindowStart = timeslot.TimeOfDay(9 * time.Hour)
	DefaultWindowEnd   = timeslot.TimeOfDay(22 * time.Hour)
)

type AvailabilityInput struct {
	Kind       string
	ResourceID string
	Date       string
	Start      string
	End        string
}

type AvailabilityQueries interface {
	Availability(ctx context.Context, in AvailabilityInput) ([]AvailabilityView, error)
	Schedule(ctx context.Context, resourceID, date string) (*ScheduleView, error)
}

type availabilityQueriesImpl struct {
	uow         shared.UnitOfWork
	policies    policy.Set
	granularity time.Duration
	clock       clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	policies policy.Set,
	granularity time.Duration,
	clock clock.Clock,
) AvailabilityQueries {
	if granularity <= 0 {
		granularity = timeslot.DefaultGranularity
	}
	return &availabilityQueriesImpl{
		uow:         uow,
		policies:    policies,
		granularity: granularity,
		clock:       clock,
	}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context, in AvailabilityInput) ([]AvailabilityView, error) {
	date, window, err := q.parseWindow(in)
	if err != nil {
		return nil, err
	}

	var kind resource.Kind
	if strings.TrimSpace(in.Kind) != "" {
		if kind, err = resource.ParseKind(in.Kind); err != nil {
			return nil, err
		}
		if !kind.Reservable() {
			return nil, ErrNotReservable
		}
	}

	var views []AvailabilityView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		resources, err := q.targets(ctx, reads, kind, strings.TrimSpace(in.ResourceID))
		if err != nil {
			return err
		}

		sem, inTerm, err := shared.ResolveTerm(ctx, reads, date)
		if err != nil {
			return err
		}
		occs, err := shared.LoadOccupancies(ctx, reads, q.policies, resources, date, sem.Code)
		if err != nil {
			return err
		}

		now := q.clock.Now()
		slots := timeslot.Generate(window.Start, window.End, q.granularity)
		views = make([]AvailabilityView, 0, len(resources))
		for _, res := range resources {
			pol, err := q.policies.For(res.Kind())
			if err != nil {
				return err
			}
			// schedule-bound kinds cannot be booked outside a semester
			bookable := inTerm || !pol.ScheduleBound
			occ := occs[res.ID()]
			view := AvailabilityView{
				ResourceID:   res.ID(),
				ResourceName: res.Name(),
				Kind:         res.Kind().String(),
				Capacity:     res.Capacity(),
				Slots:        make([]SlotView, 0, len(slots)),
			}
			for _, s := range slots {
				view.Slots = append(view.Slots, SlotView{
					Start:     s.Start.Format("15:04"),
					End:       slotEnd(s),
					Available: bookable && !s.Start.Before(now) && occ.IsAvailable(s),
				})
			}
			views = append(views, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Schedule(ctx context.Context, resourceID, date string) (*ScheduleView, error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return nil, errs.Reject(errs.KindInvalidInput, "resource_id is required")
	}
	d, err := q.parseDate(date)
	if err != nil {
		return nil, err
	}

	view := &ScheduleView{
		Date:      d.Format(calendar.DateLayout),
		DayOfWeek: calendar.DayOfWeek(d),
		Entries:   []ScheduleEntryView{},
	}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.Resource(ctx, resourceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Wrap(err, "failed to load resource")
		}

		sem, ok, err := shared.ResolveTerm(ctx, reads, d)
		if err != nil || !ok {
			return err
		}
		view.SemesterCode = sem.Code

		entries, err := reads.ClassSchedule(ctx, shared.ScheduleFilter{
			ResourceIDs:  []string{resourceID},
			DayOfWeek:    view.DayOfWeek,
			SemesterCode: sem.Code,
		})
		if err != nil {
			return errs.Wrap(err, "failed to load class schedule")
		}
		for _, e := range entries {
			view.Entries = append(view.Entries, ScheduleEntryView{
				ResourceID:   e.ResourceID,
				DayOfWeek:    e.DayOfWeek,
				Start:        e.Start.String(),
				End:          e.End.String(),
				SemesterCode: e.SemesterCode,
				CourseName:   e.CourseName,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *availabilityQueriesImpl) targets(
	ctx context.Context,
	reads shared.Reads,
	kind resource.Kind,
	resourceID string,
) ([]*resource.Resource, error) {
	if resourceID != "" {
		res, err := reads.Resource(ctx, resourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrResourceNotFound
			}
			return nil, errs.Wrap(err, "failed to load resource")
		}
		if !res.Kind().Reservable() || (kind != "" && res.Kind() != kind) {
			return nil, ErrNotReservable
		}
		return []*resource.Resource{res}, nil
	}

	resources, err := reads.Resources(ctx, shared.ResourceFilter{Kind: kind})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list resources")
	}
	out := resources[:0]
	for _, r := range resources {
		if r.Kind().Reservable() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (q *availabilityQueriesImpl) parseWindow(in AvailabilityInput) (time.Time, timeslot.Interval, error) {
	date, err := q.parseDate(in.Date)
	if err != nil {
		return time.Time{}, timeslot.Interval{}, err
	}

	start, end := DefaultWindowStart, DefaultWindowEnd
	if strings.TrimSpace(in.Start) != "" {
		if start, err = timeslot.ParseTimeOfDay(in.Start); err != nil {
			return time.Time{}, timeslot.Interval{}, err
		}
	}
	if strings.TrimSpace(in.End) != "" {
		if end, err = timeslot.ParseTimeOfDay(in.End); err != nil {
			return time.Time{}, timeslot.Interval{}, err
		}
	}

	window, err := timeslot.OnDate(date, start, end)
	if err != nil {
		return time.Time{}, timeslot.Interval{}, err
	}
	return date, window, nil
}

func (q *availabilityQueriesImpl) parseDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, ErrDateRequired
	}
	return calendar.ParseDate(s, q.clock.Location())
}

// slotEnd renders midnight at the end of the day as 24:00.
func slotEnd(s timeslot.Interval) string {
	if s.End.Day() != s.Start.Day() {
		return "24:00"
	}
	return s.End.Format("15:04")
}
