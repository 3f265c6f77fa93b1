package shared

import (
	"context"
	"log/slog"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/errs"
)

// ResolveTerm finds the semester containing date. Overlapping semesters are logged and the first wins.
func ResolveTerm(ctx context.Context, reads Reads, date time.Time) (calendar.Semester, bool, error) {
	table, err := reads.Semesters(ctx, date)
	if err != nil {
		return calendar.Semester{}, false, errs.Wrap(err, "failed to load semesters")
	}

	sem, matches := table.Resolve(date)
	if matches > 1 {
		slog.WarnContext(ctx, "semester ranges overlap, using the first match",
			"date", date.Format(calendar.DateLayout),
			"semester", sem.Code,
			"matches", matches)
	}
	return sem, matches > 0, nil
}

// LoadOccupancies collects, per resource, the class schedule and blocking reservations on date.
// semesterCode may be empty, in which case no class schedule applies.
func LoadOccupancies(
	ctx context.Context,
	reads Reads,
	policies policy.Set,
	resources []*resource.Resource,
	date time.Time,
	semesterCode string,
) (map[string]reservation.Occupancy, error) {
	out := make(map[string]reservation.Occupancy, len(resources))
	if len(resources) == 0 {
		return out, nil
	}

	var ids, scheduled []string
	for _, res := range resources {
		ids = append(ids, res.ID())
		out[res.ID()] = reservation.Occupancy{}
		if pol, err := policies.For(res.Kind()); err == nil && pol.ScheduleBound {
			scheduled = append(scheduled, res.ID())
		}
	}

	if semesterCode != "" && len(scheduled) > 0 {
		entries, err := reads.ClassSchedule(ctx, ScheduleFilter{
			ResourceIDs:  scheduled,
			DayOfWeek:    calendar.DayOfWeek(date),
			SemesterCode: semesterCode,
		})
		if err != nil {
			return nil, errs.Wrap(err, "failed to load class schedule")
		}
		for _, e := range entries {
			iv, err := e.On(date)
			if err != nil {
				slog.WarnContext(ctx, "skipping malformed class schedule entry",
					"resource_id", e.ResourceID,
					"course", e.CourseName,
					"start", e.Start.String(),
					"end", e.End.String())
				continue
			}
			occ := out[e.ResourceID]
			occ.Schedule = append(occ.Schedule, iv)
			out[e.ResourceID] = occ
		}
	}

	rows, err := reads.Reservations(ctx, ReservationFilter{
		ResourceIDs: ids,
		Date:        &date,
		Statuses:    policies.BlockingUnion(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservations")
	}

	kinds := make(map[string]resource.Kind, len(resources))
	for _, res := range resources {
		kinds[res.ID()] = res.Kind()
	}
	for _, row := range rows {
		pol, err := policies.For(kinds[row.ResourceID])
		if err != nil || !pol.Blocks(row.Status) {
			continue
		}
		occ := out[row.ResourceID]
		occ.Reservations = append(occ.Reservations, reservation.Booking{ID: row.ID, Interval: row.Interval()})
		out[row.ResourceID] = occ
	}

	return out, nil
}
