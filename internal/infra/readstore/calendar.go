package readstore

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/readstore/calendar_mock.go -package=readstoremock

import (
	"context"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/infra"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/pgconv"
	"campus-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarReadQueries interface {
	ListSemestersOn(ctx context.Context, db sqlc.DBTX, onDate pgtype.Date) ([]sqlc.Semester, error)
	ListClassSchedules(ctx context.Context, db sqlc.DBTX, arg sqlc.ListClassSchedulesParams) ([]sqlc.ClassSchedule, error)
}

type CalendarReadStore struct {
	queries CalendarReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewCalendarReadStore(queries CalendarReadQueries, db sqlc.DBTX, loc *time.Location) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

// SemestersOn returns the semesters containing date, ordered by start date then code.
func (r *CalendarReadStore) SemestersOn(ctx context.Context, date time.Time) (calendar.Table, error) {
	rows, err := r.queries.ListSemestersOn(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list semesters", err)
	}

	table := make(calendar.Table, 0, len(rows))
	for _, row := range rows {
		table = append(table, calendar.Semester{
			Code:  row.Code,
			Start: pgconv.DateFromPgtype(row.StartDate, r.loc),
			End:   pgconv.DateFromPgtype(row.EndDate, r.loc),
		})
	}
	return table, nil
}

func (r *CalendarReadStore) ClassSchedule(ctx context.Context, filter shared.ScheduleFilter) ([]shared.ScheduleEntry, error) {
	rows, err := r.queries.ListClassSchedules(ctx, r.db, sqlc.ListClassSchedulesParams{
		ResourceIds:  nonNil(filter.ResourceIDs),
		DayOfWeek:    pgconv.OptionalText(filter.DayOfWeek),
		SemesterCode: pgconv.OptionalText(filter.SemesterCode),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list class schedule", err)
	}

	entries := make([]shared.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, shared.ScheduleEntry{
			ResourceID:   row.ResourceID,
			DayOfWeek:    row.DayOfWeek,
			Start:        timeslot.TimeOfDay(pgconv.DurationFromPgtime(row.StartTime)),
			End:          timeslot.TimeOfDay(pgconv.DurationFromPgtime(row.EndTime)),
			SemesterCode: row.SemesterCode,
			CourseName:   row.CourseName,
		})
	}
	return entries, nil
}
