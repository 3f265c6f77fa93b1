package readstore

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/readstore/reservation_mock.go -package=readstoremock

import (
	"context"
	"time"

	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/infra"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/pgconv"
	"campus-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsParams) ([]sqlc.ListReservationsRow, error)
	SumReservationUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.SumReservationUsageParams) (sqlc.SumReservationUsageRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX, loc *time.Location) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationRow, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	result := r.toRow(sqlc.ListReservationsRow(row))
	return &result, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter shared.ReservationFilter) ([]shared.ReservationRow, error) {
	rows, err := r.queries.ListReservations(ctx, r.db, sqlc.ListReservationsParams{
		ResourceIds: nonNil(filter.ResourceIDs),
		OnDate:      pgconv.DatePtrToPgtype(filter.Date),
		FromDate:    pgconv.DatePtrToPgtype(filter.FromDate),
		Statuses:    statusStrings(filter.Statuses),
		UserID:      pgconv.OptionalText(filter.UserID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]shared.ReservationRow, len(rows))
	for i, row := range rows {
		result[i] = r.toRow(row)
	}
	return result, nil
}

// Usage sums the member's reservations of one kind that start within [From, To).
func (r *ReservationReadStore) Usage(ctx context.Context, filter shared.UsageFilter) (shared.UsageTotals, error) {
	row, err := r.queries.SumReservationUsage(ctx, r.db, sqlc.SumReservationUsageParams{
		UserID:   filter.UserID,
		Kind:     filter.Kind.String(),
		Statuses: statusStrings(filter.Statuses),
		FromAt:   pgconv.TimeToPgtype(filter.From),
		ToAt:     pgconv.TimeToPgtype(filter.To),
	})
	if err != nil {
		return shared.UsageTotals{}, infra.WrapRepoErr("failed to sum reservation usage", err)
	}
	return shared.UsageTotals{
		Duration: time.Duration(row.TotalSeconds) * time.Second,
		Count:    int(row.ReservationCount),
	}, nil
}

func (r *ReservationReadStore) toRow(row sqlc.ListReservationsRow) shared.ReservationRow {
	return shared.ReservationRow{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		ResourceName: row.ResourceName,
		ResourceKind: resource.Kind(row.ResourceKind),
		UserID:       row.UserID,
		UserName:     row.UserName,
		Date:         pgconv.DateFromPgtype(row.ReservationDate, r.loc),
		StartAt:      pgconv.TimeFromPgtype(row.StartAt, r.loc),
		EndAt:        pgconv.TimeFromPgtype(row.EndAt, r.loc),
		Purpose:      row.Purpose,
		Attendees:    pgconv.IntPtrFromPgtype(row.Attendees),
		Status:       reservation.Status(row.Status),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt, r.loc),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt, r.loc),
	}
}

func statusStrings(statuses []reservation.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
