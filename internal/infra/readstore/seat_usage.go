package readstore

import (
	"context"
	"time"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/infra"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/pgconv"
	"campus-booking/internal/usecase/shared"
)

type SeatUsageReadQueries interface {
	ListOpenSeatUsages(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOpenSeatUsagesParams) ([]sqlc.SeatUsage, error)
	ListSeatUsagesSince(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSeatUsagesSinceParams) ([]sqlc.SeatUsage, error)
}

type SeatUsageReadStore struct {
	queries SeatUsageReadQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewSeatUsageReadStore(queries SeatUsageReadQueries, db sqlc.DBTX, loc *time.Location) *SeatUsageReadStore {
	return &SeatUsageReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *SeatUsageReadStore) Open(ctx context.Context, filter shared.SeatUsageFilter) ([]occupancy.Usage, error) {
	rows, err := r.queries.ListOpenSeatUsages(ctx, r.db, sqlc.ListOpenSeatUsagesParams{
		SeatNumber: pgconv.IntPtrToPgtype(filter.SeatNumber),
		UserID:     pgconv.OptionalText(filter.UserID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open seat usages", err)
	}
	return r.toUsages(rows), nil
}

func (r *SeatUsageReadStore) Since(ctx context.Context, userID string, since time.Time) ([]occupancy.Usage, error) {
	rows, err := r.queries.ListSeatUsagesSince(ctx, r.db, sqlc.ListSeatUsagesSinceParams{
		UserID:  userID,
		StartAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seat usages", err)
	}
	return r.toUsages(rows), nil
}

func (r *SeatUsageReadStore) toUsages(rows []sqlc.SeatUsage) []occupancy.Usage {
	result := make([]occupancy.Usage, len(rows))
	for i, row := range rows {
		result[i] = occupancy.Usage{
			ID:         row.ID,
			SeatNumber: int(row.SeatNumber),
			UserID:     row.UserID,
			UserName:   row.UserName,
			StartAt:    pgconv.TimeFromPgtype(row.StartAt, r.loc),
			EndAt:      pgconv.TimePtrFromPgtype(row.EndAt, r.loc),
		}
	}
	return result
}
