package repository

import (
	"context"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/infra"
	"campus-booking/internal/infra/repository/converter"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/pkg/pgconv"
)

var errMissingEnd = errs.New("seat usage has no end time")

type SeatUsageWriteQueries interface {
	CreateSeatUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeatUsageParams) error
	CloseSeatUsage(ctx context.Context, db sqlc.DBTX, arg sqlc.CloseSeatUsageParams) (int64, error)
}

type SeatUsageRepository struct {
	queries SeatUsageWriteQueries
	db      sqlc.DBTX
}

func NewSeatUsageRepository(queries SeatUsageWriteQueries, db sqlc.DBTX) *SeatUsageRepository {
	return &SeatUsageRepository{
		queries: queries,
		db:      db,
	}
}

// Open inserts an open usage. The partial unique indexes reject a second open usage per seat or per member.
func (r *SeatUsageRepository) Open(ctx context.Context, u occupancy.Usage) error {
	if err := r.queries.CreateSeatUsage(ctx, r.db, converter.SeatUsageToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to open seat usage", err)
	}
	return nil
}

func (r *SeatUsageRepository) Close(ctx context.Context, u occupancy.Usage) error {
	if u.EndAt == nil {
		return infra.WrapRepoErr("failed to close seat usage", errMissingEnd)
	}
	n, err := r.queries.CloseSeatUsage(ctx, r.db, sqlc.CloseSeatUsageParams{
		ID:    u.ID,
		EndAt: pgconv.TimeToPgtype(*u.EndAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to close seat usage", err)
	}
	if n == 0 {
		return infra.NotFound("open seat usage not found")
	}
	return nil
}
