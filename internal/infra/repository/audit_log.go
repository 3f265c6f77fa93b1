package repository

import (
	"context"

	"campus-booking/internal/infra"
	"campus-booking/internal/infra/repository/converter"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/usecase/shared"
)

type AuditLogWriteQueries interface {
	CreateReservationLog(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationLogParams) error
}

type AuditLogRepository struct {
	queries AuditLogWriteQueries
	db      sqlc.DBTX
}

func NewAuditLogRepository(queries AuditLogWriteQueries, db sqlc.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, e shared.AuditEntry) error {
	if err := r.queries.CreateReservationLog(ctx, r.db, converter.AuditEntryToInfra(e)); err != nil {
		return infra.WrapRepoErr("failed to append reservation log", err)
	}
	return nil
}
