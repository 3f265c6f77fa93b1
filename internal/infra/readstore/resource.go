package readstore

import (
	"context"

	"campus-booking/internal/domain/resource"
	"campus-booking/internal/infra"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/pkg/pgconv"
	"campus-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceReadQueries interface {
	GetResource(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Resource, error)
	GetSeatResource(ctx context.Context, db sqlc.DBTX, seatNumber pgtype.Int4) (sqlc.Resource, error)
	ListResources(ctx context.Context, db sqlc.DBTX, arg sqlc.ListResourcesParams) ([]sqlc.Resource, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id string) (*resource.Resource, error) {
	row, err := r.queries.GetResource(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return toResource(row)
}

func (r *ResourceReadStore) FindBySeatNumber(ctx context.Context, seatNumber int) (*resource.Resource, error) {
	row, err := r.queries.GetSeatResource(ctx, r.db, pgconv.IntPtrToPgtype(&seatNumber))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find seat", err)
	}
	return toResource(row)
}

func (r *ResourceReadStore) List(ctx context.Context, filter shared.ResourceFilter) ([]*resource.Resource, error) {
	rows, err := r.queries.ListResources(ctx, r.db, sqlc.ListResourcesParams{
		Kind: pgconv.OptionalText(filter.Kind.String()),
		Ids:  nonNil(filter.IDs),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}

	result := make([]*resource.Resource, 0, len(rows))
	for _, row := range rows {
		res, err := toResource(row)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func toResource(row sqlc.Resource) (*resource.Resource, error) {
	res, err := resource.NewResource(
		row.ID,
		resource.Kind(row.Kind),
		row.Name,
		pgconv.IntPtrFromPgtype(row.Capacity),
		pgconv.IntPtrFromPgtype(row.SeatNumber),
	)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt resource row "+row.ID)
	}
	return res, nil
}

// nonNil keeps cardinality() at 0 for an absent filter; a nil slice is sent as NULL.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
