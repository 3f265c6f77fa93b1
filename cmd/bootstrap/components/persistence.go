package components

import (
	"time"

	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/infra/uow"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories and read stores are bound to a transaction by the unit of work, so only
// the query set and the unit of work itself are provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewPostgresUoW,
		func(u *uow.PostgresUoW) shared.UnitOfWork {
			return u
		},
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, loc *time.Location, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q, loc, cfg.Policy.TxMaxRetries)
}
