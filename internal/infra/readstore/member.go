package readstore

import (
	"context"

	"campus-booking/internal/infra"
	sqlc "campus-booking/internal/infra/sqlc/generated"
)

type MemberReadQueries interface {
	GetMemberByLoginID(ctx context.Context, db sqlc.DBTX, loginID string) (sqlc.Member, error)
}

// Member is a locally provisioned account. PasswordHash is a bcrypt hash.
type Member struct {
	UserID       string
	DisplayName  string
	PasswordHash string
}

type MemberReadStore struct {
	queries MemberReadQueries
	db      sqlc.DBTX
}

func NewMemberReadStore(queries MemberReadQueries, db sqlc.DBTX) *MemberReadStore {
	return &MemberReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MemberReadStore) FindByLoginID(ctx context.Context, loginID string) (*Member, error) {
	row, err := r.queries.GetMemberByLoginID(ctx, r.db, loginID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	return &Member{
		UserID:       row.UserID,
		DisplayName:  row.DisplayName,
		PasswordHash: row.PasswordHash,
	}, nil
}
