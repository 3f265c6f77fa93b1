package authclient

import (
	"context"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/infra"
	"campus-booking/internal/infra/readstore"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/pkg/password"
)

type MemberFinder interface {
	FindByLoginID(ctx context.Context, loginID string) (*readstore.Member, error)
}

// LocalAuthenticator checks bcrypt hashes in the members table.
type LocalAuthenticator struct {
	members MemberFinder
}

func NewLocalAuthenticator(members MemberFinder) *LocalAuthenticator {
	return &LocalAuthenticator{members: members}
}

func (a *LocalAuthenticator) Authenticate(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	m, err := a.members.FindByLoginID(ctx, creds.LoginID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return session.Anonymous, ErrInvalidCredentials
		}
		return session.Anonymous, errs.Wrap(err, "failed to load member")
	}

	ok, err := password.Matches(m.PasswordHash, creds.Password())
	if err != nil {
		return session.Anonymous, errs.Wrap(err, "corrupt password hash")
	}
	if !ok {
		return session.Anonymous, ErrInvalidCredentials
	}
	return session.Identity{UserID: m.UserID, DisplayName: m.DisplayName}, nil
}
