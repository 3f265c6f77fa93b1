package usecase

//go:generate mockgen -source=session.go -destination=../../tests/mock/usecase/session_mock.go -package=usecasemock

import (
	"context"
	"log/slog"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/jwt"
	"campus-booking/internal/usecase/shared"
)

// SessionVerifier resolves a session token to the member it belongs to.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) session.Identity
}

type sessionVerifierImpl struct {
	jwtService  *jwt.Service
	revocations shared.RevocationList
}

func NewSessionVerifier(jwtService *jwt.Service, revocations shared.RevocationList) SessionVerifier {
	return &sessionVerifierImpl{
		jwtService:  jwtService,
		revocations: revocations,
	}
}

// Verify fails closed: any token that cannot be proven valid yields the anonymous identity.
func (v *sessionVerifierImpl) Verify(ctx context.Context, token string) session.Identity {
	if token == "" {
		return session.Anonymous
	}

	claims, err := v.jwtService.Parse(token)
	if err != nil {
		return session.Anonymous
	}

	revoked, err := v.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		slog.WarnContext(ctx, "revocation lookup failed, treating session as anonymous",
			"user_id", claims.UserID,
			"error", err.Error())
		return session.Anonymous
	}
	if revoked {
		return session.Anonymous
	}

	return claims.Identity()
}
