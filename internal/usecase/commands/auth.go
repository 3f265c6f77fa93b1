package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/pkg/jwt"
	"campus-booking/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	Identity session.Identity
	Token    jwt.Token
}

type AuthCommands interface {
	Login(ctx context.Context, loginID, password string) (*LoginResult, error)
	Extend(ctx context.Context, token string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type authCommandsImpl struct {
	authenticator shared.Authenticator
	revocations   shared.RevocationList
	jwtService    *jwt.Service
}

func NewAuthCommands(
	authenticator shared.Authenticator,
	revocations shared.RevocationList,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		authenticator: authenticator,
		revocations:   revocations,
		jwtService:    jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	creds, err := session.NewCredentials(loginID, password)
	if err != nil {
		return nil, err
	}

	identity, err := a.authenticator.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.Issue(identity)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.InfoContext(ctx, "member logged in", "user_id", identity.UserID)
	return &LoginResult{Identity: identity, Token: token}, nil
}

// Extend re-issues a still valid session with a fresh TTL and revokes the old token.
func (a *authCommandsImpl) Extend(ctx context.Context, token string) (*LoginResult, error) {
	claims, err := a.jwtService.Parse(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check session revocation")
	}
	if revoked {
		return nil, ErrSessionInvalid
	}

	identity := claims.Identity()
	next, err := a.jwtService.Issue(identity)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		slog.WarnContext(ctx, "failed to revoke extended session",
			"user_id", identity.UserID,
			"error", err.Error())
	}

	return &LoginResult{Identity: identity, Token: next}, nil
}

// Logout revokes token until it expires. Tokens that no longer verify are ignored.
func (a *authCommandsImpl) Logout(ctx context.Context, token string) error {
	claims, err := a.jwtService.Parse(token)
	if err != nil {
		if !errors.Is(err, jwt.ErrExpiredToken) && token != "" {
			slog.DebugContext(ctx, "logout with an invalid session token")
		}
		return nil
	}

	if err := a.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return errs.Wrap(err, "failed to revoke session")
	}
	slog.InfoContext(ctx, "member logged out", "user_id", claims.UserID)
	return nil
}
