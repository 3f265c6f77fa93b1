package session

import (
	"context"
	"strings"

	"campus-booking/internal/pkg/errs"
)

var (
	ErrLoginIDRequired  = errs.Reject(errs.KindInvalidInput, "login id is required")
	ErrPasswordRequired = errs.Reject(errs.KindInvalidInput, "password is required")
)

// Identity is the authenticated member behind a request. The zero value is anonymous.
type Identity struct {
	UserID      string
	DisplayName string
}

var Anonymous = Identity{}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(ctxKey{}).(Identity)
	return id
}

type Credentials struct {
	loginID  string
	password string
}

func NewCredentials(loginID, password string) (Credentials, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return Credentials{}, ErrLoginIDRequired
	}
	if password == "" {
		return Credentials{}, ErrPasswordRequired
	}
	return Credentials{loginID: loginID, password: password}, nil
}

func (c Credentials) LoginID() string  { return c.loginID }
func (c Credentials) Password() string { return c.password }
