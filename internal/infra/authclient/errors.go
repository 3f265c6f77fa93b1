package authclient

import "campus-booking/internal/pkg/errs"

var (
	ErrInvalidCredentials  = errs.Reject(errs.KindUnauthenticated, "invalid login id or password")
	ErrProviderUnavailable = errs.New("login provider unavailable")
)
