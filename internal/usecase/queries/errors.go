package queries

import "campus-booking/internal/pkg/errs"

var (
	ErrLoginRequired    = errs.Reject(errs.KindUnauthenticated, "login required")
	ErrResourceNotFound = errs.Reject(errs.KindNotFound, "resource not found")
	ErrNotReservable    = errs.Reject(errs.KindInvalidInput, "reading seats have no time slots, see the seat board")
	ErrDateRequired     = errs.Reject(errs.KindInvalidInput, "date is required")
)
