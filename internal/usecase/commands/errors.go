package commands

import "campus-booking/internal/pkg/errs"

var (
	ErrLoginRequired       = errs.Reject(errs.KindUnauthenticated, "login required")
	ErrOwnerMismatch       = errs.Reject(errs.KindForbidden, "cannot act on behalf of another member")
	ErrNotAdmin            = errs.Reject(errs.KindForbidden, "only administrators can decide reservations")
	ErrResourceIDRequired  = errs.Reject(errs.KindInvalidInput, "resource_id is required")
	ErrNotReservable       = errs.Reject(errs.KindInvalidInput, "reading seats are taken by check-in, not reserved")
	ErrOutOfTerm           = errs.Reject(errs.KindInvalidInput, "classrooms can only be reserved within a semester")
	ErrPastInterval        = errs.Reject(errs.KindInvalidInput, "cannot reserve a time that has already started")
	ErrResourceNotFound    = errs.Reject(errs.KindNotFound, "resource not found")
	ErrReservationNotFound = errs.Reject(errs.KindNotFound, "reservation not found")
	ErrSeatNotFound        = errs.Reject(errs.KindNotFound, "seat not found")
	ErrSessionInvalid      = errs.Reject(errs.KindUnauthenticated, "session is invalid or expired")
)
