package errs

import "errors"

// Kind classifies a failure for callers. The zero value means no error.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindQuotaExceeded   Kind = "quota_exceeded"
	KindInternal        Kind = "internal"
)

func (k Kind) Error() string {
	return string(k)
}

// Kind sentinels, usable with Is against any Rejection of that kind.
var (
	ErrUnauthenticated error = KindUnauthenticated
	ErrForbidden       error = KindForbidden
	ErrInvalidInput    error = KindInvalidInput
	ErrNotFound        error = KindNotFound
	ErrConflict        error = KindConflict
	ErrQuotaExceeded   error = KindQuotaExceeded
)

// Rejection is an expected business failure carrying a reason safe to show to the caller.
type Rejection struct {
	kind   Kind
	reason string
}

func Reject(kind Kind, reason string) error {
	return &Rejection{kind: kind, reason: reason}
}

func (r *Rejection) Error() string {
	return r.reason
}

func (r *Rejection) Kind() Kind {
	return r.kind
}

func (r *Rejection) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == r.kind
}

// KindOf classifies err. Anything that is not a Rejection or a bare Kind is internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return KindInternal
}

// Reason returns the caller-facing reason of the first Rejection in err's chain.
func Reason(err error) string {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.reason
	}
	return ""
}
