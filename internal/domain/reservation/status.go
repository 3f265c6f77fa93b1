package reservation

import (
	"strings"

	"campus-booking/internal/pkg/errs"
)

var ErrUnknownStatus = errs.Reject(errs.KindInvalidInput, "status must be one of pending, approved, rejected, cancelled")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return st, nil
	default:
		return "", ErrUnknownStatus
	}
}

// ParseStatuses parses a configured status list, skipping blanks and duplicates.
func ParseStatuses(values []string) ([]Status, error) {
	out := make([]Status, 0, len(values))
	seen := make(map[Status]struct{}, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		st, err := ParseStatus(v)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[st]; ok {
			continue
		}
		seen[st] = struct{}{}
		out = append(out, st)
	}
	return out, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusApproved
}
