package quota

import (
	"time"

	"campus-booking/internal/pkg/errs"
)

var (
	ErrDailyHours   = errs.Reject(errs.KindQuotaExceeded, "daily usage hours limit exceeded")
	ErrMonthlyHours = errs.Reject(errs.KindQuotaExceeded, "monthly usage hours limit exceeded")
	ErrDailyCount   = errs.Reject(errs.KindQuotaExceeded, "daily usage count limit exceeded")
)

// Limits caps a member's usage of one resource kind. A zero field is unlimited.
type Limits struct {
	DailyHours   time.Duration
	MonthlyHours time.Duration
	DailyCount   int
}

func (l Limits) Unlimited() bool {
	return l.DailyHours == 0 && l.MonthlyHours == 0 && l.DailyCount == 0
}

// Usage is what a member already holds in the current day and month windows.
type Usage struct {
	Day      time.Duration
	Month    time.Duration
	DayCount int
}

// Request is the usage a new booking would add.
type Request struct {
	Duration time.Duration
	Count    int
}

// Check returns the first cap the request would push usage strictly above.
// Reaching a cap exactly is allowed.
func Check(l Limits, u Usage, r Request) error {
	if l.DailyHours > 0 && u.Day+r.Duration > l.DailyHours {
		return ErrDailyHours
	}
	if l.MonthlyHours > 0 && u.Month+r.Duration > l.MonthlyHours {
		return ErrMonthlyHours
	}
	if l.DailyCount > 0 && u.DayCount+r.Count > l.DailyCount {
		return ErrDailyCount
	}
	return nil
}
