package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"campus-booking/internal/pkg/errs"
)

var (
	ErrInvalidInterval  = errs.Reject(errs.KindInvalidInput, "end time must be after start time")
	ErrInvalidTimeOfDay = errs.Reject(errs.KindInvalidInput, "time must be formatted as HH:MM")
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps treats touching boundaries as disjoint, so back-to-back intervals never overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// TimeOfDay is a wall-clock offset from midnight, 00:00 through 24:00.
type TimeOfDay time.Duration

const endOfDay = TimeOfDay(24 * time.Hour)

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, ErrInvalidTimeOfDay
	}

	var fields [3]int
	for i, p := range parts {
		if len(p) != 2 {
			return 0, ErrInvalidTimeOfDay
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, ErrInvalidTimeOfDay
		}
		fields[i] = n
	}

	h, m, sec := fields[0], fields[1], fields[2]
	if m > 59 || sec > 59 || h > 24 || (h == 24 && (m != 0 || sec != 0)) {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second), nil
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

// On places t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, date.Location())
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// OnDate builds the interval [start, end) on the day of date.
func OnDate(date time.Time, start, end TimeOfDay) (Interval, error) {
	if end > endOfDay {
		return Interval{}, ErrInvalidTimeOfDay
	}
	return New(start.On(date), end.On(date))
}
