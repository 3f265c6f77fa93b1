package calendar

import (
	"strings"
	"time"

	"campus-booking/internal/pkg/errs"
)

var ErrInvalidDate = errs.Reject(errs.KindInvalidInput, "date must be formatted as YYYY-MM-DD")

const DateLayout = "2006-01-02"

// Semester is a named term. Start and End are inclusive calendar dates.
type Semester struct {
	Code  string
	Start time.Time
	End   time.Time
}

func (s Semester) Contains(date time.Time) bool {
	d := dayNumber(date)
	return dayNumber(s.Start) <= d && d <= dayNumber(s.End)
}

// Table is an ordered set of semester ranges.
type Table []Semester

// Resolve returns the first semester containing date and how many semesters matched.
// More than one match means the reference data overlaps.
func (t Table) Resolve(date time.Time) (Semester, int) {
	var (
		first   Semester
		matches int
	)
	for _, s := range t {
		if !s.Contains(date) {
			continue
		}
		if matches == 0 {
			first = s
		}
		matches++
	}
	return first, matches
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func dayNumber(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
