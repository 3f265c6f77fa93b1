package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

// OptionalText maps the empty string to NULL, which the queries read as "no filter".
func OptionalText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func IntPtrFromPgtype(pi pgtype.Int4) *int {
	if !pi.Valid {
		return nil
	}
	v := int(pi.Int32)
	return &v
}

func IntPtrToPgtype(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true} // #nosec G115 -- capacities and seat numbers are small
}

func TimeFromPgtype(pt pgtype.Timestamptz, loc *time.Location) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.In(loc)
}

func TimePtrFromPgtype(pt pgtype.Timestamptz, loc *time.Location) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time.In(loc)
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateToPgtype keeps the calendar day of t in its own location.
func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DatePtrToPgtype(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*t)
}

// DateFromPgtype returns midnight of the stored day in loc.
func DateFromPgtype(pd pgtype.Date, loc *time.Location) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DurationFromPgtime converts a TIME column to the offset from midnight.
func DurationFromPgtime(pt pgtype.Time) time.Duration {
	if !pt.Valid {
		return 0
	}
	return time.Duration(pt.Microseconds) * time.Microsecond
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
