//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"campus-booking/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference data seeded into every test database.
const (
	ClassroomID     = "ENG-101"
	StudyRoomID     = "LIB-S1"
	OtherStudyRoom  = "LIB-S2"
	SemesterCode    = "TEST-SEM"
	MemberLoginID   = "2021000001"
	MemberName      = "Kim Hana"
	OtherLoginID    = "2021000002"
	OtherName       = "Lee Dul"
	MemberPassword  = "password123"
	ReadingSeatBase = 1
	ReadingSeats    = 3
)

var (
	hashOnce   sync.Once
	hashed     string
	errHashing error
)

func memberPasswordHash() (string, error) {
	hashOnce.Do(func() {
		hashed, errHashing = password.Hash(MemberPassword)
	})
	return hashed, errHashing
}

// CreateTestMember registers credentials for the local auth provider.
func CreateTestMember(t *testing.T, db DBLike, loginID, displayName string) string {
	t.Helper()

	hash, err := memberPasswordHash()
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO members (user_id, login_id, display_name, password_hash) VALUES ($1, $1, $2, $3) ON CONFLICT (user_id) DO NOTHING",
		loginID, displayName, hash)
	require.NoError(t, err)

	return loginID
}

func CreateClassSchedule(t *testing.T, db DBLike, resourceID, dayOfWeek, start, end string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO class_schedules (resource_id, day_of_week, start_time, end_time, semester_code, course_name) VALUES ($1, $2, $3, $4, $5, 'Test Course')",
		resourceID, dayOfWeek, start, end, SemesterCode)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	today := time.Now()
	_, err := pool.Exec(ctx, `
		INSERT INTO semesters (code, start_date, end_date) VALUES ($1, $2, $3)
		ON CONFLICT (code) DO NOTHING;
	`, SemesterCode, today.AddDate(0, -1, 0).Format(time.DateOnly), today.AddDate(0, 3, 0).Format(time.DateOnly))
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO resources (id, kind, name, capacity) VALUES
		    ($1, 'classroom', 'Engineering 101', 40),
		    ($2, 'study_room', 'Library Study Room 1', 6),
		    ($3, 'study_room', 'Library Study Room 2', 4)
		ON CONFLICT (id) DO NOTHING;
	`, ClassroomID, StudyRoomID, OtherStudyRoom)
	if err != nil {
		return err
	}

	for n := ReadingSeatBase; n < ReadingSeatBase+ReadingSeats; n++ {
		_, err = pool.Exec(ctx, `
			INSERT INTO resources (id, kind, name, seat_number) VALUES ($1, 'reading_seat', $2, $3)
			ON CONFLICT (id) DO NOTHING;
		`, fmt.Sprintf("SEAT-%03d", n), fmt.Sprintf("Reading Seat %d", n), n)
		if err != nil {
			return err
		}
	}

	hash, err := memberPasswordHash()
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO members (user_id, login_id, display_name, password_hash) VALUES
		    ($1, $1, $2, $5),
		    ($3, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING;
	`, MemberLoginID, MemberName, OtherLoginID, OtherName, hash)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
