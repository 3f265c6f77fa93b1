//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	kst     = time.FixedZone("KST", 9*60*60)
	now     = time.Date(2025, 4, 7, 15, 0, 0, 0, kst)
	limits  = quota.Limits{DailyHours: 6 * time.Hour, DailyCount: 10}
	minimum = 30 * time.Minute
	member  = session.Identity{UserID: "u-1", DisplayName: "Lee"}
)

func closed(seat int, start, end time.Time) occupancy.Usage {
	return occupancy.Usage{ID: uuid.New(), SeatNumber: seat, UserID: member.UserID, StartAt: start, EndAt: &end}
}

func TestStart(t *testing.T) {
	u, err := occupancy.Start(5, member, now)
	require.NoError(t, err)
	assert.True(t, u.Open())
	assert.Equal(t, 5, u.SeatNumber)
	assert.Equal(t, "Lee", u.UserName)
	assert.Equal(t, time.Hour, u.Duration(now.Add(time.Hour)))

	u.Close(now.Add(2 * time.Hour))
	assert.False(t, u.Open())
	assert.Equal(t, 2*time.Hour, u.Duration(now.Add(5*time.Hour)))

	_, err = occupancy.Start(0, member, now)
	assert.ErrorIs(t, err, occupancy.ErrInvalidSeat)
	_, err = occupancy.Start(3, session.Anonymous, now)
	assert.ErrorIs(t, err, occupancy.ErrAnonymousVisitor)
}

func TestCheckIn(t *testing.T) {
	seat5, err := occupancy.Start(5, member, now.Add(-time.Hour))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		state occupancy.State
		errIs error
		kind  errs.Kind
	}{
		{name: "free seat", state: occupancy.State{}},
		{
			name:  "seat held by someone else",
			state: occupancy.State{SeatHolder: &occupancy.Usage{SeatNumber: 7, UserID: "u-2"}},
			errIs: occupancy.ErrSeatOccupied,
			kind:  errs.KindConflict,
		},
		{
			name:  "member already seated at 5 tries seat 7",
			state: occupancy.State{UserSeat: &seat5, Today: []occupancy.Usage{seat5}},
			errIs: occupancy.ErrAlreadySeated,
			kind:  errs.KindConflict,
		},
		{
			name: "minimum session would exceed the daily hours",
			state: occupancy.State{Today: []occupancy.Usage{
				closed(1, now.Add(-7*time.Hour), now.Add(-time.Hour)),
			}},
			errIs: quota.ErrDailyHours,
			kind:  errs.KindQuotaExceeded,
		},
		{
			name: "minimum session reaches the daily hours exactly",
			state: occupancy.State{Today: []occupancy.Usage{
				closed(1, now.Add(-7*time.Hour), now.Add(-90*time.Minute)),
			}},
		},
		{
			name: "daily count",
			state: occupancy.State{Today: func() []occupancy.Usage {
				out := make([]occupancy.Usage, 10)
				for i := range out {
					start := now.Add(-time.Duration(10-i) * 10 * time.Minute)
					out[i] = closed(i+1, start, start.Add(5*time.Minute))
				}
				return out
			}()},
			errIs: quota.ErrDailyCount,
			kind:  errs.KindQuotaExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := occupancy.CheckIn(tc.state, limits, minimum, now)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, tc.kind, errs.KindOf(err))
		})
	}
}

func TestCheckOut(t *testing.T) {
	open, err := occupancy.Start(5, member, now)
	require.NoError(t, err)

	assert.NoError(t, occupancy.CheckOut(&open, member.UserID))

	err = occupancy.CheckOut(&open, "u-2")
	assert.ErrorIs(t, err, occupancy.ErrNotSeatHolder)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))

	err = occupancy.CheckOut(nil, member.UserID)
	assert.ErrorIs(t, err, occupancy.ErrSeatNotOccupied)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))

	open.Close(now.Add(time.Hour))
	assert.ErrorIs(t, occupancy.CheckOut(&open, member.UserID), occupancy.ErrSeatNotOccupied)
}
