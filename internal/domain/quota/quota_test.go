//go:build unit

package quota_test

import (
	"testing"
	"time"

	"campus-booking/internal/domain/quota"
	"campus-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var studyRoom = quota.Limits{DailyHours: 2 * time.Hour, MonthlyHours: 20 * time.Hour}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name   string
		limits quota.Limits
		usage  quota.Usage
		req    quota.Request
		errIs  error
	}{
		{
			name:   "one and a half hours after one hour exceeds the daily cap",
			limits: studyRoom,
			usage:  quota.Usage{Day: time.Hour, Month: time.Hour, DayCount: 1},
			req:    quota.Request{Duration: 90 * time.Minute, Count: 1},
			errIs:  quota.ErrDailyHours,
		},
		{
			name:   "reaching the daily cap exactly is allowed",
			limits: studyRoom,
			usage:  quota.Usage{Day: time.Hour, Month: time.Hour},
			req:    quota.Request{Duration: time.Hour, Count: 1},
		},
		{
			name:   "monthly cap",
			limits: studyRoom,
			usage:  quota.Usage{Month: 19*time.Hour + 30*time.Minute},
			req:    quota.Request{Duration: time.Hour, Count: 1},
			errIs:  quota.ErrMonthlyHours,
		},
		{
			name:   "daily hours reported before monthly hours",
			limits: studyRoom,
			usage:  quota.Usage{Day: 2 * time.Hour, Month: 20 * time.Hour},
			req:    quota.Request{Duration: time.Minute, Count: 1},
			errIs:  quota.ErrDailyHours,
		},
		{
			name:   "count cap",
			limits: quota.Limits{DailyHours: 6 * time.Hour, DailyCount: 10},
			usage:  quota.Usage{Day: time.Hour, DayCount: 10},
			req:    quota.Request{Duration: 30 * time.Minute, Count: 1},
			errIs:  quota.ErrDailyCount,
		},
		{
			name:  "unlimited",
			usage: quota.Usage{Day: 100 * time.Hour, Month: 1000 * time.Hour, DayCount: 99},
			req:   quota.Request{Duration: 24 * time.Hour, Count: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := quota.Check(tc.limits, tc.usage, tc.req)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
			assert.Equal(t, errs.KindQuotaExceeded, errs.KindOf(err))
		})
	}
}

func TestCheckIsMonotonic(t *testing.T) {
	usage := quota.Usage{Day: 45 * time.Minute, Month: 10 * time.Hour}
	rejected := false
	for d := 15 * time.Minute; d <= 4*time.Hour; d += 15 * time.Minute {
		err := quota.Check(studyRoom, usage, quota.Request{Duration: d, Count: 1})
		if rejected {
			assert.Error(t, err, "duration %s accepted after a shorter one was rejected", d)
		}
		if err != nil {
			rejected = true
		}
	}
	assert.True(t, rejected)
}
