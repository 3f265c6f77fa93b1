//go:build unit

package bootstrap_test

import (
	"testing"
	"time"

	"campus-booking/cmd/bootstrap"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicySet(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		set, err := bootstrap.NewPolicySet(config.NewTestConfig())
		require.NoError(t, err)

		assert.Equal(t, quota.Limits{DailyHours: 2 * time.Hour, MonthlyHours: 20 * time.Hour}, set[resource.KindStudyRoom].Limits)
		assert.Equal(t, quota.Limits{DailyHours: 6 * time.Hour, DailyCount: 10}, set[resource.KindReadingSeat].Limits)
		assert.True(t, set[resource.KindClassroom].Limits.Unlimited())
		assert.Equal(t, []reservation.Status{reservation.StatusPending, reservation.StatusApproved}, set[resource.KindClassroom].Blocking)
		assert.True(t, set[resource.KindClassroom].ScheduleBound)
	})

	t.Run("configured overrides", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Policy.StudyRoomBlocking = []string{"approved"}
		cfg.Policy.StudyRoomDailyCap = 3 * time.Hour
		cfg.Policy.SeatDailyCount = 0

		set, err := bootstrap.NewPolicySet(cfg)
		require.NoError(t, err)
		assert.Equal(t, []reservation.Status{reservation.StatusApproved}, set[resource.KindStudyRoom].Blocking)
		assert.Equal(t, 3*time.Hour, set[resource.KindStudyRoom].Limits.DailyHours)
		assert.Zero(t, set[resource.KindReadingSeat].Limits.DailyCount)
	})

	t.Run("unknown status", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Policy.ClassroomBlocking = []string{"pending", "held"}

		_, err := bootstrap.NewPolicySet(cfg)
		assert.ErrorContains(t, err, "CLASSROOM_BLOCKING_STATUSES")
	})

	t.Run("blocking statuses that let accepted reservations overlap", func(t *testing.T) {
		tests := []struct {
			name      string
			classroom []string
			studyRoom []string
			errIs     error
			envVar    string
		}{
			{
				name:      "empty study room list",
				classroom: []string{"pending", "approved"},
				studyRoom: []string{""},
				errIs:     policy.ErrNoBlockingStatus,
				envVar:    "STUDY_ROOM_BLOCKING_STATUSES",
			},
			{
				name:      "study room without approved",
				classroom: []string{"pending", "approved"},
				studyRoom: []string{"rejected"},
				errIs:     policy.ErrApprovedNotBlocked,
				envVar:    "STUDY_ROOM_BLOCKING_STATUSES",
			},
			{
				name:      "study room pending only",
				classroom: []string{"pending", "approved"},
				studyRoom: []string{"pending"},
				errIs:     policy.ErrApprovedNotBlocked,
				envVar:    "STUDY_ROOM_BLOCKING_STATUSES",
			},
			{
				name:      "classroom requests start pending",
				classroom: []string{"approved"},
				studyRoom: []string{"approved"},
				errIs:     policy.ErrInitialNotBlocked,
				envVar:    "CLASSROOM_BLOCKING_STATUSES",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := config.NewTestConfig()
				cfg.Policy.ClassroomBlocking = tt.classroom
				cfg.Policy.StudyRoomBlocking = tt.studyRoom

				set, err := bootstrap.NewPolicySet(cfg)
				require.Error(t, err)
				assert.Nil(t, set)
				assert.ErrorIs(t, err, tt.errIs)
				assert.ErrorContains(t, err, tt.envVar)
			})
		}
	})

	t.Run("negative cap", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Policy.SeatDailyCap = -time.Hour

		_, err := bootstrap.NewPolicySet(cfg)
		assert.Error(t, err)
	})
}
