//go:build unit

package policy_test

import (
	"testing"

	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	set := policy.Defaults()

	classroom, err := set.For(resource.KindClassroom)
	require.NoError(t, err)
	assert.True(t, classroom.ScheduleBound)
	assert.True(t, classroom.CapacityChecked)
	assert.True(t, classroom.Limits.Unlimited())
	assert.Equal(t, reservation.StatusPending, classroom.InitialStatus)
	assert.True(t, classroom.Blocks(reservation.StatusPending))
	assert.False(t, classroom.Blocks(reservation.StatusRejected))

	room, err := set.For(resource.KindStudyRoom)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusApproved, room.InitialStatus)
	assert.False(t, room.ScheduleBound)

	_, err = set.For(resource.Kind("gym"))
	assert.ErrorIs(t, err, policy.ErrUnsupportedKind)
}

func TestBlockingUnion(t *testing.T) {
	set := policy.Set{
		resource.KindClassroom: {Blocking: []reservation.Status{reservation.StatusApproved}},
		resource.KindStudyRoom: {Blocking: []reservation.Status{reservation.StatusPending, reservation.StatusApproved}},
	}
	assert.Equal(t,
		[]reservation.Status{reservation.StatusApproved, reservation.StatusPending},
		set.BlockingUnion(),
	)
	assert.Empty(t, policy.Set{}.BlockingUnion())
}

func TestPolicyValidate(t *testing.T) {
	held := []reservation.Status{reservation.StatusPending, reservation.StatusApproved}

	tests := []struct {
		name  string
		pol   policy.Policy
		errIs error
	}{
		{name: "defaults hold", pol: policy.Defaults()[resource.KindClassroom]},
		{name: "seats carry no statuses", pol: policy.Defaults()[resource.KindReadingSeat]},
		{
			name:  "empty",
			pol:   policy.Policy{InitialStatus: reservation.StatusApproved},
			errIs: policy.ErrNoBlockingStatus,
		},
		{
			name:  "approved missing",
			pol:   policy.Policy{Blocking: []reservation.Status{reservation.StatusPending}, InitialStatus: reservation.StatusPending},
			errIs: policy.ErrApprovedNotBlocked,
		},
		{
			name:  "initial status missing",
			pol:   policy.Policy{Blocking: []reservation.Status{reservation.StatusApproved}, InitialStatus: reservation.StatusPending},
			errIs: policy.ErrInitialNotBlocked,
		},
		{
			name: "approved only for direct approval",
			pol:  policy.Policy{Blocking: []reservation.Status{reservation.StatusApproved}, InitialStatus: reservation.StatusApproved},
		},
		{
			name: "pending and approved",
			pol:  policy.Policy{Blocking: held, InitialStatus: reservation.StatusPending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pol.Validate()
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
