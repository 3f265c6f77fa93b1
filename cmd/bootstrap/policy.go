package bootstrap

import (
	"errors"
	"fmt"

	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var PolicyModule = fx.Module("policy",
	fx.Provide(
		NewPolicySet,
	),
)

// NewPolicySet overlays the configured blocking statuses and caps on the built-in kind rules.
func NewPolicySet(cfg config.Config) (policy.Set, error) {
	pc := cfg.Policy
	set := policy.Defaults()

	classroomBlocking, err := reservation.ParseStatuses(pc.ClassroomBlocking)
	if err != nil {
		return nil, fmt.Errorf("invalid CLASSROOM_BLOCKING_STATUSES: %w", err)
	}
	studyRoomBlocking, err := reservation.ParseStatuses(pc.StudyRoomBlocking)
	if err != nil {
		return nil, fmt.Errorf("invalid STUDY_ROOM_BLOCKING_STATUSES: %w", err)
	}
	if pc.SeatDailyCap < 0 || pc.SeatDailyCount < 0 || pc.StudyRoomDailyCap < 0 ||
		pc.StudyRoomMonthlyCap < 0 || pc.ClassroomDailyCap < 0 || pc.ClassroomMonthlyCap < 0 {
		return nil, errors.New("usage caps must not be negative")
	}

	classroom := set[resource.KindClassroom]
	classroom.Blocking = classroomBlocking
	classroom.Limits = quota.Limits{DailyHours: pc.ClassroomDailyCap, MonthlyHours: pc.ClassroomMonthlyCap}
	set[resource.KindClassroom] = classroom

	studyRoom := set[resource.KindStudyRoom]
	studyRoom.Blocking = studyRoomBlocking
	studyRoom.Limits = quota.Limits{DailyHours: pc.StudyRoomDailyCap, MonthlyHours: pc.StudyRoomMonthlyCap}
	set[resource.KindStudyRoom] = studyRoom

	seat := set[resource.KindReadingSeat]
	seat.Limits = quota.Limits{DailyHours: pc.SeatDailyCap, DailyCount: pc.SeatDailyCount}
	set[resource.KindReadingSeat] = seat

	if err := classroom.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CLASSROOM_BLOCKING_STATUSES: %w", err)
	}
	if err := studyRoom.Validate(); err != nil {
		return nil, fmt.Errorf("invalid STUDY_ROOM_BLOCKING_STATUSES: %w", err)
	}

	return set, nil
}
