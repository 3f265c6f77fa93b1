package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ResourceView struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Capacity   *int   `json:"capacity,omitempty"`
	SeatNumber *int   `json:"seat_number,omitempty"`
}

type SlotView struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type AvailabilityView struct {
	ResourceID   string     `json:"resource_id"`
	ResourceName string     `json:"resource_name"`
	Kind         string     `json:"kind"`
	Capacity     *int       `json:"capacity,omitempty"`
	Slots        []SlotView `json:"slots"`
}

type ScheduleEntryView struct {
	ResourceID   string `json:"resource_id"`
	DayOfWeek    string `json:"day_of_week"`
	Start        string `json:"start"`
	End          string `json:"end"`
	SemesterCode string `json:"semester_code"`
	CourseName   string `json:"course_name"`
}

type ScheduleView struct {
	Date         string              `json:"date"`
	DayOfWeek    string              `json:"day_of_week"`
	SemesterCode string              `json:"semester_code,omitempty"`
	Entries      []ScheduleEntryView `json:"entries"`
}

type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	ResourceKind string    `json:"resource_kind"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Purpose      string    `json:"purpose,omitempty"`
	Attendees    *int      `json:"attendees,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type SeatView struct {
	SeatNumber int       `json:"seat_number"`
	StartAt    time.Time `json:"start_at"`
}

type SeatBoardView struct {
	Occupied []SeatView `json:"occupied"`
	Mine     *SeatView  `json:"mine,omitempty"`
}
