package response

import (
	"campus-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	ResourceID   string         `json:"resource_id"`
	ResourceName string         `json:"resource_name"`
	Kind         string         `json:"kind"`
	Capacity     *int           `json:"capacity,omitempty"`
	Slots        []SlotResponse `json:"slots"`
}

type ResourceResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Capacity   *int   `json:"capacity,omitempty"`
	SeatNumber *int   `json:"seat_number,omitempty"`
}

type ScheduleEntryResponse struct {
	DayOfWeek    string `json:"day_of_week"`
	Start        string `json:"start"`
	End          string `json:"end"`
	SemesterCode string `json:"semester_code"`
	CourseName   string `json:"course_name"`
}

type ScheduleResponse struct {
	ResourceID   string                  `json:"resource_id"`
	Date         string                  `json:"date"`
	DayOfWeek    string                  `json:"day_of_week"`
	SemesterCode string                  `json:"semester_code,omitempty"`
	Entries      []ScheduleEntryResponse `json:"entries"`
}

func FromAvailabilityViews(views []queries.AvailabilityView) []AvailabilityResponse {
	res := make([]AvailabilityResponse, len(views))
	for i, v := range views {
		slots := make([]SlotResponse, len(v.Slots))
		for j, s := range v.Slots {
			slots[j] = SlotResponse{Start: s.Start, End: s.End, Available: s.Available}
		}
		res[i] = AvailabilityResponse{
			ResourceID:   v.ResourceID,
			ResourceName: v.ResourceName,
			Kind:         v.Kind,
			Capacity:     v.Capacity,
			Slots:        slots,
		}
	}
	return res
}

func FromResourceViews(views []queries.ResourceView) ([]ResourceResponse, error) {
	res := make([]ResourceResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromScheduleView(resourceID string, v *queries.ScheduleView) *ScheduleResponse {
	entries := make([]ScheduleEntryResponse, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, ScheduleEntryResponse{
			DayOfWeek:    e.DayOfWeek,
			Start:        e.Start,
			End:          e.End,
			SemesterCode: e.SemesterCode,
			CourseName:   e.CourseName,
		})
	}
	return &ScheduleResponse{
		ResourceID:   resourceID,
		Date:         v.Date,
		DayOfWeek:    v.DayOfWeek,
		SemesterCode: v.SemesterCode,
		Entries:      entries,
	}
}
