package request

import "campus-booking/internal/usecase/queries"

type AvailabilityQuery struct {
	Kind       string `form:"kind"`
	ResourceID string `form:"resource_id"`
	Date       string `form:"date"`
	Start      string `form:"start"`
	End        string `form:"end"`
}

func (q AvailabilityQuery) ToInput() queries.AvailabilityInput {
	return queries.AvailabilityInput{
		Kind:       q.Kind,
		ResourceID: q.ResourceID,
		Date:       q.Date,
		Start:      q.Start,
		End:        q.End,
	}
}

type ScheduleQuery struct {
	ResourceID string `form:"resource_id"`
	Date       string `form:"date"`
}

type ResourcesQuery struct {
	Kind string `form:"kind"`
}
