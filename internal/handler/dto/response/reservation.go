package response

import (
	"time"

	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

type ReservationStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromReservationViews(views []queries.ReservationView) ([]ReservationResponse, error) {
	res := make([]ReservationResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromReservationResult(r *commands.ReservationResult) *ReservationStatusResponse {
	return &ReservationStatusResponse{
		ID:     r.ID,
		Status: r.Status.String(),
	}
}
