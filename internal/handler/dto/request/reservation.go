package request

import (
	"strings"

	"campus-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// CreateReservationRequest is validated by the use case, so that the identity check
// runs before any field check.
type CreateReservationRequest struct {
	ResourceID string `json:"resource_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Purpose    string `json:"purpose"`
	Attendees  *int   `json:"attendees,omitempty"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	var in commands.CreateReservationInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.CreateReservationInput{}, err
	}
	in.Purpose = strings.TrimSpace(in.Purpose)
	return in, nil
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

func (r DecisionRequest) Approve() bool {
	return r.Decision == "approve"
}

type ReservationsQuery struct {
	Date       string `form:"date"`
	ResourceID string `form:"resource_id"`
}
