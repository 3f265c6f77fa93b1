package response

import (
	"time"

	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SeatResponse struct {
	SeatNumber int       `json:"seat_number"`
	StartAt    time.Time `json:"start_at"`
}

type SeatBoardResponse struct {
	Occupied []SeatResponse `json:"occupied"`
	Mine     *SeatResponse  `json:"mine,omitempty"`
}

type CheckInResponse struct {
	UsageID    uuid.UUID `json:"usage_id"`
	SeatNumber int       `json:"seat_number"`
	StartAt    time.Time `json:"start_at"`
}

func FromSeatBoard(v *queries.SeatBoardView) *SeatBoardResponse {
	res := &SeatBoardResponse{Occupied: make([]SeatResponse, len(v.Occupied))}
	for i, s := range v.Occupied {
		res.Occupied[i] = SeatResponse(s)
	}
	if v.Mine != nil {
		mine := SeatResponse(*v.Mine)
		res.Mine = &mine
	}
	return res
}

func FromSeatResult(r *commands.SeatResult) *CheckInResponse {
	return &CheckInResponse{
		UsageID:    r.UsageID,
		SeatNumber: r.SeatNumber,
		StartAt:    r.StartAt,
	}
}
