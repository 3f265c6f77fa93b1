package converter

import (
	"fmt"
	"math"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/reservation"
	sqlc "campus-booking/internal/infra/sqlc/generated"
	"campus-booking/internal/pkg/pgconv"
	"campus-booking/internal/usecase/shared"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	iv := res.Interval()
	return sqlc.CreateReservationParams{
		ID:              res.ID(),
		ResourceID:      res.ResourceID(),
		UserID:          res.UserID(),
		UserName:        res.UserName(),
		ReservationDate: pgconv.DateToPgtype(res.Date()),
		StartAt:         pgconv.TimeToPgtype(iv.Start),
		EndAt:           pgconv.TimeToPgtype(iv.End),
		Purpose:         res.Purpose(),
		Attendees:       pgconv.IntPtrToPgtype(res.Attendees()),
		Status:          res.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationStatusToInfra(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func SeatUsageToInfra(u occupancy.Usage) sqlc.CreateSeatUsageParams {
	if u.SeatNumber > math.MaxInt32 || u.SeatNumber < math.MinInt32 {
		panic(fmt.Sprintf("seat number out of int32 range: %d", u.SeatNumber))
	}
	return sqlc.CreateSeatUsageParams{
		ID:         u.ID,
		SeatNumber: int32(u.SeatNumber),
		UserID:     u.UserID,
		UserName:   u.UserName,
		StartAt:    pgconv.TimeToPgtype(u.StartAt),
	}
}

func AuditEntryToInfra(e shared.AuditEntry) sqlc.CreateReservationLogParams {
	return sqlc.CreateReservationLogParams{
		ReservationID: e.ReservationID,
		ResourceID:    e.ResourceID,
		UserID:        e.UserID,
		Action:        string(e.Action),
		CreatedAt:     pgconv.TimeToPgtype(e.At),
	}
}
