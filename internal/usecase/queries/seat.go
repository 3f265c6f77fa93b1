package queries

//go:generate mockgen -source=seat.go -destination=../../../tests/mock/queries/seat_mock.go -package=queriesmock

import (
	"context"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/shared"
)

type SeatQueries interface {
	Board(ctx context.Context, requester session.Identity) (*SeatBoardView, error)
}

type seatQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSeatQueries(uow shared.UnitOfWork) SeatQueries {
	return &seatQueriesImpl{uow: uow}
}

// Board lists occupied seats. Holders are not disclosed, except the requester's own seat.
func (q *seatQueriesImpl) Board(ctx context.Context, requester session.Identity) (*SeatBoardView, error) {
	board := &SeatBoardView{Occupied: []SeatView{}}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		open, err := reads.OpenSeatUsages(ctx, shared.SeatUsageFilter{})
		if err != nil {
			return errs.Wrap(err, "failed to load seat board")
		}
		for _, u := range open {
			seat := SeatView{SeatNumber: u.SeatNumber, StartAt: u.StartAt}
			board.Occupied = append(board.Occupied, seat)
			if requester.Authenticated() && u.UserID == requester.UserID {
				board.Mine = &seat
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}
