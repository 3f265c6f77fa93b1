//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/shared"
	"campus-booking/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SeatCommandsTestSuite struct {
	suite.Suite
	store     *fake.Store
	publisher *fake.Publisher
	clock     *clock.MockClock
	commands  commands.SeatCommands
}

func TestSeatCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(SeatCommandsTestSuite))
}

func (s *SeatCommandsTestSuite) SetupTest() {
	s.store = fake.NewStore()
	seed(s.T(), s.store)
	s.publisher = &fake.Publisher{}
	s.clock = clock.NewMockClock(time.Date(2025, 4, 7, 15, 0, 0, 0, kst))
	s.commands = commands.NewSeatCommands(s.store, policy.Defaults(), 30*time.Minute, s.publisher, s.clock)
}

func (s *SeatCommandsTestSuite) assertRejected(err error, target error, kind errs.Kind) {
	s.T().Helper()
	s.Require().Error(err)
	s.ErrorIs(err, target)
	s.Equal(kind, errs.KindOf(err))
}

func (s *SeatCommandsTestSuite) TestCheckInThenOut() {
	ctx := context.Background()

	res, err := s.commands.CheckIn(ctx, alice, 5)
	s.Require().NoError(err)
	s.Equal(5, res.SeatNumber)
	s.Equal(s.clock.Now(), res.StartAt)

	open := s.store.OpenSeatUsages()
	s.Require().Len(open, 1)
	s.Equal(alice.UserID, open[0].UserID)
	s.Equal(alice.DisplayName, open[0].UserName)

	s.clock.Add(time.Hour)
	s.Require().NoError(s.commands.CheckOut(ctx, alice, 5))
	s.Empty(s.store.OpenSeatUsages())

	s.Equal([]shared.EventType{shared.EventSeatCheckedIn, shared.EventSeatCheckedOut}, s.publisher.Types())
}

func (s *SeatCommandsTestSuite) TestCheckIn_SecondSeatWhileSeated() {
	ctx := context.Background()

	_, err := s.commands.CheckIn(ctx, alice, 5)
	s.Require().NoError(err)

	_, err = s.commands.CheckIn(ctx, alice, 7)
	s.assertRejected(err, occupancy.ErrAlreadySeated, errs.KindConflict)
	s.Len(s.store.OpenSeatUsages(), 1)
}

func (s *SeatCommandsTestSuite) TestCheckIn_OccupiedSeat() {
	ctx := context.Background()

	_, err := s.commands.CheckIn(ctx, alice, 5)
	s.Require().NoError(err)

	_, err = s.commands.CheckIn(ctx, bob, 5)
	s.assertRejected(err, occupancy.ErrSeatOccupied, errs.KindConflict)
}

func (s *SeatCommandsTestSuite) TestCheckIn_DailyHoursCap() {
	end := s.clock.Now().Add(-time.Hour)
	s.store.AddSeatUsage(occupancy.Usage{
		ID:         uuid.New(),
		SeatNumber: 7,
		UserID:     alice.UserID,
		StartAt:    end.Add(-6 * time.Hour),
		EndAt:      &end,
	})

	_, err := s.commands.CheckIn(context.Background(), alice, 5)
	s.assertRejected(err, quota.ErrDailyHours, errs.KindQuotaExceeded)
}

func (s *SeatCommandsTestSuite) TestCheckIn_UsageFromYesterdayDoesNotCount() {
	end := time.Date(2025, 4, 6, 23, 0, 0, 0, kst)
	s.store.AddSeatUsage(occupancy.Usage{
		ID:         uuid.New(),
		SeatNumber: 7,
		UserID:     alice.UserID,
		StartAt:    end.Add(-8 * time.Hour),
		EndAt:      &end,
	})

	_, err := s.commands.CheckIn(context.Background(), alice, 5)
	s.NoError(err)
}

func (s *SeatCommandsTestSuite) TestCheckIn_Rejections() {
	ctx := context.Background()

	_, err := s.commands.CheckIn(ctx, session.Anonymous, 5)
	s.assertRejected(err, commands.ErrLoginRequired, errs.KindUnauthenticated)

	_, err = s.commands.CheckIn(ctx, alice, 0)
	s.assertRejected(err, occupancy.ErrInvalidSeat, errs.KindInvalidInput)

	_, err = s.commands.CheckIn(ctx, alice, 99)
	s.assertRejected(err, commands.ErrSeatNotFound, errs.KindNotFound)

	s.Empty(s.store.OpenSeatUsages())
	s.Empty(s.publisher.Events())
}

func (s *SeatCommandsTestSuite) TestCheckOut_Rejections() {
	ctx := context.Background()

	err := s.commands.CheckOut(ctx, alice, 5)
	s.assertRejected(err, occupancy.ErrSeatNotOccupied, errs.KindConflict)

	_, err = s.commands.CheckIn(ctx, alice, 5)
	s.Require().NoError(err)

	err = s.commands.CheckOut(ctx, bob, 5)
	s.assertRejected(err, occupancy.ErrNotSeatHolder, errs.KindForbidden)
	s.Len(s.store.OpenSeatUsages(), 1)

	err = s.commands.CheckOut(ctx, alice, 99)
	s.assertRejected(err, commands.ErrSeatNotFound, errs.KindNotFound)
}

func (s *SeatCommandsTestSuite) TestCheckIn_ConcurrentSameMember() {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for _, seat := range []int{5, 7, 5, 7} {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			_, err := s.commands.CheckIn(context.Background(), alice, seat)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(seat)
	}
	wg.Wait()

	s.Equal(1, accepted)
	s.Len(s.store.OpenSeatUsages(), 1)
}
