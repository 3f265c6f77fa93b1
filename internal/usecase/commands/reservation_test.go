//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campus-booking/internal/domain/calendar"
	"campus-booking/internal/domain/policy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/domain/resource"
	"campus-booking/internal/domain/session"
	"campus-booking/internal/domain/timeslot"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/shared"
	"campus-booking/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	kst   = time.FixedZone("KST", 9*60*60)
	alice = session.Identity{UserID: "2023001", DisplayName: "Alice"}
	bob   = session.Identity{UserID: "2023002", DisplayName: "Bob"}
	admin = session.Identity{UserID: "admin-1", DisplayName: "Admin"}
)

// Monday in the first semester.
const monday = "2025-04-07"

func intPtr(v int) *int { return &v }

func seed(t *testing.T, store *fake.Store) {
	t.Helper()

	add := func(id string, kind resource.Kind, name string, capacity, seat *int) {
		r, err := resource.NewResource(id, kind, name, capacity, seat)
		require.NoError(t, err)
		store.AddResource(r)
	}
	add("C1", resource.KindClassroom, "Engineering 101", intPtr(30), nil)
	add("S1", resource.KindStudyRoom, "Study Room A", intPtr(6), nil)
	add("seat-5", resource.KindReadingSeat, "Seat 5", nil, intPtr(5))
	add("seat-7", resource.KindReadingSeat, "Seat 7", nil, intPtr(7))

	store.AddSemester(calendar.Semester{
		Code:  "2025-1",
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, kst),
		End:   time.Date(2025, 6, 20, 0, 0, 0, 0, kst),
	})
	store.AddScheduleEntry(shared.ScheduleEntry{
		ResourceID:   "C1",
		DayOfWeek:    "월요일",
		Start:        timeslot.TimeOfDay(10 * time.Hour),
		End:          timeslot.TimeOfDay(12 * time.Hour),
		SemesterCode: "2025-1",
		CourseName:   "Algorithms",
	})
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	store     *fake.Store
	publisher *fake.Publisher
	clock     *clock.MockClock
	commands  commands.ReservationCommands
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.store = fake.NewStore()
	seed(s.T(), s.store)
	s.publisher = &fake.Publisher{}
	s.clock = clock.NewMockClock(time.Date(2025, 4, 6, 20, 0, 0, 0, kst))
	s.commands = commands.NewReservationCommands(s.store, policy.Defaults(), []string{admin.UserID}, s.publisher, s.clock)
}

func (s *ReservationCommandsTestSuite) classroom(start, end string) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID: "C1",
		UserID:     alice.UserID,
		Date:       monday,
		StartTime:  start,
		EndTime:    end,
		Purpose:    "study group",
		Attendees:  intPtr(10),
	}
}

func (s *ReservationCommandsTestSuite) studyRoom(start, end string) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID: "S1",
		Date:       monday,
		StartTime:  start,
		EndTime:    end,
	}
}

func (s *ReservationCommandsTestSuite) assertRejected(err error, target error, kind errs.Kind) {
	s.T().Helper()
	s.Require().Error(err)
	s.ErrorIs(err, target)
	s.Equal(kind, errs.KindOf(err))
}

func (s *ReservationCommandsTestSuite) TestCreate_ClassSchedule() {
	ctx := context.Background()

	_, err := s.commands.Create(ctx, alice, s.classroom("10:30", "11:00"))
	s.assertRejected(err, reservation.ErrScheduleConflict, errs.KindConflict)

	res, err := s.commands.Create(ctx, alice, s.classroom("12:00", "12:30"))
	s.Require().NoError(err)
	s.Equal(reservation.StatusPending, res.Status)

	row, ok := s.store.Reservation(res.ID)
	s.Require().True(ok)
	s.Equal("Engineering 101", row.ResourceName)
	s.Equal(time.Date(2025, 4, 7, 12, 0, 0, 0, kst), row.StartAt)

	audit := s.store.Audit()
	s.Require().Len(audit, 1)
	s.Equal(shared.AuditCreated, audit[0].Action)
	s.Equal(res.ID, audit[0].ReservationID)
	s.Equal("C1", audit[0].ResourceID)
	s.Equal(alice.UserID, audit[0].UserID)

	s.Equal([]shared.EventType{shared.EventReservationCreated}, s.publisher.Types())
}

func (s *ReservationCommandsTestSuite) TestCreate_StudyRoomQuota() {
	ctx := context.Background()

	res, err := s.commands.Create(ctx, alice, s.studyRoom("09:00", "10:00"))
	s.Require().NoError(err)
	s.Equal(reservation.StatusApproved, res.Status)

	_, err = s.commands.Create(ctx, alice, s.studyRoom("10:00", "11:30"))
	s.assertRejected(err, quota.ErrDailyHours, errs.KindQuotaExceeded)

	// exactly reaching the cap is fine
	_, err = s.commands.Create(ctx, alice, s.studyRoom("10:00", "11:00"))
	s.NoError(err)

	// another member has their own quota
	_, err = s.commands.Create(ctx, bob, s.studyRoom("13:00", "15:00"))
	s.NoError(err)

	s.Len(s.store.Audit(), 3)
}

// bookStudyRoom stores an approved S1 reservation from 09:00 lasting d on the given day of 2025.
func (s *ReservationCommandsTestSuite) bookStudyRoom(owner session.Identity, month time.Month, day int, d time.Duration) *reservation.Reservation {
	s.T().Helper()
	date := time.Date(2025, month, day, 0, 0, 0, 0, kst)
	start := timeslot.TimeOfDay(9 * time.Hour)
	interval, err := timeslot.OnDate(date, start, start+timeslot.TimeOfDay(d))
	s.Require().NoError(err)

	r, err := reservation.New(reservation.Draft{
		ResourceID: "S1",
		Owner:      owner,
		Date:       date,
		Interval:   interval,
		Status:     reservation.StatusApproved,
	}, s.clock.Now())
	s.Require().NoError(err)
	s.store.AddReservation(r)
	return r
}

// seedAprilHours books 19 hours of S1 for owner across April, none of it on the Monday under test.
func (s *ReservationCommandsTestSuite) seedAprilHours(owner session.Identity) {
	s.T().Helper()
	for day := 1; day <= 6; day++ {
		s.bookStudyRoom(owner, time.April, day, 2*time.Hour)
	}
	for day := 14; day <= 16; day++ {
		s.bookStudyRoom(owner, time.April, day, 2*time.Hour)
	}
	s.bookStudyRoom(owner, time.April, 17, time.Hour)
}

func (s *ReservationCommandsTestSuite) TestCreate_StudyRoomMonthlyQuota() {
	testCases := []struct {
		name  string
		setup func()
		start string
		end   string
		errIs error
	}{
		{
			name:  "request pushes the month past the cap",
			setup: func() { s.seedAprilHours(alice) },
			start: "09:00",
			end:   "10:30",
			errIs: quota.ErrMonthlyHours,
		},
		{
			name:  "request lands exactly on the cap",
			setup: func() { s.seedAprilHours(alice) },
			start: "09:00",
			end:   "10:00",
		},
		{
			name: "rows in the neighbouring months do not count",
			setup: func() {
				s.seedAprilHours(alice)
				s.bookStudyRoom(alice, time.March, 31, 2*time.Hour)
				s.bookStudyRoom(alice, time.May, 1, 2*time.Hour)
			},
			start: "09:00",
			end:   "10:00",
		},
		{
			name: "cancelled rows do not count",
			setup: func() {
				s.seedAprilHours(alice)
				r := s.bookStudyRoom(alice, time.April, 20, 2*time.Hour)
				s.Require().NoError(r.Cancel(alice.UserID, s.clock.Now()))
				s.store.AddReservation(r)
			},
			start: "09:00",
			end:   "10:00",
		},
		{
			name:  "another member's hours are their own",
			setup: func() { s.seedAprilHours(bob) },
			start: "09:00",
			end:   "11:00",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setup()

			res, err := s.commands.Create(context.Background(), alice, s.studyRoom(tc.start, tc.end))
			if tc.errIs != nil {
				s.assertRejected(err, tc.errIs, errs.KindQuotaExceeded)
				s.Empty(s.store.Audit())
				return
			}
			s.Require().NoError(err)
			s.Equal(reservation.StatusApproved, res.Status)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestCreate_ReservationConflict() {
	ctx := context.Background()

	_, err := s.commands.Create(ctx, alice, s.studyRoom("14:00", "15:00"))
	s.Require().NoError(err)

	_, err = s.commands.Create(ctx, bob, s.studyRoom("14:30", "15:30"))
	s.assertRejected(err, reservation.ErrReservationConflict, errs.KindConflict)

	_, err = s.commands.Create(ctx, bob, s.studyRoom("15:00", "16:00"))
	s.NoError(err, "back to back bookings are legal")
}

func (s *ReservationCommandsTestSuite) TestCreate_CancelledReservationFreesTheSlot() {
	ctx := context.Background()

	res, err := s.commands.Create(ctx, alice, s.studyRoom("14:00", "15:00"))
	s.Require().NoError(err)
	s.Require().NoError(s.commands.Cancel(ctx, alice, res.ID))

	_, err = s.commands.Create(ctx, bob, s.studyRoom("14:00", "15:00"))
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCreate_Rejections() {
	testCases := []struct {
		name      string
		requester session.Identity
		input     func() commands.CreateReservationInput
		errIs     error
		kind      errs.Kind
	}{
		{
			name:      "anonymous requester",
			requester: session.Anonymous,
			input:     func() commands.CreateReservationInput { return s.classroom("12:00", "13:00") },
			errIs:     commands.ErrLoginRequired,
			kind:      errs.KindUnauthenticated,
		},
		{
			name:      "claimed owner differs from the session",
			requester: bob,
			input:     func() commands.CreateReservationInput { return s.classroom("12:00", "13:00") },
			errIs:     commands.ErrOwnerMismatch,
			kind:      errs.KindForbidden,
		},
		{
			name:      "owner mismatch is reported before malformed fields",
			requester: bob,
			input: func() commands.CreateReservationInput {
				in := s.classroom("25:00", "nope")
				in.Date = "tomorrow"
				return in
			},
			errIs: commands.ErrOwnerMismatch,
			kind:  errs.KindForbidden,
		},
		{
			name:      "malformed date",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Date = "07/04/2025"
				return in
			},
			errIs: calendar.ErrInvalidDate,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "malformed time",
			requester: alice,
			input:     func() commands.CreateReservationInput { return s.classroom("12", "13:00") },
			errIs:     timeslot.ErrInvalidTimeOfDay,
			kind:      errs.KindInvalidInput,
		},
		{
			name:      "end before start",
			requester: alice,
			input:     func() commands.CreateReservationInput { return s.classroom("13:00", "12:00") },
			errIs:     timeslot.ErrInvalidInterval,
			kind:      errs.KindInvalidInput,
		},
		{
			name:      "missing resource id",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.ResourceID = " "
				return in
			},
			errIs: commands.ErrResourceIDRequired,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "time already started",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Date = "2025-04-06"
				return in
			},
			errIs: commands.ErrPastInterval,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "unknown resource",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.ResourceID = "Z9"
				return in
			},
			errIs: commands.ErrResourceNotFound,
			kind:  errs.KindNotFound,
		},
		{
			name:      "reading seats are not reservable",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.studyRoom("12:00", "13:00")
				in.ResourceID = "seat-5"
				return in
			},
			errIs: commands.ErrNotReservable,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "attendees over capacity",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Attendees = intPtr(31)
				return in
			},
			errIs: reservation.ErrCapacityExceeded,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "capacity is checked before the class schedule",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("10:00", "11:00")
				in.Attendees = intPtr(31)
				return in
			},
			errIs: reservation.ErrCapacityExceeded,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "classroom without attendees",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Attendees = nil
				return in
			},
			errIs: reservation.ErrAttendeesRequired,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "classroom without purpose",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Purpose = ""
				return in
			},
			errIs: reservation.ErrPurposeRequired,
			kind:  errs.KindInvalidInput,
		},
		{
			name:      "classroom outside any semester",
			requester: alice,
			input: func() commands.CreateReservationInput {
				in := s.classroom("12:00", "13:00")
				in.Date = "2025-08-04"
				return in
			},
			errIs: commands.ErrOutOfTerm,
			kind:  errs.KindInvalidInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.commands.Create(context.Background(), tc.requester, tc.input())
			s.assertRejected(err, tc.errIs, tc.kind)
		})
	}

	s.Zero(s.store.ReservationCount())
	s.Empty(s.store.Audit())
	s.Empty(s.publisher.Events())
}

func (s *ReservationCommandsTestSuite) TestCreate_StudyRoomOutsideSemester() {
	in := s.studyRoom("12:00", "13:00")
	in.Date = "2025-08-04"

	_, err := s.commands.Create(context.Background(), alice, in)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCreate_PublishFailureDoesNotFail() {
	s.publisher.Err = errors.New("broker down")

	res, err := s.commands.Create(context.Background(), alice, s.studyRoom("09:00", "10:00"))
	s.Require().NoError(err)

	_, ok := s.store.Reservation(res.ID)
	s.True(ok)
}

func (s *ReservationCommandsTestSuite) TestCreate_StoreFailureIsInternal() {
	s.store.FailReads = errors.New("connection reset")

	_, err := s.commands.Create(context.Background(), alice, s.studyRoom("09:00", "10:00"))
	s.Require().Error(err)
	s.Equal(errs.KindInternal, errs.KindOf(err))
}

func (s *ReservationCommandsTestSuite) TestCreate_ConcurrentRequestsForTheSameSlot() {
	const workers = 8
	members := make([]session.Identity, workers)
	for i := range members {
		members[i] = session.Identity{UserID: uuid.NewString(), DisplayName: "member"}
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		accepted  int
		conflicts int
	)
	for _, m := range members {
		wg.Add(1)
		go func(m session.Identity) {
			defer wg.Done()
			_, err := s.commands.Create(context.Background(), m, s.studyRoom("16:00", "17:00"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errs.KindOf(err) == errs.KindConflict:
				conflicts++
			}
		}(m)
	}
	wg.Wait()

	s.Equal(1, accepted)
	s.Equal(workers-1, conflicts)
	s.Equal(1, s.store.ReservationCount())
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	ctx := context.Background()
	res, err := s.commands.Create(ctx, alice, s.studyRoom("09:00", "10:00"))
	s.Require().NoError(err)

	s.Run("non-owner is forbidden", func() {
		err := s.commands.Cancel(ctx, bob, res.ID)
		s.assertRejected(err, reservation.ErrNotOwner, errs.KindForbidden)
	})

	s.Run("anonymous", func() {
		err := s.commands.Cancel(ctx, session.Anonymous, res.ID)
		s.assertRejected(err, commands.ErrLoginRequired, errs.KindUnauthenticated)
	})

	s.Run("unknown reservation", func() {
		err := s.commands.Cancel(ctx, alice, uuid.New())
		s.assertRejected(err, commands.ErrReservationNotFound, errs.KindNotFound)
	})

	s.Run("owner cancels", func() {
		s.Require().NoError(s.commands.Cancel(ctx, alice, res.ID))

		row, _ := s.store.Reservation(res.ID)
		s.Equal(reservation.StatusCancelled, row.Status)

		audit := s.store.Audit()
		s.Require().Len(audit, 2)
		s.Equal(shared.AuditCancelled, audit[1].Action)
		s.Equal("S1", audit[1].ResourceID)
		s.Equal(alice.UserID, audit[1].UserID)
	})

	s.Run("second cancel conflicts", func() {
		err := s.commands.Cancel(ctx, alice, res.ID)
		s.assertRejected(err, reservation.ErrNotCancellable, errs.KindConflict)
	})

	s.Equal([]shared.EventType{
		shared.EventReservationCreated,
		shared.EventReservationCancelled,
	}, s.publisher.Types())
}

func (s *ReservationCommandsTestSuite) TestDecide() {
	ctx := context.Background()
	res, err := s.commands.Create(ctx, alice, s.classroom("13:00", "14:00"))
	s.Require().NoError(err)

	s.Run("member cannot decide", func() {
		_, err := s.commands.Decide(ctx, alice, res.ID, true)
		s.assertRejected(err, commands.ErrNotAdmin, errs.KindForbidden)
	})

	s.Run("admin approves", func() {
		decided, err := s.commands.Decide(ctx, admin, res.ID, true)
		s.Require().NoError(err)
		s.Equal(reservation.StatusApproved, decided.Status)

		audit := s.store.Audit()
		s.Equal(shared.AuditApproved, audit[len(audit)-1].Action)
	})

	s.Run("approved reservation cannot be decided again", func() {
		_, err := s.commands.Decide(ctx, admin, res.ID, false)
		s.assertRejected(err, reservation.ErrNotPending, errs.KindConflict)
	})

	s.Run("admin rejects", func() {
		other, err := s.commands.Create(ctx, bob, commands.CreateReservationInput{
			ResourceID: "C1",
			Date:       monday,
			StartTime:  "15:00",
			EndTime:    "16:00",
			Purpose:    "club meeting",
			Attendees:  intPtr(5),
		})
		s.Require().NoError(err)

		decided, err := s.commands.Decide(ctx, admin, other.ID, false)
		s.Require().NoError(err)
		s.Equal(reservation.StatusRejected, decided.Status)
	})
}

func (s *ReservationCommandsTestSuite) TestDecide_ApproveRechecksConflicts() {
	ctx := context.Background()

	// A pending row that only blocks when pending is a blocking status.
	pols := policy.Defaults()
	classroom := pols[resource.KindClassroom]
	classroom.Blocking = []reservation.Status{reservation.StatusApproved}
	pols[resource.KindClassroom] = classroom
	cmds := commands.NewReservationCommands(s.store, pols, []string{admin.UserID}, s.publisher, s.clock)

	first, err := cmds.Create(ctx, alice, s.classroom("13:00", "14:00"))
	s.Require().NoError(err)
	second, err := cmds.Create(ctx, bob, commands.CreateReservationInput{
		ResourceID: "C1",
		Date:       monday,
		StartTime:  "13:30",
		EndTime:    "14:30",
		Purpose:    "club meeting",
		Attendees:  intPtr(5),
	})
	s.Require().NoError(err, "pending rows do not block under this policy")

	_, err = cmds.Decide(ctx, admin, first.ID, true)
	s.Require().NoError(err)

	_, err = cmds.Decide(ctx, admin, second.ID, true)
	s.assertRejected(err, reservation.ErrReservationConflict, errs.KindConflict)

	row, _ := s.store.Reservation(second.ID)
	s.Equal(reservation.StatusPending, row.Status)
}

func TestCreate_OverlappingSemestersPickTheFirst(t *testing.T) {
	store := fake.NewStore()
	seed(t, store)
	store.AddSemester(calendar.Semester{
		Code:  "2025-X",
		Start: time.Date(2025, 4, 1, 0, 0, 0, 0, kst),
		End:   time.Date(2025, 4, 30, 0, 0, 0, 0, kst),
	})
	clk := clock.NewMockClock(time.Date(2025, 4, 6, 20, 0, 0, 0, kst))
	cmds := commands.NewReservationCommands(store, policy.Defaults(), nil, nil, clk)

	_, err := cmds.Create(context.Background(), alice, commands.CreateReservationInput{
		ResourceID: "C1",
		Date:       monday,
		StartTime:  "10:00",
		EndTime:    "10:30",
		Purpose:    "seminar",
		Attendees:  intPtr(3),
	})
	assert.ErrorIs(t, err, reservation.ErrScheduleConflict)
}
