//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"campus-booking/internal/domain/quota"
	"campus-booking/internal/domain/reservation"
	"campus-booking/internal/handler/api"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"
	"campus-booking/internal/usecase/shared"
	"campus-booking/tests/common/httptest"
	commandsmock "campus-booking/tests/mock/commands"
	queriesmock "campus-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	router, authMiddleware := newTestEngine(s.mockCtrl)
	s.router = router
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	requireSession := authMiddleware.RequireSession()
	s.router.GET("/api/reservations", h.ByDate)
	s.router.POST("/api/reservations", requireSession, h.Create)
	s.router.GET("/api/reservations/mine", requireSession, h.Mine)
	s.router.DELETE("/api/reservations/:id", requireSession, h.Cancel)
	s.router.POST("/api/reservations/:id/decision", requireSession, h.Decide)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/api/reservations"
	attendees := 4
	reqBody := map[string]any{
		"resource_id": "S1",
		"user_id":     member.UserID,
		"date":        "2025-04-07",
		"start_time":  "13:00",
		"end_time":    "14:00",
		"purpose":     "  team study  ",
		"attendees":   attendees,
	}
	expectedInput := commands.CreateReservationInput{
		ResourceID: "S1",
		UserID:     member.UserID,
		Date:       "2025-04-07",
		StartTime:  "13:00",
		EndTime:    "14:00",
		Purpose:    "team study",
		Attendees:  &attendees,
	}

	s.Run("success: returns 201 with the pending reservation", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), member, expectedInput).
			Return(&commands.ReservationResult{ID: id, Status: reservation.StatusPending}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)

		var response resdto.ReservationStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "login required")
	})

	s.Run("error: 400 on a malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object", memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps every error kind to its status", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "claimed another member", commandsError: commands.ErrOwnerMismatch, expectedStatus: http.StatusForbidden, expectedMsg: "on behalf of another member"},
			{name: "out of term", commandsError: commands.ErrOutOfTerm, expectedStatus: http.StatusBadRequest, expectedMsg: "within a semester"},
			{name: "unknown resource", commandsError: commands.ErrResourceNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "resource not found"},
			{name: "overlapping reservation", commandsError: errs.Reject(errs.KindConflict, "the time range overlaps an existing reservation"), expectedStatus: http.StatusConflict, expectedMsg: "overlaps"},
			{name: "exhausted retries", commandsError: errors.Join(shared.ErrTxContention, errs.New("40001")), expectedStatus: http.StatusConflict, expectedMsg: "the resource is busy"},
			{name: "daily cap", commandsError: quota.ErrDailyHours, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "daily usage hours"},
			{name: "database failure", commandsError: errs.Wrap(errs.New("conn reset"), "failed to insert reservation"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), member, expectedInput).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/"+id.String(), nil, memberToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on an invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/not-a-uuid", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: not the owner", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member, id).Return(commands.ErrOwnerMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations/"+id.String(), nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestDecide() {
	id := uuid.New()
	url := "/api/reservations/" + id.String() + "/decision"

	s.Run("success: approve", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), admin, id, true).
			Return(&commands.ReservationResult{ID: id, Status: reservation.StatusApproved}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, adminToken)

		var response resdto.ReservationStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Status)
	})

	s.Run("success: reject", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), admin, id, false).
			Return(&commands.ReservationResult{ID: id, Status: reservation.StatusRejected}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "reject"}, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "maybe"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "decision must be approve or reject")
	})

	s.Run("error: members cannot decide", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), member, id, true).Return(nil, commands.ErrNotAdmin).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"decision": "approve"}, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "only administrators")
	})
}

func (s *ReservationHandlerTestSuite) TestLists() {
	createdAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	views := []queries.ReservationView{
		{
			ID:           uuid.New(),
			ResourceID:   "S1",
			ResourceName: "Study Room 1",
			ResourceKind: "study_room",
			UserID:       member.UserID,
			UserName:     member.DisplayName,
			Date:         "2025-04-07",
			StartTime:    "13:00",
			EndTime:      "14:00",
			Status:       "pending",
			CreatedAt:    createdAt,
		},
	}

	s.Run("mine: lists the requester's reservations", func() {
		s.mockQueries.EXPECT().Mine(gomock.Any(), member).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/mine", nil, memberToken)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal("Study Room 1", response[0].ResourceName)
		s.Equal("13:00", response[0].StartTime)
		s.True(createdAt.Equal(response[0].CreatedAt))
	})

	s.Run("mine: requires a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/mine", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("by date: passes the filters through", func() {
		s.mockQueries.EXPECT().ByDate(gomock.Any(), "2025-04-07", "S1").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?date=2025-04-07&resource_id=S1", nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("by date: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ByDate(gomock.Any(), "2025-04-08", "").Return([]queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?date=2025-04-08", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("by date: missing date is 400", func() {
		s.mockQueries.EXPECT().ByDate(gomock.Any(), "", "").Return(nil, queries.ErrDateRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date is required")
	})
}
