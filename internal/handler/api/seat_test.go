//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campus-booking/internal/domain/occupancy"
	"campus-booking/internal/domain/quota"
	"campus-booking/internal/handler/api"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"
	"campus-booking/tests/common/httptest"
	commandsmock "campus-booking/tests/mock/commands"
	queriesmock "campus-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeatHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeatCommands
	mockQueries  *queriesmock.MockSeatQueries
}

func (s *SeatHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	router, authMiddleware := newTestEngine(s.mockCtrl)
	s.router = router
	s.mockCommands = commandsmock.NewMockSeatCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSeatQueries(s.mockCtrl)
	h := api.NewSeatHandler(s.mockCommands, s.mockQueries)

	requireSession := authMiddleware.RequireSession()
	s.router.GET("/api/seats", h.Board)
	s.router.POST("/api/seats/:number/check-in", requireSession, h.CheckIn)
	s.router.POST("/api/seats/:number/check-out", requireSession, h.CheckOut)
}

func (s *SeatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeatHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeatHandlerTestSuite))
}

func (s *SeatHandlerTestSuite) TestBoard() {
	startAt := time.Date(2025, 4, 7, 1, 0, 0, 0, time.UTC)

	s.Run("anonymous board has no own seat", func() {
		s.mockQueries.EXPECT().Board(gomock.Any(), gomock.Any()).
			Return(&queries.SeatBoardView{Occupied: []queries.SeatView{{SeatNumber: 5, StartAt: startAt}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seats", nil, "")

		var response resdto.SeatBoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Occupied, 1)
		s.Equal(5, response.Occupied[0].SeatNumber)
		s.Nil(response.Mine)
	})

	s.Run("member sees the own seat", func() {
		mine := queries.SeatView{SeatNumber: 7, StartAt: startAt}
		s.mockQueries.EXPECT().Board(gomock.Any(), member).
			Return(&queries.SeatBoardView{Occupied: []queries.SeatView{mine}, Mine: &mine}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/seats", nil, memberToken)

		var response resdto.SeatBoardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Mine)
		s.Equal(7, response.Mine.SeatNumber)
	})
}

func (s *SeatHandlerTestSuite) TestCheckIn() {
	s.Run("success: returns 201 with the usage", func() {
		usageID := uuid.New()
		startAt := time.Date(2025, 4, 7, 1, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), member, 12).
			Return(&commands.SeatResult{UsageID: usageID, SeatNumber: 12, StartAt: startAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-in", nil, memberToken)

		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(usageID, response.UsageID)
		s.Equal(12, response.SeatNumber)
	})

	s.Run("error: seat number must be numeric and positive", func() {
		for _, number := range []string{"abc", "0", "-3"} {
			s.Run(number, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/"+number+"/check-in", nil, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "seat number must be a positive integer")
			})
		}
	})

	s.Run("error: maps rejections to statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "seat taken", commandsError: occupancy.ErrSeatOccupied, expectedStatus: http.StatusConflict},
			{name: "already seated", commandsError: occupancy.ErrAlreadySeated, expectedStatus: http.StatusConflict},
			{name: "unknown seat", commandsError: commands.ErrSeatNotFound, expectedStatus: http.StatusNotFound},
			{name: "daily count", commandsError: quota.ErrDailyCount, expectedStatus: http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckIn(gomock.Any(), member, 12).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-in", nil, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.commandsError.Error())
			})
		}
	})

	s.Run("error: anonymous visitors cannot check in", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-in", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "login required")
	})
}

func (s *SeatHandlerTestSuite) TestCheckOut() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), member, 12).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-out", nil, memberToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: free seat is a conflict", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), member, 12).Return(occupancy.ErrSeatNotOccupied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-out", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "seat is not occupied")
	})

	s.Run("error: another member's seat is forbidden", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), member, 12).Return(occupancy.ErrNotSeatHolder).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/seats/12/check-out", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "held by another member")
	})
}
