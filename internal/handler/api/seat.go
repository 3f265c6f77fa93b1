package api

import (
	"net/http"
	"strconv"

	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	cmds commands.SeatCommands
	q    queries.SeatQueries
}

func NewSeatHandler(cmds commands.SeatCommands, q queries.SeatQueries) *SeatHandler {
	return &SeatHandler{cmds: cmds, q: q}
}

// @Summary Seat board
// @Description Occupied reading-room seats, plus the caller's own seat
// @Tags seats
// @Produce json
// @Success 200 {object} resdto.SeatBoardResponse
// @Router /api/seats [get]
func (h *SeatHandler) Board(c *gin.Context) {
	board, err := h.q.Board(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatBoard(board))
}

// @Summary Seat check-in
// @Tags seats
// @Produce json
// @Param number path int true "Seat number"
// @Success 201 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/seats/{number}/check-in [post]
func (h *SeatHandler) CheckIn(c *gin.Context) {
	number, ok := parseSeatNumber(c)
	if !ok {
		return
	}
	result, err := h.cmds.CheckIn(c.Request.Context(), middleware.GetIdentity(c), number)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSeatResult(result))
}

// @Summary Seat check-out
// @Tags seats
// @Param number path int true "Seat number"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/seats/{number}/check-out [post]
func (h *SeatHandler) CheckOut(c *gin.Context) {
	number, ok := parseSeatNumber(c)
	if !ok {
		return
	}
	if err := h.cmds.CheckOut(c.Request.Context(), middleware.GetIdentity(c), number); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseSeatNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "seat number must be a positive integer", nil)
		return 0, false
	}
	return number, true
}
