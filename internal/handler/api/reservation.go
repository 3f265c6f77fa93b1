package api

import (
	"net/http"

	reqdto "campus-booking/internal/handler/dto/request"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/usecase/commands"
	"campus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve a classroom or study room for a time range on one day
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

// @Summary Cancel reservation
// @Description Cancel an own pending or approved reservation
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Decide reservation
// @Description Approve or reject a pending reservation (administrators only)
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.DecisionRequest true "Decision"
// @Success 200 {object} resdto.ReservationStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/decision [post]
func (h *ReservationHandler) Decide(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "decision must be approve or reject", nil)
		return
	}

	result, err := h.cmds.Decide(c.Request.Context(), middleware.GetIdentity(c), id, req.Approve())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

// @Summary My reservations
// @Description Upcoming reservations of the logged-in member
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/reservations/mine [get]
func (h *ReservationHandler) Mine(c *gin.Context) {
	views, err := h.q.Mine(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

// @Summary Reservations by date
// @Description Non-cancelled reservations on a date, optionally for one resource
// @Tags reservations
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param resource_id query string false "Resource ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) ByDate(c *gin.Context) {
	var query reqdto.ReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.q.ByDate(c.Request.Context(), query.Date, query.ResourceID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondList(c, views)
}

func (h *ReservationHandler) respondList(c *gin.Context, views []queries.ReservationView) {
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseReservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
