package api

import (
	"net/http"

	reqdto "campus-booking/internal/handler/dto/request"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
	resources    queries.ResourceQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, resources queries.ResourceQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability, resources: resources}
}

// @Summary Availability
// @Description Free and taken slots per resource for one day
// @Tags availability
// @Produce json
// @Param kind query string false "classroom or study_room"
// @Param resource_id query string false "Resource ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string false "Window start (HH:MM)"
// @Param end query string false "Window end (HH:MM)"
// @Success 200 {array} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.availability.Availability(c.Request.Context(), query.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}

// @Summary Class schedule
// @Description Timetable of a classroom on a date, empty outside every semester
// @Tags availability
// @Produce json
// @Param resource_id query string true "Classroom ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/schedules [get]
func (h *AvailabilityHandler) Schedule(c *gin.Context) {
	var query reqdto.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.availability.Schedule(c.Request.Context(), query.ResourceID, query.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(query.ResourceID, view))
}

// @Summary Resources
// @Description Reservable resources, optionally of one kind
// @Tags availability
// @Produce json
// @Param kind query string false "classroom, study_room or reading_seat"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources [get]
func (h *AvailabilityHandler) Resources(c *gin.Context) {
	var query reqdto.ResourcesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.resources.List(c.Request.Context(), query.Kind)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromResourceViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
