package api

import (
	"net/http"

	reqdto "range-booking/internal/handler/dto/request"
	resdto "range-booking/internal/handler/dto/response"
	"range-booking/internal/handler/httperr"
	"range-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q queries.BookingQueries
}

func NewResourceHandler(q queries.BookingQueries) *ResourceHandler {
	return &ResourceHandler{q: q}
}

// @Summary List bookings on a resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /resources/{id}/bookings [get]
func (h *ResourceHandler) ListBookings(c *gin.Context) {
	var query reqdto.ResourceBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListByResource(c.Request.Context(), c.Param("id"), query.ToFilter())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
