package api

import (
	"net/http"

	reqdto "range-booking/internal/handler/dto/request"
	resdto "range-booking/internal/handler/dto/response"
	"range-booking/internal/handler/httperr"
	"range-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary Booking audit trail
// @Description Every state change of one booking, newest first.
// @Tags audit
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/audit [get]
func (h *AuditHandler) Trail(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	entries, err := h.q.Trail(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditEntries(entries))
}

// @Summary Search audit log
// @Tags audit
// @Produce json
// @Param actor query string false "Actor"
// @Param action query string false "Action"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param limit query int false "Maximum entries"
// @Success 200 {array} resdto.AuditEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /audit [get]
func (h *AuditHandler) Search(c *gin.Context) {
	var query reqdto.AuditSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	entries, err := h.q.Search(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditEntries(entries))
}
