package api

import (
	"context"
	"net/http"

	reqdto "range-booking/internal/handler/dto/request"
	resdto "range-booking/internal/handler/dto/response"
	"range-booking/internal/handler/httperr"
	"range-booking/internal/handler/middleware"
	"range-booking/internal/usecase/commands"
	"range-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Submit a booking request. Conflicts are reported, not blocking. A whitelisted officer's request is approved at once only when conflict-free; a contested one stays pending for review.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, _ := middleware.GetActor(c)
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(actor))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Approve booking
// @Description Approve a pending booking. Fails with 409 and the conflict list when it overlaps an active booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.DecisionRequest false "Decision"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	h.decide(c, h.cmds.Approve)
}

// @Summary Deny booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.DecisionRequest true "Decision with reason"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/deny [post]
func (h *BookingHandler) Deny(c *gin.Context) {
	h.decide(c, h.cmds.Deny)
}

// @Summary Cancel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.DecisionRequest true "Cancellation reason"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.decide(c, h.cmds.Cancel)
}

// @Summary Override-approve booking
// @Description Approve despite conflicts; the conflict set is recorded on the approval.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.OverrideRequest true "Override"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/override-approve [post]
func (h *BookingHandler) OverrideApprove(c *gin.Context) {
	h.override(c, h.cmds.OverrideApprove)
}

// @Summary Override and bump
// @Description Approve and move every approved conflicting booking to bumped, atomically.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.OverrideRequest true "Override"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/override-bump [post]
func (h *BookingHandler) OverrideBump(c *gin.Context) {
	h.override(c, h.cmds.OverrideBump)
}

// @Summary Reschedule booking
// @Description Move a pending or approved booking to a new slot on the same resources.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleRequest true "New slot"
// @Success 200 {object} resdto.BookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(c)
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Reschedule(c.Request.Context(), id, req.ToInput(actor))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Suggest alternative slots
// @Description Same local start time and duration on each of the next N days, with availability.
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param days query int false "Number of days"
// @Success 200 {array} resdto.SuggestionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/suggestions [get]
func (h *BookingHandler) Suggestions(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var query reqdto.SuggestionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	suggestions, err := h.q.Suggest(c.Request.Context(), id, query.Days)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestions(suggestions))
}

// @Summary Check conflicts
// @Description Run the conflict detector for a slot without writing anything.
// @Tags conflicts
// @Accept json
// @Produce json
// @Param request body reqdto.ConflictCheckRequest true "Slot"
// @Success 200 {object} resdto.ConflictReportResponse
// @Failure 400 {object} httperr.Response
// @Router /conflicts [post]
func (h *BookingHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	report, err := h.q.CheckConflicts(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflictReport(report))
}

type decisionFunc func(ctx context.Context, id uuid.UUID, in commands.DecisionInput) (*commands.BookingResult, error)

type overrideFunc func(ctx context.Context, id uuid.UUID, in commands.OverrideInput) (*commands.BookingResult, error)

func (h *BookingHandler) decide(c *gin.Context, fn decisionFunc) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(c)
	var req reqdto.DecisionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := fn(c.Request.Context(), id, req.ToInput(actor))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

func (h *BookingHandler) override(c *gin.Context, fn overrideFunc) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	actor, _ := middleware.GetActor(c)
	var req reqdto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := fn(c.Request.Context(), id, req.ToInput(actor))
	if err != nil {
		abortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}
