package api

import (
	"net/http"

	"range-booking/internal/domain/booking"
	resdto "range-booking/internal/handler/dto/response"
	"range-booking/internal/handler/httperr"
	"range-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type stateDetail struct {
	CurrentStatus string `json:"current_status"`
	Action        string `json:"action"`
}

type conflictDetail struct {
	Conflicts []resdto.ConflictResponse `json:"conflicts"`
}

// abortWithEngineError maps an engine error kind onto its HTTP status.
func abortWithEngineError(c *gin.Context, err error) {
	var stateErr *booking.InvalidStateTransitionError
	var conflictErr *booking.ConflictError

	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.As(err, &stateErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid state transition", stateDetail{
			CurrentStatus: stateErr.Current.String(),
			Action:        stateErr.Action.String(),
		})
	case errs.As(err, &conflictErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflicts with active bookings", conflictDetail{
			Conflicts: resdto.FromConflicts(conflictErr.Conflicts),
		})
	case errs.Is(err, errs.ErrInvalidStateTransition), errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking changed concurrently, retry", nil)
	case errs.Is(err, errs.ErrNoConflictsToBump):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No conflicting bookings to bump", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
