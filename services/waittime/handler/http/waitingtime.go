package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	"github.com/nyctaxi/dispatch/internal/utils"
	"github.com/nyctaxi/dispatch/services/waittime"
)

// WaitTimeHandler handles HTTP requests for the waiting-time meter
type WaitTimeHandler struct {
	waitTimeUC waittime.WaitTimeUC
}

// NewWaitTimeHandler creates a new waiting-time HTTP handler
func NewWaitTimeHandler(waitTimeUC waittime.WaitTimeUC) *WaitTimeHandler {
	return &WaitTimeHandler{waitTimeUC: waitTimeUC}
}

// ToggleRequest is the request body for toggling the timer
type ToggleRequest struct {
	Starting bool `json:"starting"`
}

// Toggle handles PUT /reservations/:reservationID/wait-timer
func (h *WaitTimeHandler) Toggle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("reservationID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	timer, err := h.waitTimeUC.ToggleTimer(c.Request().Context(), id, req.Starting)
	if err != nil {
		return h.mapError(c, err)
	}

	message := "Waiting timer stopped"
	if req.Starting {
		message = "Waiting timer started"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, timer)
}

// Get handles GET /reservations/:reservationID/wait-timer
func (h *WaitTimeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("reservationID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	timer, err := h.waitTimeUC.GetTimer(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", timer)
}

func (h *WaitTimeHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, waittime.ErrReservationNotFound),
		errors.Is(err, waittime.ErrTimerNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, waittime.ErrTimerNotRunning):
		return utils.BadRequestResponse(c, err.Error())
	default:
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "")
	}
}
