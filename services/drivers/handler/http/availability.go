package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	"github.com/nyctaxi/dispatch/internal/utils"
	"github.com/nyctaxi/dispatch/services/drivers"
)

// AvailabilityHandler handles HTTP requests for driver availability
type AvailabilityHandler struct {
	driversUC drivers.DriversUC
}

// NewAvailabilityHandler creates a new availability HTTP handler
func NewAvailabilityHandler(driversUC drivers.DriversUC) *AvailabilityHandler {
	return &AvailabilityHandler{driversUC: driversUC}
}

// ToggleRequest is the request body for toggling availability
type ToggleRequest struct {
	Online bool `json:"online"`
}

// Toggle handles PUT /drivers/:driverID/availability
func (h *AvailabilityHandler) Toggle(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	availability, err := h.driversUC.ToggleAvailability(c.Request().Context(), driverID, req.Online)
	if err != nil {
		return h.mapError(c, err)
	}

	middleware.SetDriverID(c, driverID)
	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", availability)
}

// Get handles GET /drivers/:driverID/availability
func (h *AvailabilityHandler) Get(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	availability, err := h.driversUC.GetAvailability(c.Request().Context(), driverID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", availability)
}

// StatusCounts handles GET /drivers/:driverID/status-counts
func (h *AvailabilityHandler) StatusCounts(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	counts, err := h.driversUC.DailyStatusCounts(c.Request().Context(), driverID)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", counts)
}

func (h *AvailabilityHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, drivers.ErrDriverNotFound),
		errors.Is(err, drivers.ErrLocationNotFound):
		return utils.NotFoundResponse(c, err.Error())
	default:
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "")
	}
}
