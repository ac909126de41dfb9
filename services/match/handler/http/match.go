package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	"github.com/nyctaxi/dispatch/internal/utils"
	"github.com/nyctaxi/dispatch/services/match"
)

// MatchHandler handles HTTP requests for driver matching
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// FindCandidates handles GET /reservations/:reservationID/candidates
func (h *MatchHandler) FindCandidates(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("reservationID"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	result, err := h.matchUC.FindCandidates(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrReservationNotFound):
			return utils.NotFoundResponse(c, err.Error())
		case errors.Is(err, match.ErrReservationNotOfferable):
			return utils.BadRequestResponse(c, err.Error())
		default:
			middleware.NoticeError(c, err)
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	message := "Drivers found"
	if !result.Found() {
		message = "No drivers available in the area"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// DriverRating handles GET /drivers/:driverID/rating
func (h *MatchHandler) DriverRating(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	rating, err := h.matchUC.AverageRating(c.Request().Context(), driverID)
	if err != nil {
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]float64{"rating": rating})
}
