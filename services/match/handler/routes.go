package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/services/match"
	matchHTTP "github.com/nyctaxi/dispatch/services/match/handler/http"
)

// RegisterRoutes wires the driver matching endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, matchUC match.MatchUC) {
	h := matchHTTP.NewMatchHandler(matchUC)

	e.GET("/reservations/:reservationID/candidates", h.FindCandidates)
	e.GET("/drivers/:driverID/rating", h.DriverRating)
}
