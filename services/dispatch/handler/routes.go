package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	"github.com/nyctaxi/dispatch/services/dispatch"
	dispatchHTTP "github.com/nyctaxi/dispatch/services/dispatch/handler/http"
)

// RegisterRoutes wires the reservation dispatch endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, dispatchUC dispatch.DispatchUC) {
	h := dispatchHTTP.NewReservationHandler(dispatchUC)

	reservations := e.Group("/reservations")
	reservations.POST("", h.CreateReservation)
	reservations.GET("", h.ListReservations)
	reservations.GET("/:reservationID", h.GetReservation)
	reservations.POST("/:reservationID/assign", h.AssignDriver)
	reservations.POST("/:reservationID/accept", h.Accept)
	reservations.POST("/:reservationID/reject", h.Reject)
	reservations.POST("/:reservationID/end", h.EndTrip)
	reservations.POST("/:reservationID/feedback", h.RecordFeedback)

	internal := e.Group("/internal", middleware.ValidateAPIKey("admin-service"))
	internal.DELETE("/drivers/:driverID", h.RemoveDriverAccount)
}
