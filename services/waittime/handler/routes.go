package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/services/waittime"
	waittimeHTTP "github.com/nyctaxi/dispatch/services/waittime/handler/http"
)

// RegisterRoutes wires the waiting-time meter endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, waitTimeUC waittime.WaitTimeUC) {
	h := waittimeHTTP.NewWaitTimeHandler(waitTimeUC)

	e.PUT("/reservations/:reservationID/wait-timer", h.Toggle)
	e.GET("/reservations/:reservationID/wait-timer", h.Get)
}
