package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/services/drivers"
	driversHTTP "github.com/nyctaxi/dispatch/services/drivers/handler/http"
)

// RegisterRoutes wires the driver availability endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, driversUC drivers.DriversUC) {
	h := driversHTTP.NewAvailabilityHandler(driversUC)

	group := e.Group("/drivers/:driverID")
	group.PUT("/availability", h.Toggle)
	group.GET("/availability", h.Get)
	group.GET("/status-counts", h.StatusCounts)
}
