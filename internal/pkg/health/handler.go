package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Check probes one of the service's dependencies for readiness.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type pingResponse struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterHealthEndpoints wires liveness and readiness endpoints.
// /health and /healthz report process liveness only; /ready runs the
// dependency checks and returns 503 when any fails.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks ...Check) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "development"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, pingResponse{
			ServiceName: serviceName,
			Version:     version,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	liveness := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", liveness)
	e.GET("/healthz", liveness)

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for _, check := range checks {
			if err := check.Probe(ctx); err != nil {
				results[check.Name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[check.Name] = "ok"
		}
		return c.JSON(status, results)
	})
}
