package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/config"
	"github.com/nyctaxi/dispatch/internal/utils"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps caller service names to their API keys
var ServiceAPIKeys = map[string]string{
	"admin-service":    config.GetEnv("ADMIN_SERVICE_API_KEY", ""),
	"booking-service":  config.GetEnv("BOOKING_SERVICE_API_KEY", ""),
	"dispatch-service": config.GetEnv("DISPATCH_SERVICE_API_KEY", ""),
}

// ValidateAPIKey validates the API key for service-to-service calls
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				if ServiceAPIKeys[service] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
