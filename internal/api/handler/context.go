package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-tracker/internal/api/middleware"
)

const defaultEventSource = "api"

// ctxUsername returns the username stored by middleware.Auth, or "" on routes
// mounted without it.
func ctxUsername(c echo.Context) string {
	username, _ := c.Get(middleware.ContextUsername).(string)
	return username
}

// eventSource picks the reported source, then the caller identity, then "api".
func eventSource(c echo.Context, reported string) string {
	if reported != "" {
		return reported
	}
	if username := ctxUsername(c); username != "" {
		return username
	}
	return defaultEventSource
}
