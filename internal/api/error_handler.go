package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

// errorResponse is the JSON body of every 4xx and 5xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// domainError binds a sentinel to a status. When message is empty the
// wrapped error text is shown to the client.
type domainError struct {
	target  error
	code    int
	message string
}

var domainErrors = []domainError{
	{target: domain.ErrShipmentNotFound, code: http.StatusNotFound, message: "shipment not found"},
	{target: domain.ErrInvalidInput, code: http.StatusBadRequest},
	{target: domain.ErrInvalidStatus, code: http.StatusBadRequest},
	{target: domain.ErrInvalidTransition, code: http.StatusUnprocessableEntity},
	{target: domain.ErrDuplicateShipment, code: http.StatusConflict, message: "shipment already exists"},
}

// NewHTTPErrorHandler renders handler errors as {"error": "..."}. Domain
// sentinels get fixed statuses; anything unrecognised is logged and hidden
// behind a 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Streams have already sent their headers.
		if c.Response().Committed {
			return
		}

		code, msg, known := resolveError(err)
		if !known {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// resolveError reports the status and client message for err, and whether
// err was one the API expects to return.
func resolveError(err error) (int, string, bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			return he.Code, s, true
		}
		return he.Code, fmt.Sprint(he.Message), true
	}

	for _, de := range domainErrors {
		if !errors.Is(err, de.target) {
			continue
		}
		if de.message == "" {
			return de.code, err.Error(), true
		}
		return de.code, de.message, true
	}
	return http.StatusInternalServerError, "internal server error", false
}
