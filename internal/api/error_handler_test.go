package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", fmt.Errorf("get shipment: %w", domain.ErrShipmentNotFound), http.StatusNotFound, "shipment not found"},
		{"invalid input", fmt.Errorf("%w: origin is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: origin is required"},
		{"invalid status", fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "shipped"), http.StatusBadRequest, `invalid shipment status: "shipped"`},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid status transition"},
		{"duplicate", domain.ErrDuplicateShipment, http.StatusConflict, "shipment already exists"},
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "forbidden"), http.StatusForbidden, "forbidden"},
		{"unexpected", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/shipments/SH-1", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.msg {
				t.Errorf("expected %q, got %q", tc.msg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/shipments/SH-1/stream", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Response().WriteHeader(http.StatusOK)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrShipmentNotFound, c)

	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Errorf("committed response must not be rewritten, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/v1/shipments/SH-404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrShipmentNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("HEAD must not carry a body, got %q", rec.Body.String())
	}
}

func TestResolveError_Known(t *testing.T) {
	if _, _, known := resolveError(domain.ErrInvalidTransition); !known {
		t.Error("invalid transition should be a known error")
	}
	if _, _, known := resolveError(errors.New("boom")); known {
		t.Error("arbitrary errors should be unknown")
	}
}
