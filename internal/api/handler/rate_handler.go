package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// RateHandler serves carrier quotes.
type RateHandler struct {
	quoter ports.RateQuoter
}

func NewRateHandler(quoter ports.RateQuoter) *RateHandler {
	return &RateHandler{quoter: quoter}
}

// Quote handles POST /v1/rates.
//
// @Summary      Quote carrier rates for a route
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        body  body      rateRequest  true  "Route and goods description"
// @Success      200   {array}   rateResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/rates [post]
func (h *RateHandler) Quote(c echo.Context) error {
	var req rateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	rates, err := h.quoter.QuoteRates(c.Request().Context(), toRateRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRateResponses(rates))
}
