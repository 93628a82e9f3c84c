package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// CityHandler exposes the geocoder bridge.
type CityHandler struct {
	geocoding ports.GeocodingService
}

func NewCityHandler(geocoding ports.GeocodingService) *CityHandler {
	return &CityHandler{geocoding: geocoding}
}

type cityResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Country     string `json:"country"`
}

// Search handles GET /v1/cities. Upstream failures yield an empty list.
//
// @Summary      Search cities by name
// @Tags         cities
// @Produce      json
// @Param        q    query     string  true  "Free text, at least two characters"
// @Success      200  {array}   cityResponse
// @Router       /v1/cities [get]
func (h *CityHandler) Search(c echo.Context) error {
	cities := h.geocoding.SearchCities(c.Request().Context(), c.QueryParam("q"))
	out := make([]cityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, cityResponse{
			Name:        city.Name,
			DisplayName: city.DisplayName,
			Lat:         city.Lat,
			Lon:         city.Lon,
			Country:     city.Country,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Coordinates handles GET /v1/cities/coordinates.
//
// @Summary      Resolve a place name to coordinates
// @Tags         cities
// @Produce      json
// @Param        name  query     string  true  "Place name"
// @Success      200   {object}  locationResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cities/coordinates [get]
func (h *CityHandler) Coordinates(c echo.Context) error {
	loc := h.geocoding.Coordinates(c.Request().Context(), c.QueryParam("name"))
	if loc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "location not found")
	}
	return c.JSON(http.StatusOK, toLocationResponse(*loc))
}
