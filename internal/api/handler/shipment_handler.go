package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

const defaultStreamInterval = 5 * time.Second

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	shipments ports.ShipmentService
	tracking  ports.TrackingService
	events    ports.EventService
	interval  time.Duration
	log       zerolog.Logger
}

// NewShipmentHandler wires the shipment endpoints. interval is the tick period
// of /stream; zero or negative falls back to five seconds.
func NewShipmentHandler(
	shipments ports.ShipmentService,
	tracking ports.TrackingService,
	events ports.EventService,
	interval time.Duration,
	log zerolog.Logger,
) *ShipmentHandler {
	if interval <= 0 {
		interval = defaultStreamInterval
	}
	return &ShipmentHandler{
		shipments: shipments,
		tracking:  tracking,
		events:    events,
		interval:  interval,
		log:       log,
	}
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Param        status  query     string  false  "Exact status (Booked, In Transit, Delivered)"
// @Param        q       query     string  false  "Case-insensitive match on id, origin or destination"
// @Success      200     {array}   shipmentResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	shipments, err := h.shipments.ListShipments(c.Request().Context(), ports.ListShipmentsInput{
		Status: c.QueryParam("status"),
		Query:  c.QueryParam("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentList(shipments))
}

// Get handles GET /v1/shipments/:id.
//
// @Summary      Get a shipment by ID
// @Tags         shipments
// @Produce      json
// @Param        id   path      string  true  "Shipment ID (e.g. SH-1023)"
// @Success      200  {object}  shipmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	shipment, err := h.shipments.GetShipment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      createShipmentRequest  true  "Route, goods and the selected carrier rate"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	shipment, err := h.shipments.CreateShipment(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/v1/shipments/"+shipment.ID)
	return c.JSON(http.StatusCreated, toShipmentResponse(shipment))
}

// Track handles GET /v1/shipments/:id/track. Each call is one simulator tick.
//
// @Summary      Poll the current location of a shipment
// @Tags         tracking
// @Produce      json
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {object}  locationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id}/track [get]
func (h *ShipmentHandler) Track(c echo.Context) error {
	loc, err := h.tracking.Track(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLocationResponse(*loc))
}

// Route handles GET /v1/shipments/:id/route.
//
// @Summary      Route coordinates and remaining distance
// @Tags         tracking
// @Produce      json
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {object}  routeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id}/route [get]
func (h *ShipmentHandler) Route(c echo.Context) error {
	info, err := h.tracking.Route(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteResponse(info))
}

// Stream handles GET /v1/shipments/:id/stream as server-sent events. A
// "location" event is written per tick and "end" once the shipment stops
// moving.
//
// @Summary      Stream live tracking updates
// @Tags         tracking
// @Produce      text/event-stream
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {object}  trackingUpdateResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id}/stream [get]
func (h *ShipmentHandler) Stream(c echo.Context) error {
	id := c.Param("id")
	sub, err := h.tracking.Watch(c.Request().Context(), id, h.interval)
	if err != nil {
		return err
	}
	defer sub.Cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for u := range sub.Updates() {
		data, err := json.Marshal(toTrackingUpdateResponse(u))
		if err != nil {
			h.log.Error().Err(err).Str("shipment_id", id).Msg("encode tracking update")
			return nil
		}
		if _, err := fmt.Fprintf(res, "event: location\ndata: %s\n\n", data); err != nil {
			h.log.Debug().Err(err).Str("shipment_id", id).Msg("stream client gone")
			return nil
		}
		res.Flush()
	}

	if c.Request().Context().Err() == nil {
		_, _ = fmt.Fprint(res, "event: end\ndata: {}\n\n")
		res.Flush()
	}
	return nil
}

// Events handles GET /v1/shipments/:id/events.
//
// @Summary      Audit log of status events for a shipment
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Shipment ID"
// @Success      200  {array}   trackingEventResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id}/events [get]
func (h *ShipmentHandler) Events(c echo.Context) error {
	events, err := h.events.ListEvents(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventResponses(events))
}
