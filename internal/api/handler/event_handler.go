package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// MaxBatchSize caps the number of events accepted by one batch request.
const MaxBatchSize = 500

// EventDispatcher queues status events for asynchronous processing.
type EventDispatcher interface {
	Enqueue(event ports.TrackingEventInput)
	EnqueueBatch(events []ports.TrackingEventInput)
}

// EventHandler accepts status events and hands them to the dispatcher. The
// outcome of each event is visible later through the shipment's history.
type EventHandler struct {
	dispatcher EventDispatcher
	now        func() time.Time
}

func NewEventHandler(dispatcher EventDispatcher) *EventHandler {
	return &EventHandler{dispatcher: dispatcher, now: time.Now}
}

// Receive queues a single status event.
//
// @Summary      Ingest a single status event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      trackingEventRequest  true  "Status event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events [post]
func (h *EventHandler) Receive(c echo.Context) error {
	var req trackingEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event payload")
	}
	in, err := h.accept(c, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(in)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch queues a list of status events. One invalid entry rejects the
// whole request.
//
// @Summary      Ingest a batch of status events
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []trackingEventRequest  true  "Array of status events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/events/batch [post]
func (h *EventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []trackingEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event payload")
	}
	switch {
	case len(reqs) == 0:
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	case len(reqs) > MaxBatchSize:
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("batch holds %d events, limit is %d", len(reqs), MaxBatchSize))
	}

	inputs := make([]ports.TrackingEventInput, len(reqs))
	for i := range reqs {
		in, err := h.accept(c, reqs[i])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("event[%d]: %v", i, err))
		}
		inputs[i] = in
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "events accepted", Count: len(inputs)})
}

// accept validates req and converts it to the service input. A missing
// timestamp is pinned at receipt, not at processing.
func (h *EventHandler) accept(c echo.Context, req trackingEventRequest) (ports.TrackingEventInput, error) {
	if err := c.Validate(&req); err != nil {
		return ports.TrackingEventInput{}, err
	}

	ts := h.now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}
	in := ports.TrackingEventInput{
		ShipmentID: req.ShipmentID,
		Status:     req.Status,
		Timestamp:  ts.UTC(),
		Source:     eventSource(c, req.Source),
	}
	if loc := req.Location; loc != nil {
		in.Location = &domain.Location{Lat: loc.Lat, Lon: loc.Lon}
	}
	return in, nil
}
