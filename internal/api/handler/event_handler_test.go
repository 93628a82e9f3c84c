package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/99minutos/shipment-tracker/internal/core/domain"
)

var receivedAt = time.Date(2025, 1, 12, 8, 30, 0, 0, time.UTC)

func newEventHandler(d *stubDispatcher) *EventHandler {
	h := NewEventHandler(d)
	h.now = func() time.Time { return receivedAt }
	return h
}

func TestEventHandler_Receive_Success(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	body := `{"shipmentId":"SH-1025","status":"In Transit","timestamp":"2025-01-10T12:00:00+02:00",` +
		`"source":"driver_app","location":{"lat":40.8,"lon":-73.9}}`
	c, rec := newContext(http.MethodPost, "/v1/events", body)
	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(d.events) != 1 {
		t.Fatalf("expected one enqueued event, got %d", len(d.events))
	}
	got := d.events[0]
	if got.ShipmentID != "SH-1025" || got.Status != "In Transit" || got.Source != "driver_app" {
		t.Errorf("unexpected event %+v", got)
	}
	if !got.Timestamp.Equal(time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)) || got.Timestamp.Location() != time.UTC {
		t.Errorf("expected timestamp normalised to UTC, got %v", got.Timestamp)
	}
	if got.Location == nil || *got.Location != (domain.Location{Lat: 40.8, Lon: -73.9}) {
		t.Errorf("unexpected location %+v", got.Location)
	}
}

func TestEventHandler_Receive_Defaults(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	c, _ := newContext(http.MethodPost, "/v1/events", `{"shipmentId":"SH-1023","status":"Delivered"}`)
	c.Set("username", "driver-7")
	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	got := d.events[0]
	if !got.Timestamp.Equal(receivedAt) {
		t.Errorf("expected receipt time, got %v", got.Timestamp)
	}
	if got.Source != "driver-7" {
		t.Errorf("expected caller as source, got %q", got.Source)
	}
	if got.Location != nil {
		t.Errorf("expected no location, got %+v", got.Location)
	}
}

func TestEventHandler_Receive_AnonymousSource(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	c, _ := newContext(http.MethodPost, "/v1/events", `{"shipmentId":"SH-1023","status":"Delivered"}`)
	if err := h.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if d.events[0].Source != "api" {
		t.Errorf("expected fallback source, got %q", d.events[0].Source)
	}
}

func TestEventHandler_Receive_UnknownStatus(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	c, _ := newContext(http.MethodPost, "/v1/events", `{"shipmentId":"SH-1023","status":"Lost"}`)
	err := h.Receive(c)
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if msg := err.Error(); !strings.Contains(msg, "status must be one of") {
		t.Errorf("unexpected message %q", msg)
	}
	if len(d.events) != 0 {
		t.Error("invalid event must not be enqueued")
	}
}

func TestEventHandler_Receive_InvalidPayload(t *testing.T) {
	h := newEventHandler(&stubDispatcher{})

	c, _ := newContext(http.MethodPost, "/v1/events", "not-json")
	if code := httpCode(t, h.Receive(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestEventHandler_ReceiveBatch(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	body := `[{"shipmentId":"SH-1025","status":"In Transit","source":"scanner"},` +
		`{"shipmentId":"SH-1023","status":"Delivered","source":"scanner"}]`
	c, rec := newContext(http.MethodPost, "/v1/events/batch", body)
	if err := h.ReceiveBatch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	var resp acceptedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
	if d.batches != 1 || len(d.events) != 2 || d.events[1].ShipmentID != "SH-1023" {
		t.Errorf("unexpected dispatch: batches=%d events=%+v", d.batches, d.events)
	}
}

func TestEventHandler_ReceiveBatch_Empty(t *testing.T) {
	h := newEventHandler(&stubDispatcher{})

	c, _ := newContext(http.MethodPost, "/v1/events/batch", `[]`)
	if code := httpCode(t, h.ReceiveBatch(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestEventHandler_ReceiveBatch_RejectsWholeBatch(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	body := `[{"shipmentId":"SH-1025","status":"In Transit"},{"status":"Delivered"}]`
	c, _ := newContext(http.MethodPost, "/v1/events/batch", body)
	err := h.ReceiveBatch(c)
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(err.Error(), "event[1]") || !strings.Contains(err.Error(), "shipmentId is required") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if len(d.events) != 0 {
		t.Error("no event may be enqueued when one is invalid")
	}
}

func TestEventHandler_Receive_LocationOutOfRange(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	body := `{"shipmentId":"SH-1025","status":"In Transit","location":{"lat":91,"lon":10}}`
	c, _ := newContext(http.MethodPost, "/v1/events", body)
	err := h.Receive(c)
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(err.Error(), "location.lat must be at most 90") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if len(d.events) != 0 {
		t.Error("invalid event must not be enqueued")
	}
}

func TestEventHandler_ReceiveBatch_TooLarge(t *testing.T) {
	d := &stubDispatcher{}
	h := newEventHandler(d)

	items := make([]string, MaxBatchSize+1)
	for i := range items {
		items[i] = `{"shipmentId":"SH-1025","status":"In Transit"}`
	}
	c, _ := newContext(http.MethodPost, "/v1/events/batch", "["+strings.Join(items, ",")+"]")
	if code := httpCode(t, h.ReceiveBatch(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if d.batches != 0 {
		t.Error("oversized batch must not be dispatched")
	}
}
