package handler

import (
	"strings"
	"testing"
)

func TestValidator_JSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createShipmentRequest{Origin: "Berlin"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"destination is required", "goodsInfo is required", "selectedCarrier.carrierName is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_ShipmentStatus(t *testing.T) {
	v := NewValidator()

	for _, status := range []string{"Booked", "In Transit", "Delivered"} {
		if err := v.Validate(&trackingEventRequest{ShipmentID: "SH-1", Status: status}); err != nil {
			t.Errorf("%q: unexpected error %v", status, err)
		}
	}
	for _, status := range []string{"in_transit", "delivered", "Lost"} {
		err := v.Validate(&trackingEventRequest{ShipmentID: "SH-1", Status: status})
		if err == nil || !strings.Contains(err.Error(), "status must be one of: Booked, In Transit, Delivered") {
			t.Errorf("%q: expected status error, got %v", status, err)
		}
	}
}

func TestValidator_NonNegativeRate(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createShipmentRequest{
		Origin: "A", Destination: "B", GoodsInfo: "C",
		SelectedCarrier: selectedCarrierRequest{CarrierName: "Economy Shipping", Price: -5, Days: -1},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if msg := err.Error(); !strings.Contains(msg, "selectedCarrier.price must be at least 0") ||
		!strings.Contains(msg, "selectedCarrier.days must be at least 0") {
		t.Errorf("unexpected message %q", msg)
	}
}
