package handler

import "time"

// locationRequest is a WGS84 position reported with a status event.
type locationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// trackingEventRequest is one status change posted by a carrier or operator.
// Timestamp and Source are optional and filled in on receipt.
type trackingEventRequest struct {
	ShipmentID string           `json:"shipmentId" validate:"required"`
	Status     string           `json:"status"     validate:"required,shipment_status"`
	Timestamp  *time.Time       `json:"timestamp"`
	Source     string           `json:"source"`
	Location   *locationRequest `json:"location"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
