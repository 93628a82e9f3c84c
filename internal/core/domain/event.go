package domain

import "time"

// TrackingEvent represents a status update received from an external source.
type TrackingEvent struct {
	ID          string         `json:"id" bson:"_id"`
	ShipmentID  string         `json:"shipmentId" bson:"shipment_id"`
	Status      ShipmentStatus `json:"status" bson:"status"`
	Timestamp   time.Time      `json:"timestamp" bson:"timestamp"`
	Source      string         `json:"source" bson:"source"`
	Location    *Location      `json:"location,omitempty" bson:"location,omitempty"` // optional
	ProcessedAt time.Time      `json:"processedAt" bson:"processed_at"`
}

// Notification types published when a shipment changes.
const (
	NotificationCreated         = "shipment.created"
	NotificationStatusChanged   = "shipment.status_changed"
	NotificationLocationUpdated = "shipment.location_updated"
)

// ShipmentNotification is the outbound event describing a shipment change.
type ShipmentNotification struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	ShipmentID string         `json:"shipmentId"`
	Status     ShipmentStatus `json:"status"`
	Location   Location       `json:"location"`
	Progress   float64        `json:"progress"`
	OccurredAt time.Time      `json:"occurredAt"`
}

const (
	RoleAdmin   = "admin"
	RoleCarrier = "carrier"
)
