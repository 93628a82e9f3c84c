package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type selectedCarrierRequest struct {
	CarrierName string  `json:"carrierName" validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Days        int     `json:"days"        validate:"gte=0"`
}

type createShipmentRequest struct {
	Origin          string                 `json:"origin"          validate:"required"`
	Destination     string                 `json:"destination"     validate:"required"`
	GoodsInfo       string                 `json:"goodsInfo"       validate:"required"`
	SelectedCarrier selectedCarrierRequest `json:"selectedCarrier"`
}

type rateRequest struct {
	Origin      string `json:"origin"      validate:"required"`
	Destination string `json:"destination" validate:"required"`
	GoodsInfo   string `json:"goodsInfo"   validate:"required"`
}

// --- Response types ---
// Kept apart from domain types so the JSON contract does not follow internal changes.

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

type shipmentResponse struct {
	ID               string                      `json:"id"`
	Origin           string                      `json:"origin"`
	Destination      string                      `json:"destination"`
	GoodsInfo        string                      `json:"goodsInfo,omitempty"`
	Status           string                      `json:"status"`
	Carrier          string                      `json:"carrier"`
	Price            float64                     `json:"price,omitempty"`
	CurrentLocation  locationResponse            `json:"currentLocation"`
	EstimatedArrival *time.Time                  `json:"estimatedArrival,omitempty"`
	Progress         *float64                    `json:"progress,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
	StatusHistory    []statusHistoryItemResponse `json:"statusHistory,omitempty"`
}

type rateResponse struct {
	CarrierName string  `json:"carrierName"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
}

type routeResponse struct {
	ShipmentID          string            `json:"shipmentId"`
	Origin              *locationResponse `json:"origin"`
	Destination         *locationResponse `json:"destination"`
	Current             locationResponse  `json:"current"`
	DistanceRemainingKm *float64          `json:"distanceRemainingKm,omitempty"`
	HoursLeft           *int              `json:"hoursLeft,omitempty"`
}

// trackingUpdateResponse is one SSE frame of /stream.
type trackingUpdateResponse struct {
	ShipmentID          string           `json:"shipmentId"`
	Status              string           `json:"status"`
	Location            locationResponse `json:"location"`
	Progress            float64          `json:"progress"`
	EstimatedArrival    *time.Time       `json:"estimatedArrival,omitempty"`
	DistanceRemainingKm *float64         `json:"distanceRemainingKm,omitempty"`
	HoursLeft           *int             `json:"hoursLeft,omitempty"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

type trackingEventResponse struct {
	ID          string            `json:"id"`
	ShipmentID  string            `json:"shipmentId"`
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Source      string            `json:"source"`
	Location    *locationResponse `json:"location,omitempty"`
	ProcessedAt time.Time         `json:"processedAt"`
}
