package handler

import (
	"github.com/99minutos/shipment-tracker/internal/core/domain"
	"github.com/99minutos/shipment-tracker/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		Origin:      req.Origin,
		Destination: req.Destination,
		GoodsInfo:   req.GoodsInfo,
		SelectedCarrier: ports.SelectedCarrierInput{
			CarrierName: req.SelectedCarrier.CarrierName,
			Price:       req.SelectedCarrier.Price,
			Days:        req.SelectedCarrier.Days,
		},
	}
}

func toRateRequest(req rateRequest) ports.RateRequest {
	return ports.RateRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		GoodsInfo:   req.GoodsInfo,
	}
}

// --- Service result → HTTP response ---

func toLocationResponse(l domain.Location) locationResponse {
	return locationResponse{Lat: l.Lat, Lon: l.Lon}
}

func toLocationPtr(l *domain.Location) *locationResponse {
	if l == nil {
		return nil
	}
	r := toLocationResponse(*l)
	return &r
}

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	resp := shipmentResponse{
		ID:               s.ID,
		Origin:           s.Origin,
		Destination:      s.Destination,
		GoodsInfo:        s.GoodsInfo,
		Status:           s.Status.String(),
		Carrier:          s.Carrier,
		Price:            s.Price,
		CurrentLocation:  toLocationResponse(s.CurrentLocation),
		EstimatedArrival: s.EstimatedArrival,
		Progress:         s.Progress,
		CreatedAt:        s.CreatedAt.UTC(),
		UpdatedAt:        s.UpdatedAt.UTC(),
	}
	if len(s.StatusHistory) > 0 {
		resp.StatusHistory = make([]statusHistoryItemResponse, 0, len(s.StatusHistory))
		for _, h := range s.StatusHistory {
			resp.StatusHistory = append(resp.StatusHistory, statusHistoryItemResponse{
				Status:    h.Status.String(),
				Timestamp: h.Timestamp.UTC(),
				Notes:     h.Notes,
			})
		}
	}
	return resp
}

func toShipmentList(shipments []*domain.Shipment) []shipmentResponse {
	out := make([]shipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, toShipmentResponse(s))
	}
	return out
}

func toRateResponses(rates []domain.CarrierRate) []rateResponse {
	out := make([]rateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, rateResponse{CarrierName: r.CarrierName, Price: r.Price, Days: r.Days})
	}
	return out
}

func toRouteResponse(r *ports.RouteInfo) routeResponse {
	return routeResponse{
		ShipmentID:          r.ShipmentID,
		Origin:              toLocationPtr(r.Origin),
		Destination:         toLocationPtr(r.Destination),
		Current:             toLocationResponse(r.Current),
		DistanceRemainingKm: r.DistanceRemainingKm,
		HoursLeft:           r.HoursLeft,
	}
}

func toTrackingUpdateResponse(u ports.TrackingUpdate) trackingUpdateResponse {
	return trackingUpdateResponse{
		ShipmentID:          u.ShipmentID,
		Status:              u.Status.String(),
		Location:            toLocationResponse(u.Location),
		Progress:            u.Progress,
		EstimatedArrival:    u.EstimatedArrival,
		DistanceRemainingKm: u.DistanceRemainingKm,
		HoursLeft:           u.HoursLeft,
		UpdatedAt:           u.UpdatedAt.UTC(),
	}
}

func toEventResponses(events []*domain.TrackingEvent) []trackingEventResponse {
	out := make([]trackingEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, trackingEventResponse{
			ID:          e.ID,
			ShipmentID:  e.ShipmentID,
			Status:      e.Status.String(),
			Timestamp:   e.Timestamp.UTC(),
			Source:      e.Source,
			Location:    toLocationPtr(e.Location),
			ProcessedAt: e.ProcessedAt.UTC(),
		})
	}
	return out
}
