package domain

// CarrierRate is a priced offer from a carrier. Rates are generated per request
// and never persisted.
type CarrierRate struct {
	CarrierName string  `json:"carrierName"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
}

// City is a geocoder search result. Coordinates stay textual, as returned upstream.
type City struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Country     string `json:"country"`
}
