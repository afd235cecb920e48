package entity

// RiderLocation is a rider's last-known position. One row per rider; an
// upsert keyed on rider_id overwrites the previous location.
type RiderLocation struct {
	RiderID string   `json:"rider_id"`
	OrderID string   `json:"order_id,omitempty"`
	Lon     float64  `json:"lon"`
	Lat     float64  `json:"lat"`
	Speed   *float64 `json:"speed,omitempty"`
	Heading *float64 `json:"heading,omitempty"`
}
