package entity

import "time"

// CartItem exists only inside an order-creation payload.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID                string     `json:"user_id,omitempty"`
	Address               string     `json:"address"`
	Coordinates           []float64  `json:"coordinates,omitempty"` // [lon, lat]
	Items                 []CartItem `json:"items"`
	PaymentMethod         string     `json:"payment_method"`
	DeliveryWindowMinutes int        `json:"delivery_window_minutes"`
}

type Tracking struct {
	Status string  `json:"status"`
	Rider  *string `json:"rider"`
}

// OrderReceipt acknowledges a created order. EtaMinutes and Tracking are only
// populated by the demo store; the remote store assigns the order id and
// nothing else.
type OrderReceipt struct {
	Status     string    `json:"status"`
	OrderID    string    `json:"order_id"`
	EtaMinutes int       `json:"eta_minutes,omitempty"`
	Tracking   *Tracking `json:"tracking,omitempty"`
	Demo       bool      `json:"demo,omitempty"`
}

type Order struct {
	OrderID       string     `json:"order_id"`
	UserID        string     `json:"user_id,omitempty"`
	Address       string     `json:"address,omitempty"`
	Coordinates   []float64  `json:"coordinates,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Status        string     `json:"status"`
	EtaMinutes    int        `json:"eta_minutes,omitempty"`
	Items         []CartItem `json:"items,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// Ack is the acknowledgment shape shared by inventory adjustments and rider
// location upserts.
type Ack struct {
	Status string `json:"status"`
	Demo   bool   `json:"demo,omitempty"`
	Result any    `json:"result,omitempty"`
}
