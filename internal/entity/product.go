package entity

// Product is a read projection of a remote catalog row. It is never created
// or mutated locally; stock changes go through the remote adjust_stock
// procedure.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	SKU      string  `json:"sku,omitempty"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url,omitempty"`
	Stock    int     `json:"stock"`
	SellerID string  `json:"seller_id,omitempty"`
}
