package domain

import "time"

// CartItem is a product plus a quantity. Quantity is always >= 1; an
// item reaching zero is removed from the cart, not retained.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart holds the ordered list of line items for one browser session.
// Insertion order (order of first add) is preserved, and there is at
// most one CartItem per product id.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}
