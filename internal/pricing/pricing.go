package pricing

import "github.com/runocole/geomart/internal/domain"

// TaxRate is the flat rate applied to every order.
const TaxRate = 0.08

// Totals is a pure derivation from a cart snapshot, in the base
// currency at full floating precision. Rounding happens only at
// display time.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func Calculate(items []domain.CartItem) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
