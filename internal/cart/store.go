package cart

import (
	"time"

	"github.com/runocole/geomart/internal/domain"
)

// Store is the single source of truth for one session's cart. Each
// request rebuilds its store from the persisted cookie, so a store is
// never shared across goroutines; mutation happens only through the
// operations below, never by assigning to the slice directly.
type Store struct {
	items []domain.CartItem
}

func NewStore(items []domain.CartItem) *Store {
	return &Store{items: items}
}

// AddItem appends the product with quantity 1, or increments the
// existing line's quantity if the product is already in the cart.
// Out-of-stock products are not rejected here; callers are expected to
// check InStock first.
func (s *Store) AddItem(p domain.Product) {
	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, domain.CartItem{
		Product:  p,
		Quantity: 1,
		AddedAt:  time.Now(),
	})
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below
// removes the line. No upper bound is enforced at this layer.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the matching line; no-op if absent.
func (s *Store) RemoveItem(productID string) {
	for i, item := range s.items {
		if item.Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) Clear() {
	s.items = nil
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price × quantity across all lines, in the
// base currency.
func (s *Store) Subtotal() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
