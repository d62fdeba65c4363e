package cart

import "marketcart/internal/domain"

// Read helpers consumed by presentation code. Each is O(n) over the cart,
// which is expected to stay user-scale.

// Items returns a copy of the current collection.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals returns the derived aggregates: total item count and total amount
// in cents.
func (s *Store) Totals() (totalItems int, totalCents int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalItems, s.totalCents
}

// Status returns the lifecycle state of the most recent operation.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the message recorded by the last failed operation, empty after
// a success.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Contains reports whether the product is in the cart.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Quantity returns the quantity for the product, 0 when absent.
func (s *Store) Quantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return s.items[i].Quantity
		}
	}
	return 0
}

// ItemID returns the server id of the cart item referencing the product.
func (s *Store) ItemID(productID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return s.items[i].ID, true
		}
	}
	return "", false
}
