package stubapi

import (
	"fmt"
	"sync"
	"time"

	"marketcart/internal/domain"
)

// memoryStore backs the fixture with plain in-memory collections. A single
// mutex guards both; the fixture is not meant for load.
type memoryStore struct {
	mu       sync.Mutex
	nextID   int
	cart     []domain.CartItem
	wishlist []domain.WishlistItem
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (m *memoryStore) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%04d", prefix, m.nextID)
}

func (m *memoryStore) listCart() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.CartItem, len(m.cart))
	copy(out, m.cart)
	return out
}

// addCart merges by (product id, kind): a repeated add bumps the existing
// record's quantity instead of creating a second row.
func (m *memoryStore) addCart(in cartCreateRequest) domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for i := range m.cart {
		if m.cart[i].ProductID == in.ProductID && m.cart[i].Kind == in.Kind {
			m.cart[i].Quantity += in.Quantity
			m.cart[i].PriceCents = in.PriceCents
			if in.Title != "" {
				m.cart[i].Title = in.Title
			}
			if in.ImageURL != "" {
				m.cart[i].ImageURL = in.ImageURL
			}
			m.cart[i].UpdatedAt = now
			return m.cart[i]
		}
	}

	item := domain.CartItem{
		ID:         m.newID("cart"),
		ProductID:  in.ProductID,
		Kind:       in.Kind,
		Quantity:   in.Quantity,
		PriceCents: in.PriceCents,
		Title:      in.Title,
		ImageURL:   in.ImageURL,
		Currency:   in.Currency,
		Unit:       in.Unit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.cart = append(m.cart, item)
	return item
}

func (m *memoryStore) updateCart(id string, in cartUpdateRequest) (*domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cart {
		if m.cart[i].ID != id {
			continue
		}
		if in.Quantity != nil {
			m.cart[i].Quantity = *in.Quantity
		}
		if in.PriceCents != nil {
			m.cart[i].PriceCents = *in.PriceCents
		}
		if in.Title != "" {
			m.cart[i].Title = in.Title
		}
		if in.ImageURL != "" {
			m.cart[i].ImageURL = in.ImageURL
		}
		m.cart[i].UpdatedAt = time.Now().UTC()
		item := m.cart[i]
		return &item, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memoryStore) removeCart(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cart {
		if m.cart[i].ID == id {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryStore) clearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = nil
}

func (m *memoryStore) listWishlist() ([]domain.WishlistItem, domain.WishlistSummary) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.WishlistItem, len(m.wishlist))
	copy(out, m.wishlist)
	return out, domain.SummarizeWishlist(out)
}

func (m *memoryStore) addWishlist(in wishlistCreateRequest) (*domain.WishlistItem, domain.WishlistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.wishlist {
		if m.wishlist[i].Same(in.ItemID, in.ItemType) {
			return nil, domain.SummarizeWishlist(m.wishlist), domain.ErrAlreadyExists
		}
	}
	item := domain.WishlistItem{
		ID:       m.newID("wish"),
		ItemID:   in.ItemID,
		ItemType: in.ItemType,
		AddedAt:  time.Now().UTC(),
		Fields:   in.Fields,
	}
	m.wishlist = append(m.wishlist, item)
	return &item, domain.SummarizeWishlist(m.wishlist), nil
}

func (m *memoryStore) updateWishlist(id string, fields map[string]interface{}) (*domain.WishlistItem, domain.WishlistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.wishlist {
		if m.wishlist[i].ID == id {
			if m.wishlist[i].Fields == nil {
				m.wishlist[i].Fields = map[string]interface{}{}
			}
			for k, v := range fields {
				m.wishlist[i].Fields[k] = v
			}
			item := m.wishlist[i]
			return &item, domain.SummarizeWishlist(m.wishlist), nil
		}
	}
	return nil, domain.SummarizeWishlist(m.wishlist), domain.ErrNotFound
}

func (m *memoryStore) removeWishlist(id string) (domain.WishlistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.wishlist {
		if m.wishlist[i].ID == id {
			m.wishlist = append(m.wishlist[:i], m.wishlist[i+1:]...)
			return domain.SummarizeWishlist(m.wishlist), nil
		}
	}
	return domain.SummarizeWishlist(m.wishlist), domain.ErrNotFound
}

func (m *memoryStore) clearWishlist() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wishlist = nil
}
