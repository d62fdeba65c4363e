// Package guest keeps the wishlist for unauthenticated sessions, mirrored
// into local durable storage under a single fixed key. Memory is the source
// of truth for the session; storage writes are best-effort.
package guest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"marketcart/internal/domain"
)

// StorageKey is the single key holding the JSON-serialized guest wishlist.
const StorageKey = "wishlist.guest"

// Storage is the durable key/value store backing the guest wishlist.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store holds the guest wishlist in memory and persists it wholesale after
// every mutation.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *log.Logger

	items   []domain.WishlistItem
	summary domain.WishlistSummary
}

// New seeds a Store from storage. A read failure starts an empty session;
// the error is logged, not returned.
func New(ctx context.Context, storage Storage, logger *log.Logger) *Store {
	s := &Store{storage: storage, logger: logger}
	raw, ok, err := storage.Get(ctx, StorageKey)
	if err != nil {
		logger.Printf("read guest wishlist: %v", err)
		return s
	}
	if !ok {
		return s
	}
	var items []domain.WishlistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Printf("decode guest wishlist: %v", err)
		return s
	}
	s.items = items
	s.summary = domain.SummarizeWishlist(items)
	return s
}

// AddInput carries the fields captured when a guest saves an item.
type AddInput struct {
	ItemID   string
	ItemType domain.ItemType
	Fields   map[string]interface{}
}

// Add appends a new entry unless the (item id, item type) pair is already
// present, in which case the existing entry is returned unchanged.
func (s *Store) Add(ctx context.Context, in AddInput) (*domain.WishlistItem, error) {
	if strings.TrimSpace(in.ItemID) == "" {
		return nil, errors.New("itemId required")
	}
	if in.ItemType != domain.ItemTypeFarmProduct && in.ItemType != domain.ItemTypeStoreProduct {
		return nil, errors.New("unsupported item type")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Same(in.ItemID, in.ItemType) {
			item := s.items[i]
			return &item, nil
		}
	}

	item := domain.WishlistItem{
		ID:       newGuestID(),
		ItemID:   in.ItemID,
		ItemType: in.ItemType,
		AddedAt:  time.Now().UTC(),
		Fields:   in.Fields,
	}
	s.items = append(s.items, item)
	s.summary = domain.SummarizeWishlist(s.items)
	s.persist(ctx)
	return &item, nil
}

// Remove filters out the entry with the given local id. Removing an unknown
// id is a no-op.
func (s *Store) Remove(ctx context.Context, localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != localID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.summary = domain.SummarizeWishlist(s.items)
	s.persist(ctx)
}

// Clear empties the wishlist and persists the empty collection.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.summary = domain.WishlistSummary{}
	s.persist(ctx)
}

// Items returns a copy of the current collection.
func (s *Store) Items() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// Summary returns the counts recomputed at the last mutation.
func (s *Store) Summary() domain.WishlistSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Contains reports whether the (item id, item type) pair is saved.
func (s *Store) Contains(itemID string, itemType domain.ItemType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Same(itemID, itemType) {
			return true
		}
	}
	return false
}

// persist writes the full collection back to storage. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	payload := s.items
	if payload == nil {
		payload = []domain.WishlistItem{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Printf("encode guest wishlist: %v", err)
		return
	}
	if err := s.storage.Set(ctx, StorageKey, string(raw)); err != nil {
		s.logger.Printf("persist guest wishlist: %v", err)
	}
}
