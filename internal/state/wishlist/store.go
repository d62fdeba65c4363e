// Package wishlist holds the client-side cache of the remote wishlist for
// authenticated sessions. Unlike the cart, the summary is trusted wholesale
// from the server response: post-login the server is the sole source of
// truth.
package wishlist

import (
	"sync"

	"marketcart/internal/domain"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Store is the single writer of wishlist state.
type Store struct {
	mu      sync.RWMutex
	items   []domain.WishlistItem
	summary domain.WishlistSummary
	status  Status
	errMsg  string
}

func NewStore() *Store {
	return &Store{status: StatusIdle}
}

// BeginOp marks a remote operation in flight.
func (s *Store) BeginOp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusPending
}

// Fail records a remote failure, leaving items and summary untouched.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.errMsg = msg
}

// ApplyList replaces items and summary with the server snapshot.
func (s *Store) ApplyList(items []domain.WishlistItem, summary domain.WishlistSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domain.WishlistItem, len(items))
	copy(s.items, items)
	s.summary = summary
	s.succeed()
}

// ApplyAdd appends the confirmed item, replacing in place when the server id
// is already present.
func (s *Store) ApplyAdd(item domain.WishlistItem, summary domain.WishlistSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, item)
	}
	s.summary = summary
	s.succeed()
}

// ApplyUpdate replaces the item with the server's version. An update confirm
// for an id no longer present is dropped silently.
func (s *Store) ApplyUpdate(item domain.WishlistItem, summary domain.WishlistSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			break
		}
	}
	s.summary = summary
	s.succeed()
}

// ApplyRemove filters out the item. Unknown ids are tolerated.
func (s *Store) ApplyRemove(id string, summary domain.WishlistSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.summary = summary
	s.succeed()
}

// ApplyRemoveLocal drops the item without a server summary to trust,
// recomputing counts from the remaining items. Used when the remote has
// already forgotten the id and returned no usable summary.
func (s *Store) ApplyRemoveLocal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.summary = domain.SummarizeWishlist(s.items)
	s.succeed()
}

// ApplyClear empties items and summary.
func (s *Store) ApplyClear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.summary = domain.WishlistSummary{}
	s.succeed()
}

// Succeed records a success that changed nothing, such as an idempotent
// duplicate add.
func (s *Store) Succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.succeed()
}

// Items returns a copy of the current collection.
func (s *Store) Items() []domain.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

// Summary returns the server-provided counts.
func (s *Store) Summary() domain.WishlistSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// Contains reports whether the (item id, item type) pair is saved.
func (s *Store) Contains(itemID string, itemType domain.ItemType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].Same(itemID, itemType) {
			return true
		}
	}
	return false
}

// Status returns the lifecycle state of the most recent operation.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the message recorded by the last failed operation.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) succeed() {
	s.status = StatusSucceeded
	s.errMsg = ""
}
