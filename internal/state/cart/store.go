// Package cart holds the client-side cache of the remote cart: the last-known
// server snapshot plus derived aggregates, with an optimistic path for
// quantity changes so reads never wait on network latency.
package cart

import (
	"sync"

	"marketcart/internal/domain"
)

// Status tracks the coarse lifecycle of the most recent remote operation.
// Pending blocks nothing; overlapping operations are applied independently.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Store is the single writer of cart state. Mutations funnel through the
// Apply/Stage/Confirm entry points; aggregates are recomputed from scratch
// after every mutation, never incrementally patched.
type Store struct {
	mu         sync.RWMutex
	items      []domain.CartItem
	status     Status
	errMsg     string
	totalItems int
	totalCents int64

	// seq holds the latest issued mutation sequence per item id. A confirm
	// carrying an older sequence is stale and must be dropped.
	seq map[string]uint64
}

func NewStore() *Store {
	return &Store{
		status: StatusIdle,
		seq:    make(map[string]uint64),
	}
}

// BeginOp marks a remote operation in flight.
func (s *Store) BeginOp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusPending
}

// Fail records a remote failure. Items and aggregates keep their prior state.
func (s *Store) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.errMsg = msg
}

// ApplyList replaces the item collection wholesale with a server snapshot.
func (s *Store) ApplyList(items []domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domain.CartItem, len(items))
	copy(s.items, items)

	// Prune sequence counters for ids absent from the snapshot; counters for
	// surviving ids stay monotonic so in-flight confirms still match up.
	present := make(map[string]struct{}, len(items))
	for _, item := range items {
		present[item.ID] = struct{}{}
	}
	for id := range s.seq {
		if _, ok := present[id]; !ok {
			delete(s.seq, id)
		}
	}
	s.succeed()
}

// ApplyAdd inserts or, when an item with the same server id exists, replaces
// the confirmed item. Dedup by product is the server's job; the response is
// either a new record or the merged one.
func (s *Store) ApplyAdd(item domain.CartItem) {
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
	s.succeed()
}

// ApplyRemove filters out the item. Removing an id that is no longer present
// (a late response for an already-removed item) is a silent no-op.
func (s *Store) ApplyRemove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	delete(s.seq, id)
	s.succeed()
}

// ApplyClear empties the cart and zeroes the aggregates.
func (s *Store) ApplyClear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.seq = make(map[string]uint64)
	s.succeed()
}

// StageQuantity performs the immediate local-only quantity write and returns
// the sequence number the eventual confirm must present, plus the previous
// quantity for rollback. ok is false when the item is not in the cart.
func (s *Store) StageQuantity(itemID string, quantity int) (seq uint64, prevQty int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			prevQty = s.items[i].Quantity
			s.items[i].Quantity = quantity
			s.seq[itemID]++
			s.recompute()
			return s.seq[itemID], prevQty, true
		}
	}
	return 0, 0, false
}

// ConfirmUpdate overwrites the staged item with the server's canonical
// version. The confirm is dropped when a newer mutation for the same id has
// been issued since, or when the item has been removed meanwhile.
func (s *Store) ConfirmUpdate(itemID string, seq uint64, item domain.CartItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[itemID] != seq {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i] = item
			s.succeed()
			return true
		}
	}
	return false
}

// RollbackQuantity restores the pre-stage quantity after a failed confirm,
// unless a newer mutation for the item has been issued since.
func (s *Store) RollbackQuantity(itemID string, seq uint64, prevQty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[itemID] != seq {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = prevQty
			s.recompute()
			return true
		}
	}
	return false
}

// succeed recomputes aggregates and records the success. Callers hold s.mu.
func (s *Store) succeed() {
	s.recompute()
	s.status = StatusSucceeded
	s.errMsg = ""
}

// recompute derives totals as a pure function of the current items.
// Callers hold s.mu.
func (s *Store) recompute() {
	var count int
	var cents int64
	for _, item := range s.items {
		count += item.Quantity
		cents += item.TotalCents()
	}
	s.totalItems = count
	s.totalCents = cents
}
