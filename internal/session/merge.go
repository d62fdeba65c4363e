package session

import (
	"context"
	"errors"
	"fmt"

	"marketcart/internal/domain"
	"marketcart/internal/remote"
)

// MergeState is the explicit lifecycle of the guest-to-user wishlist merge.
type MergeState string

const (
	MergeStateGuest   MergeState = "guest"
	MergeStateMerging MergeState = "merging"
	MergeStateMerged  MergeState = "merged"
	MergeStatePartial MergeState = "partially-merged"
)

// ErrMergeInProgress is returned when a merge is already running.
var ErrMergeInProgress = errors.New("merge already in progress")

// MergeState reports the current merge lifecycle state.
func (s *Session) MergeState() MergeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.merge
}

// MergeGuestWishlist reconciles everything in the guest store into the
// authenticated remote wishlist. Triggered by the caller once per successful
// sign-in. A duplicate rejection counts as merged (idempotent skip); items
// that fail for any other reason stay in guest storage so a retry can pick
// them up, and the merge ends partially-merged.
func (s *Session) MergeGuestWishlist(ctx context.Context) error {
	s.mu.Lock()
	if s.merge == MergeStateMerging {
		s.mu.Unlock()
		return ErrMergeInProgress
	}
	s.merge = MergeStateMerging
	s.mu.Unlock()

	items := s.guest.Items()
	var failed int
	var firstErr error

	for _, item := range items {
		_, _, err := s.api.AddWishlistItem(ctx, remote.AddWishlistInput{
			ItemID:   item.ItemID,
			ItemType: item.ItemType,
			Fields:   item.Fields,
		})
		if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.guest.Remove(ctx, item.ID)
	}

	if failed > 0 {
		s.setMergeState(MergeStatePartial)
		return fmt.Errorf("merge guest wishlist: %d of %d items not merged: %w", failed, len(items), firstErr)
	}

	s.guest.Clear(ctx)
	s.setMergeState(MergeStateMerged)

	// Pull the authoritative post-merge snapshot; a refresh failure is
	// recorded on the wishlist store, not on the merge.
	if err := s.RefreshWishlist(ctx); err != nil {
		s.logger.Printf("refresh wishlist after merge: %v", err)
	}
	return nil
}

func (s *Session) setMergeState(state MergeState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merge = state
}
