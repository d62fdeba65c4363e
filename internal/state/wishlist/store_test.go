package wishlist

import (
	"testing"

	"marketcart/internal/domain"
)

func entry(id, itemID string, itemType domain.ItemType) domain.WishlistItem {
	return domain.WishlistItem{ID: id, ItemID: itemID, ItemType: itemType}
}

func TestApplyListTrustsServerSummary(t *testing.T) {
	s := NewStore()
	summary := domain.WishlistSummary{Total: 2, FarmProducts: 1, StoreProducts: 1}
	s.ApplyList([]domain.WishlistItem{
		entry("w1", "a", domain.ItemTypeFarmProduct),
		entry("w2", "b", domain.ItemTypeStoreProduct),
	}, summary)

	if got := s.Summary(); got != summary {
		t.Fatalf("summary = %+v, want %+v", got, summary)
	}
	if !s.Contains("a", domain.ItemTypeFarmProduct) {
		t.Fatalf("expected (a, FarmProduct) present")
	}
	if s.Contains("a", domain.ItemTypeStoreProduct) {
		t.Fatalf("membership must distinguish item types")
	}
}

func TestApplyAddReplacesByServerID(t *testing.T) {
	s := NewStore()
	s.ApplyAdd(entry("w1", "a", domain.ItemTypeFarmProduct), domain.WishlistSummary{Total: 1, FarmProducts: 1})
	s.ApplyAdd(entry("w1", "a", domain.ItemTypeFarmProduct), domain.WishlistSummary{Total: 1, FarmProducts: 1})

	if got := len(s.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1", got)
	}
}

func TestApplyRemoveAndClear(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.WishlistItem{
		entry("w1", "a", domain.ItemTypeFarmProduct),
		entry("w2", "b", domain.ItemTypeStoreProduct),
	}, domain.WishlistSummary{Total: 2, FarmProducts: 1, StoreProducts: 1})

	s.ApplyRemove("w1", domain.WishlistSummary{Total: 1, StoreProducts: 1})
	if s.Contains("a", domain.ItemTypeFarmProduct) {
		t.Fatalf("expected w1 gone")
	}
	if got := s.Summary(); got.Total != 1 {
		t.Fatalf("summary.Total = %d, want 1", got.Total)
	}

	s.ApplyClear()
	if got := len(s.Items()); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}
	if got := s.Summary(); got != (domain.WishlistSummary{}) {
		t.Fatalf("summary = %+v, want zero", got)
	}
}

func TestApplyRemoveLocalRecomputesSummary(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.WishlistItem{
		entry("w1", "a", domain.ItemTypeFarmProduct),
		entry("w2", "b", domain.ItemTypeStoreProduct),
	}, domain.WishlistSummary{Total: 2, FarmProducts: 1, StoreProducts: 1})

	s.ApplyRemoveLocal("w1")
	if s.Contains("a", domain.ItemTypeFarmProduct) {
		t.Fatalf("expected w1 gone")
	}
	want := domain.WishlistSummary{Total: 1, StoreProducts: 1}
	if got := s.Summary(); got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
	if s.Status() != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", s.Status())
	}
}

func TestFailKeepsPriorState(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.WishlistItem{entry("w1", "a", domain.ItemTypeFarmProduct)},
		domain.WishlistSummary{Total: 1, FarmProducts: 1})

	s.BeginOp()
	s.Fail("network down")

	if s.Status() != StatusFailed || s.Err() != "network down" {
		t.Fatalf("status/err = %s/%q", s.Status(), s.Err())
	}
	if got := len(s.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1", got)
	}

	s.Succeed()
	if s.Status() != StatusSucceeded || s.Err() != "" {
		t.Fatalf("status/err after succeed = %s/%q", s.Status(), s.Err())
	}
}
