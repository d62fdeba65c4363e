package cart

import (
	"testing"

	"marketcart/internal/domain"
)

func item(id, productID string, qty int, priceCents int64) domain.CartItem {
	return domain.CartItem{
		ID:         id,
		ProductID:  productID,
		Kind:       domain.KindFarmPost,
		Quantity:   qty,
		PriceCents: priceCents,
	}
}

func assertTotals(t *testing.T, s *Store, wantItems int, wantCents int64) {
	t.Helper()
	gotItems, gotCents := s.Totals()
	if gotItems != wantItems || gotCents != wantCents {
		t.Fatalf("totals = (%d, %d), want (%d, %d)", gotItems, gotCents, wantItems, wantCents)
	}
}

func TestApplyListRecomputesAggregates(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{
		item("c1", "p1", 2, 100),
		item("c2", "p2", 3, 250),
	})
	assertTotals(t, s, 5, 950)
	if s.Status() != StatusSucceeded {
		t.Fatalf("status = %s, want succeeded", s.Status())
	}
}

func TestApplyListPrunesSequenceCounters(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})

	seq, _, ok := s.StageQuantity("c1", 5)
	if !ok {
		t.Fatalf("stage failed")
	}

	// The item leaves in one snapshot and comes back in the next. The counter
	// issued before must not survive the round trip.
	s.ApplyList(nil)
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})

	if s.ConfirmUpdate("c1", seq, item("c1", "p1", 5, 100)) {
		t.Fatalf("confirm from before the snapshot replace must be dropped")
	}
	if got := s.Quantity("p1"); got != 2 {
		t.Fatalf("quantity = %d, want snapshot value 2", got)
	}
}

func TestApplyAddAppendsAndReplacesByServerID(t *testing.T) {
	s := NewStore()
	s.ApplyAdd(item("c1", "p1", 1, 100))
	assertTotals(t, s, 1, 100)

	// Same server id: the record is replaced in place, not duplicated.
	s.ApplyAdd(item("c1", "p1", 4, 100))
	if got := len(s.Items()); got != 1 {
		t.Fatalf("len(items) = %d, want 1", got)
	}
	assertTotals(t, s, 4, 400)
}

func TestApplyRemoveShrinksAggregates(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{
		item("c1", "p1", 2, 100),
		item("c2", "p2", 3, 250),
	})
	s.ApplyRemove("c2")
	assertTotals(t, s, 2, 200)
	if s.Contains("p2") {
		t.Fatalf("expected p2 gone")
	}
}

func TestApplyRemoveUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})
	s.ApplyRemove("missing")
	assertTotals(t, s, 2, 200)
}

func TestApplyClearEmptiesFully(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})
	s.ApplyClear()
	if got := len(s.Items()); got != 0 {
		t.Fatalf("len(items) = %d, want 0", got)
	}
	assertTotals(t, s, 0, 0)
}

func TestStageQuantityIsVisibleImmediately(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})

	seq, prevQty, ok := s.StageQuantity("c1", 5)
	if !ok {
		t.Fatalf("expected stage to succeed")
	}
	if prevQty != 2 {
		t.Fatalf("prevQty = %d, want 2", prevQty)
	}
	if seq == 0 {
		t.Fatalf("expected non-zero sequence")
	}
	// Before any confirm: reads already see the new quantity.
	if got := s.Quantity("p1"); got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}
	assertTotals(t, s, 5, 5000)
}

func TestStageQuantityUnknownItem(t *testing.T) {
	s := NewStore()
	if _, _, ok := s.StageQuantity("missing", 3); ok {
		t.Fatalf("expected stage to report missing item")
	}
}

func TestConfirmUpdateAppliesServerVersion(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})
	seq, _, _ := s.StageQuantity("c1", 5)

	server := item("c1", "p1", 5, 1000)
	if !s.ConfirmUpdate("c1", seq, server) {
		t.Fatalf("expected confirm to apply")
	}
	if got := s.Quantity("p1"); got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}
	assertTotals(t, s, 5, 5000)
}

func TestStaleConfirmIsDropped(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})

	oldSeq, _, _ := s.StageQuantity("c1", 5)
	newSeq, _, _ := s.StageQuantity("c1", 7)

	// A confirm for the older mutation arrives after the newer write.
	if s.ConfirmUpdate("c1", oldSeq, item("c1", "p1", 5, 1000)) {
		t.Fatalf("expected stale confirm to be dropped")
	}
	if got := s.Quantity("p1"); got != 7 {
		t.Fatalf("quantity = %d, want 7 (optimistic value kept)", got)
	}

	if !s.ConfirmUpdate("c1", newSeq, item("c1", "p1", 7, 1000)) {
		t.Fatalf("expected latest confirm to apply")
	}
}

func TestConfirmForRemovedItemIsDropped(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})
	seq, _, _ := s.StageQuantity("c1", 5)
	s.ApplyRemove("c1")

	if s.ConfirmUpdate("c1", seq, item("c1", "p1", 5, 1000)) {
		t.Fatalf("expected confirm for removed item to be dropped")
	}
	assertTotals(t, s, 0, 0)
}

func TestRollbackQuantityRestoresPriorState(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})
	seq, prevQty, _ := s.StageQuantity("c1", 5)

	if !s.RollbackQuantity("c1", seq, prevQty) {
		t.Fatalf("expected rollback to apply")
	}
	if got := s.Quantity("p1"); got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}
	assertTotals(t, s, 2, 2000)
}

func TestRollbackSkippedWhenNewerMutationIssued(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 1000)})
	oldSeq, oldPrev, _ := s.StageQuantity("c1", 5)
	s.StageQuantity("c1", 9)

	if s.RollbackQuantity("c1", oldSeq, oldPrev) {
		t.Fatalf("expected rollback of superseded mutation to be dropped")
	}
	if got := s.Quantity("p1"); got != 9 {
		t.Fatalf("quantity = %d, want 9", got)
	}
}

func TestFailLeavesItemsIntact(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})
	s.BeginOp()
	s.Fail("boom")

	if s.Status() != StatusFailed || s.Err() != "boom" {
		t.Fatalf("status/err = %s/%q", s.Status(), s.Err())
	}
	assertTotals(t, s, 2, 200)

	// Next success clears the recorded error.
	s.ApplyRemove("c1")
	if s.Err() != "" {
		t.Fatalf("err = %q, want empty", s.Err())
	}
}

// Add 1×1000, update to 3 locally, then remove: the scenario every release
// gets smoke-tested against.
func TestAddUpdateRemoveScenario(t *testing.T) {
	s := NewStore()
	s.ApplyAdd(item("c1", "p1", 1, 1000))
	assertTotals(t, s, 1, 1000)

	s.StageQuantity("c1", 3)
	assertTotals(t, s, 3, 3000)

	s.ApplyRemove("c1")
	assertTotals(t, s, 0, 0)
}

func TestAccessorLookups(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{
		item("c1", "p1", 2, 100),
		item("c2", "p2", 1, 50),
	})

	if !s.Contains("p1") || s.Contains("p3") {
		t.Fatalf("unexpected membership results")
	}
	if got := s.Quantity("p2"); got != 1 {
		t.Fatalf("quantity = %d, want 1", got)
	}
	if got := s.Quantity("p3"); got != 0 {
		t.Fatalf("quantity for absent product = %d, want 0", got)
	}
	id, ok := s.ItemID("p1")
	if !ok || id != "c1" {
		t.Fatalf("ItemID = (%q, %v), want (c1, true)", id, ok)
	}
	if _, ok := s.ItemID("p3"); ok {
		t.Fatalf("expected no id for absent product")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.ApplyList([]domain.CartItem{item("c1", "p1", 2, 100)})

	items := s.Items()
	items[0].Quantity = 99
	if got := s.Quantity("p1"); got != 2 {
		t.Fatalf("store mutated through snapshot: quantity = %d", got)
	}
}
