// Package session wires the remote client, the cart and wishlist caches, and
// the guest store into one explicitly constructed container. A session is
// built at sign-in or app start and discarded at logout; nothing here lives
// at package scope.
package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"marketcart/internal/domain"
	"marketcart/internal/guest"
	"marketcart/internal/remote"
	cartstate "marketcart/internal/state/cart"
	wishstate "marketcart/internal/state/wishlist"
)

// API is the remote collection surface the session consumes. Implemented by
// *remote.Client.
type API interface {
	ListCart(ctx context.Context) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, in remote.AddCartInput) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, id string, in remote.UpdateCartInput) (*domain.CartItem, error)
	RemoveCartItem(ctx context.Context, id string) error
	ClearCart(ctx context.Context) error

	ListWishlist(ctx context.Context) ([]domain.WishlistItem, domain.WishlistSummary, error)
	AddWishlistItem(ctx context.Context, in remote.AddWishlistInput) (*domain.WishlistItem, domain.WishlistSummary, error)
	UpdateWishlistItem(ctx context.Context, id string, fields map[string]interface{}) (*domain.WishlistItem, domain.WishlistSummary, error)
	RemoveWishlistItem(ctx context.Context, id string) (domain.WishlistSummary, error)
	ClearWishlist(ctx context.Context) error
}

// Session owns the per-user state for one app session.
type Session struct {
	api    API
	logger *log.Logger

	cart     *cartstate.Store
	wishlist *wishstate.Store
	guest    *guest.Store

	mu    sync.Mutex
	merge MergeState
}

// New builds a Session around the given remote surface and guest store.
func New(api API, guestStore *guest.Store, logger *log.Logger) *Session {
	return &Session{
		api:      api,
		logger:   logger,
		cart:     cartstate.NewStore(),
		wishlist: wishstate.NewStore(),
		guest:    guestStore,
		merge:    MergeStateGuest,
	}
}

// Cart exposes the cart cache and its read helpers.
func (s *Session) Cart() *cartstate.Store { return s.cart }

// Wishlist exposes the remote-backed wishlist cache.
func (s *Session) Wishlist() *wishstate.Store { return s.wishlist }

// Guest exposes the guest wishlist store.
func (s *Session) Guest() *guest.Store { return s.guest }

// RefreshCart replaces the cached cart with the remote snapshot.
func (s *Session) RefreshCart(ctx context.Context) error {
	s.cart.BeginOp()
	items, err := s.api.ListCart(ctx)
	if err != nil {
		s.cart.Fail(failMessage(err))
		return err
	}
	s.cart.ApplyList(items)
	return nil
}

// AddCartItem adds a product to the cart. Merging a repeated product into an
// existing record is the server's job; the response is applied by server id.
func (s *Session) AddCartItem(ctx context.Context, in remote.AddCartInput) (*domain.CartItem, error) {
	s.cart.BeginOp()
	item, err := s.api.AddCartItem(ctx, in)
	if err != nil {
		s.cart.Fail(failMessage(err))
		return nil, err
	}
	s.cart.ApplyAdd(*item)
	return item, nil
}

// UpdateCartQuantity changes an item's quantity in two phases: an immediate
// local write so reads never wait on the network, then a confirm that
// overwrites the item with the server's canonical version. A quantity of 0
// removes the item rather than retaining it at 0.
func (s *Session) UpdateCartQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveCartItem(ctx, itemID)
	}

	seq, prevQty, ok := s.cart.StageQuantity(itemID, quantity)
	if !ok {
		return domain.ErrNotFound
	}
	s.cart.BeginOp()

	item, err := s.api.UpdateCartItem(ctx, itemID, remote.UpdateCartInput{Quantity: &quantity})
	if err != nil {
		s.cart.RollbackQuantity(itemID, seq, prevQty)
		s.cart.Fail(failMessage(err))
		return err
	}
	s.cart.ConfirmUpdate(itemID, seq, *item)
	return nil
}

// RemoveCartItem deletes the item remotely and drops it from the cache. The
// remote already having forgotten the item counts as success.
func (s *Session) RemoveCartItem(ctx context.Context, itemID string) error {
	s.cart.BeginOp()
	err := s.api.RemoveCartItem(ctx, itemID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.cart.Fail(failMessage(err))
		return err
	}
	s.cart.ApplyRemove(itemID)
	return nil
}

// ClearCart empties the cart remotely and locally.
func (s *Session) ClearCart(ctx context.Context) error {
	s.cart.BeginOp()
	if err := s.api.ClearCart(ctx); err != nil {
		s.cart.Fail(failMessage(err))
		return err
	}
	s.cart.ApplyClear()
	return nil
}

// RefreshWishlist replaces the cached wishlist with the remote snapshot and
// its authoritative summary.
func (s *Session) RefreshWishlist(ctx context.Context) error {
	s.wishlist.BeginOp()
	items, summary, err := s.api.ListWishlist(ctx)
	if err != nil {
		s.wishlist.Fail(failMessage(err))
		return err
	}
	s.wishlist.ApplyList(items, summary)
	return nil
}

// AddWishlistItem saves an item to the authenticated wishlist. A duplicate
// rejection from the server leaves the cache untouched and is not an error.
func (s *Session) AddWishlistItem(ctx context.Context, in remote.AddWishlistInput) error {
	s.wishlist.BeginOp()
	item, summary, err := s.api.AddWishlistItem(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.wishlist.Succeed()
			return nil
		}
		s.wishlist.Fail(failMessage(err))
		return err
	}
	s.wishlist.ApplyAdd(*item, summary)
	return nil
}

// UpdateWishlistItem partially updates an entry's pass-through fields.
func (s *Session) UpdateWishlistItem(ctx context.Context, id string, fields map[string]interface{}) error {
	s.wishlist.BeginOp()
	item, summary, err := s.api.UpdateWishlistItem(ctx, id, fields)
	if err != nil {
		s.wishlist.Fail(failMessage(err))
		return err
	}
	s.wishlist.ApplyUpdate(*item, summary)
	return nil
}

// RemoveWishlistItem deletes an entry by server id. The remote already having
// forgotten the item counts as success, but its error response carries no
// summary, so the item is dropped with counts recomputed locally.
func (s *Session) RemoveWishlistItem(ctx context.Context, id string) error {
	s.wishlist.BeginOp()
	summary, err := s.api.RemoveWishlistItem(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.wishlist.ApplyRemoveLocal(id)
			return nil
		}
		s.wishlist.Fail(failMessage(err))
		return err
	}
	s.wishlist.ApplyRemove(id, summary)
	return nil
}

// ClearWishlist empties the authenticated wishlist.
func (s *Session) ClearWishlist(ctx context.Context) error {
	s.wishlist.BeginOp()
	if err := s.api.ClearWishlist(ctx); err != nil {
		s.wishlist.Fail(failMessage(err))
		return err
	}
	s.wishlist.ApplyClear()
	return nil
}

// failMessage extracts the human-readable message for display.
func failMessage(err error) string {
	var rerr *remote.Error
	if errors.As(err, &rerr) {
		return rerr.Message
	}
	return err.Error()
}
