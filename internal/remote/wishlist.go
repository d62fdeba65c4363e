package remote

import (
	"context"
	"net/http"
	"net/url"

	"marketcart/internal/domain"
)

// AddWishlistInput is the create payload: the referenced item plus arbitrary
// pass-through fields copied from the source item.
type AddWishlistInput struct {
	ItemID   string                 `json:"itemId"`
	ItemType domain.ItemType        `json:"itemType"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
}

// ListWishlist fetches the full wishlist with its authoritative summary.
func (c *Client) ListWishlist(ctx context.Context) ([]domain.WishlistItem, domain.WishlistSummary, error) {
	return call[[]domain.WishlistItem](ctx, c, http.MethodGet, "/wishlist", nil)
}

// AddWishlistItem creates a wishlist entry. A duplicate (item id, item type)
// pair is rejected by the server and surfaces as domain.ErrAlreadyExists.
func (c *Client) AddWishlistItem(ctx context.Context, in AddWishlistInput) (*domain.WishlistItem, domain.WishlistSummary, error) {
	return call[*domain.WishlistItem](ctx, c, http.MethodPost, "/wishlist", in)
}

// UpdateWishlistItem performs a partial update of the pass-through fields.
func (c *Client) UpdateWishlistItem(ctx context.Context, id string, fields map[string]interface{}) (*domain.WishlistItem, domain.WishlistSummary, error) {
	body := map[string]interface{}{"fields": fields}
	return call[*domain.WishlistItem](ctx, c, http.MethodPut, "/wishlist/"+url.PathEscape(id), body)
}

// RemoveWishlistItem deletes the entry by server id and returns the updated
// summary.
func (c *Client) RemoveWishlistItem(ctx context.Context, id string) (domain.WishlistSummary, error) {
	_, summary, err := call[struct{}](ctx, c, http.MethodDelete, "/wishlist/"+url.PathEscape(id), nil)
	return summary, err
}

// ClearWishlist empties the remote wishlist.
func (c *Client) ClearWishlist(ctx context.Context) error {
	_, _, err := call[struct{}](ctx, c, http.MethodDelete, "/wishlist", nil)
	return err
}
