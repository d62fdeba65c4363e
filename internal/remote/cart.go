package remote

import (
	"context"
	"net/http"
	"net/url"

	"marketcart/internal/domain"
)

// AddCartInput is the create payload: the referenced product plus the
// denormalized display copy captured at add-time.
type AddCartInput struct {
	ProductID  string             `json:"productId"`
	Kind       domain.ProductKind `json:"kind"`
	Quantity   int                `json:"quantity"`
	PriceCents int64              `json:"priceCents"`
	Title      string             `json:"title,omitempty"`
	ImageURL   string             `json:"imageUrl,omitempty"`
	Currency   string             `json:"currency,omitempty"`
	Unit       string             `json:"unit,omitempty"`
}

// UpdateCartInput updates a subset of fields; nil fields are left untouched.
type UpdateCartInput struct {
	Quantity   *int   `json:"quantity,omitempty"`
	PriceCents *int64 `json:"priceCents,omitempty"`
	Title      string `json:"title,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// ListCart fetches the full cart collection.
func (c *Client) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	items, _, err := call[[]domain.CartItem](ctx, c, http.MethodGet, "/cart", nil)
	return items, err
}

// AddCartItem creates a cart item. The server merges by product and returns
// either a new or an updated record.
func (c *Client) AddCartItem(ctx context.Context, in AddCartInput) (*domain.CartItem, error) {
	item, _, err := call[*domain.CartItem](ctx, c, http.MethodPost, "/cart", in)
	return item, err
}

// UpdateCartItem updates the item by server id and returns the canonical
// version.
func (c *Client) UpdateCartItem(ctx context.Context, id string, in UpdateCartInput) (*domain.CartItem, error) {
	item, _, err := call[*domain.CartItem](ctx, c, http.MethodPut, "/cart/"+url.PathEscape(id), in)
	return item, err
}

// RemoveCartItem deletes the item by server id.
func (c *Client) RemoveCartItem(ctx context.Context, id string) error {
	_, _, err := call[struct{}](ctx, c, http.MethodDelete, "/cart/"+url.PathEscape(id), nil)
	return err
}

// ClearCart empties the remote cart.
func (c *Client) ClearCart(ctx context.Context) error {
	_, _, err := call[struct{}](ctx, c, http.MethodDelete, "/cart/clear", nil)
	return err
}
