package domain

import "time"

// ProductKind tags which catalog a cart item was added from.
type ProductKind string

const (
	KindFarmPost     ProductKind = "FarmPost"
	KindStoreProduct ProductKind = "StoreProduct"
)

type CartItem struct {
	ID         string      `json:"id"`
	ProductID  string      `json:"productId"`
	Kind       ProductKind `json:"kind"`
	Quantity   int         `json:"quantity"`
	PriceCents int64       `json:"priceCents"`
	Title      string      `json:"title,omitempty"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	Currency   string      `json:"currency,omitempty"`
	Unit       string      `json:"unit,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// TotalCents is the line total for this item.
func (i CartItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}
