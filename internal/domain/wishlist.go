package domain

import "time"

// ItemType tags which catalog a wishlist entry references.
type ItemType string

const (
	ItemTypeFarmProduct  ItemType = "FarmProduct"
	ItemTypeStoreProduct ItemType = "StoreProduct"
)

// WishlistItem references a product by id and carries a denormalized copy of
// display fields taken from the source item at add-time. IDs are
// server-assigned for authenticated sessions; guest sessions synthesize a
// "guest-" prefixed id until a merge runs.
type WishlistItem struct {
	ID       string                 `json:"id"`
	ItemID   string                 `json:"itemId"`
	ItemType ItemType               `json:"itemType"`
	AddedAt  time.Time              `json:"addedAt"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
}

// Same reports whether the item references the given (item id, item type)
// pair, the uniqueness key for wishlist entries.
func (i WishlistItem) Same(itemID string, itemType ItemType) bool {
	return i.ItemID == itemID && i.ItemType == itemType
}

type WishlistSummary struct {
	Total         int `json:"total"`
	FarmProducts  int `json:"farmProducts"`
	StoreProducts int `json:"storeProducts"`
}

// SummarizeWishlist recomputes the summary from the full item collection.
func SummarizeWishlist(items []WishlistItem) WishlistSummary {
	var s WishlistSummary
	for _, item := range items {
		s.Total++
		switch item.ItemType {
		case ItemTypeFarmProduct:
			s.FarmProducts++
		case ItemTypeStoreProduct:
			s.StoreProducts++
		}
	}
	return s
}
