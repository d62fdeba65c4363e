package stubapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marketcart/internal/domain"
)

type cartCreateRequest struct {
	ProductID  string             `json:"productId"`
	Kind       domain.ProductKind `json:"kind"`
	Quantity   int                `json:"quantity"`
	PriceCents int64              `json:"priceCents"`
	Title      string             `json:"title"`
	ImageURL   string             `json:"imageUrl"`
	Currency   string             `json:"currency"`
	Unit       string             `json:"unit"`
}

type cartUpdateRequest struct {
	Quantity   *int   `json:"quantity"`
	PriceCents *int64 `json:"priceCents"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageUrl"`
}

type wishlistCreateRequest struct {
	ItemID   string                 `json:"itemId"`
	ItemType domain.ItemType        `json:"itemType"`
	Fields   map[string]interface{} `json:"fields"`
}

type wishlistUpdateRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func okWithSummary(c *gin.Context, status int, data interface{}, summary domain.WishlistSummary) {
	c.JSON(status, gin.H{"success": true, "data": data, "summary": summary})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func listCartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok(c, http.StatusOK, store.listCart())
	}
}

func addCartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid payload")
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			fail(c, http.StatusBadRequest, "productId required")
			return
		}
		if req.Kind != domain.KindFarmPost && req.Kind != domain.KindStoreProduct {
			fail(c, http.StatusBadRequest, "unsupported kind")
			return
		}
		if req.Quantity <= 0 {
			fail(c, http.StatusBadRequest, "quantity must be positive")
			return
		}
		if req.PriceCents < 0 {
			fail(c, http.StatusBadRequest, "price must not be negative")
			return
		}
		ok(c, http.StatusCreated, store.addCart(req))
	}
}

func updateCartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid payload")
			return
		}
		if req.Quantity != nil && *req.Quantity <= 0 {
			fail(c, http.StatusBadRequest, "quantity must be positive")
			return
		}
		item, err := store.updateCart(c.Param("id"), req)
		if err != nil {
			fail(c, http.StatusNotFound, "cart item not found")
			return
		}
		ok(c, http.StatusOK, item)
	}
}

func removeCartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.removeCart(c.Param("id")); err != nil {
			fail(c, http.StatusNotFound, "cart item not found")
			return
		}
		ok(c, http.StatusOK, nil)
	}
}

func clearCartHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.clearCart()
		ok(c, http.StatusOK, nil)
	}
}

func listWishlistHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, summary := store.listWishlist()
		okWithSummary(c, http.StatusOK, items, summary)
	}
}

func addWishlistHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid payload")
			return
		}
		if strings.TrimSpace(req.ItemID) == "" {
			fail(c, http.StatusBadRequest, "itemId required")
			return
		}
		if req.ItemType != domain.ItemTypeFarmProduct && req.ItemType != domain.ItemTypeStoreProduct {
			fail(c, http.StatusBadRequest, "unsupported item type")
			return
		}
		item, summary, err := store.addWishlist(req)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				fail(c, http.StatusConflict, "item already in wishlist")
				return
			}
			fail(c, http.StatusInternalServerError, "internal error")
			return
		}
		okWithSummary(c, http.StatusCreated, item, summary)
	}
}

func updateWishlistHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req wishlistUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "invalid payload")
			return
		}
		item, summary, err := store.updateWishlist(c.Param("id"), req.Fields)
		if err != nil {
			fail(c, http.StatusNotFound, "wishlist item not found")
			return
		}
		okWithSummary(c, http.StatusOK, item, summary)
	}
}

func removeWishlistHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := store.removeWishlist(c.Param("id"))
		if err != nil {
			fail(c, http.StatusNotFound, "wishlist item not found")
			return
		}
		okWithSummary(c, http.StatusOK, nil, summary)
	}
}

func clearWishlistHandler(store *memoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.clearWishlist()
		okWithSummary(c, http.StatusOK, nil, domain.WishlistSummary{})
	}
}
