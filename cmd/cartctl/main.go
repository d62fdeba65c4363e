// cartctl exercises a session against a running backend: adds a cart item,
// bumps its quantity, saves a guest wishlist entry, merges it, and prints
// the resulting totals. Useful against cmd/stubserver for a quick smoke run.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"marketcart/internal/config"
	"marketcart/internal/domain"
	"marketcart/internal/guest"
	"marketcart/internal/localdb"
	"marketcart/internal/remote"
	"marketcart/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	logger := log.New(os.Stdout, "[cartctl] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	db, err := localdb.Open(cfg.GuestStorePath)
	if err != nil {
		logger.Fatalf("open guest store: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	client := remote.New(cfg.APIBaseURL, cfg.RequestTimeout)
	guestStore := guest.New(ctx, db, logger)
	sess := session.New(client, guestStore, logger)

	if err := sess.RefreshCart(ctx); err != nil {
		logger.Fatalf("refresh cart: %v", err)
	}

	item, err := sess.AddCartItem(ctx, remote.AddCartInput{
		ProductID:  "demo-tomatoes",
		Kind:       domain.KindFarmPost,
		Quantity:   1,
		PriceCents: 450,
		Title:      "Heirloom Tomatoes",
		Currency:   "USD",
		Unit:       "kg",
	})
	if err != nil {
		logger.Fatalf("add cart item: %v", err)
	}
	if err := sess.UpdateCartQuantity(ctx, item.ID, 3); err != nil {
		logger.Fatalf("update quantity: %v", err)
	}

	if _, err := guestStore.Add(ctx, guest.AddInput{
		ItemID:   "demo-honey",
		ItemType: domain.ItemTypeFarmProduct,
		Fields:   map[string]interface{}{"title": "Raw Honey"},
	}); err != nil {
		logger.Fatalf("guest add: %v", err)
	}
	if err := sess.MergeGuestWishlist(ctx); err != nil {
		logger.Printf("merge: %v (state %s)", err, sess.MergeState())
	}

	totalItems, totalCents := sess.Cart().Totals()
	summary := sess.Wishlist().Summary()
	logger.Printf("cart: %d item(s), %d cents total", totalItems, totalCents)
	logger.Printf("wishlist: %d total (%d farm, %d store)", summary.Total, summary.FarmProducts, summary.StoreProducts)
}
