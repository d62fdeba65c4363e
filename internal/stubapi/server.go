// Package stubapi is an in-memory stand-in for the marketplace collection
// endpoints: a development fixture and the target the remote client is
// tested against. The production API is an external collaborator and lives
// elsewhere.
package stubapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server setup around the fixture router.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server listening on addr.
func New(addr string, logger *log.Logger) *Server {
	router := NewRouter(logger)
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewRouter wires the fixture routes over a fresh in-memory store.
func NewRouter(logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	store := newMemoryStore()

	router.GET("/cart", listCartHandler(store))
	router.POST("/cart", addCartHandler(store))
	router.DELETE("/cart/clear", clearCartHandler(store))
	router.PUT("/cart/:id", updateCartHandler(store))
	router.DELETE("/cart/:id", removeCartHandler(store))

	router.GET("/wishlist", listWishlistHandler(store))
	router.POST("/wishlist", addWishlistHandler(store))
	router.DELETE("/wishlist", clearWishlistHandler(store))
	router.PUT("/wishlist/:id", updateWishlistHandler(store))
	router.DELETE("/wishlist/:id", removeWishlistHandler(store))

	return router
}
