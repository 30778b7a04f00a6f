package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"heavyrent-backend/config"
	"heavyrent-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)
	authRequired := mw.Auth(h.tokens)

	// Public list endpoints are cacheable; a TTL of zero disables the
	// cache (used in tests).
	caching := func(c *gin.Context) { c.Next() }
	if cfg.CacheTTLSeconds > 0 {
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		cacheStore := cache.New(ttl, 2*ttl)
		caching = mw.Cache(cacheStore, ttl)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/google", h.GoogleLogin)
		authGroup.GET("/google/redirect", h.GoogleCallback)
	}

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/users", caching, h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id", h.GetUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.GET("/machines", caching, h.ListMachines)
		api.POST("/machines", authRequired, h.CreateMachine)

		api.GET("/rentals", authRequired, h.ListRentals)
		api.POST("/rentals", authRequired, h.CreateRental)

		api.GET("/subscriptions", authRequired, h.GetSubscriptions)
		api.PUT("/subscriptions", authRequired, h.PutSubscription)
		api.DELETE("/subscriptions", authRequired, h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
