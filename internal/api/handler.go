package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"heavyrent-backend/internal/auth"
	"heavyrent-backend/internal/service"
)

// IdentityProvider resolves an external OAuth identity. Satisfied by
// auth.GoogleVerifier; faked in tests.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Profile, error)
}

// Notifier dispatches a rental request id for asynchronous owner
// notification. Satisfied by notification.WorkerPool.
type Notifier interface {
	Dispatch(rentalID int64)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	users         *service.Users
	machines      *service.Machines
	rentals       *service.Rentals
	subscriptions *service.Subscriptions
	tokens        *auth.TokenIssuer
	identity      IdentityProvider
	notifier      Notifier
	webpush       *webpush.Options
}

// HandlerConfig carries the collaborators a Handler needs. Notifier
// and webpush options may be nil when push is not configured.
type HandlerConfig struct {
	Users         *service.Users
	Machines      *service.Machines
	Rentals       *service.Rentals
	Subscriptions *service.Subscriptions
	Tokens        *auth.TokenIssuer
	Identity      IdentityProvider
	Notifier      Notifier
	WebPush       *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:         cfg.Users,
		machines:      cfg.Machines,
		rentals:       cfg.Rentals,
		subscriptions: cfg.Subscriptions,
		tokens:        cfg.Tokens,
		identity:      cfg.Identity,
		notifier:      cfg.Notifier,
		webpush:       cfg.WebPush,
	}
}

// writeError translates service-layer failures: domain not-found
// errors become 404, everything else is a server fault.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrMachineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
