package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"heavyrent-backend/internal/model"
	"heavyrent-backend/internal/mw"
)

type putSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	P256DH   string `json:"p256dh" binding:"required"`
	Auth     string `json:"auth" binding:"required"`
}

// PutSubscription handles the creation or replacement of the caller's
// push subscription.
func (h *Handler) PutSubscription(c *gin.Context) {
	var req putSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := model.PushSubscription{
		Endpoint: req.Endpoint,
		P256DH:   req.P256DH,
		Auth:     req.Auth,
		UserID:   mw.UserID(c),
	}
	if err := h.subscriptions.Upsert(c.Request.Context(), &sub); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// GetSubscriptions returns the caller's registered push subscriptions.
func (h *Handler) GetSubscriptions(c *gin.Context) {
	subs, err := h.subscriptions.FindByUser(c.Request.Context(), mw.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

type deleteSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// DeleteSubscription removes the caller's subscription for an endpoint.
func (h *Handler) DeleteSubscription(c *gin.Context) {
	var req deleteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.subscriptions.Delete(c.Request.Context(), mw.UserID(c), req.Endpoint); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
