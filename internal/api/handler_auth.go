package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const stateCookieName = "oauth_state"

// GoogleLogin handles GET /auth/google: it plants an anti-forgery
// state cookie and redirects to the provider's consent page.
func (h *Handler) GoogleLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.identity.AuthCodeURL(state))
}

// GoogleCallback handles GET /auth/google/redirect. It exchanges the
// authorization code for a profile, resolves the local user by
// find-or-create and returns a bearer credential.
func (h *Handler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	cookieState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	profile, err := h.identity.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindOrCreate(c.Request.Context(), profile.Email, profile.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}
