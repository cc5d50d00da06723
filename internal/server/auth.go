package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contractwise/backend/internal/auth"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/middleware"
)

const stateCookieName = "oauth_state"

// AuthHandler exposes the Google OAuth login flow and the session surface.
type AuthHandler struct {
	google    *auth.GoogleAuthenticator
	cfg       *common.AuthConfig
	clientURL string
	logger    *slog.Logger
}

func NewAuthHandler(google *auth.GoogleAuthenticator, cfg *common.AuthConfig, clientURL string, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		google:    google,
		cfg:       cfg,
		clientURL: clientURL,
		logger:    logger,
	}
}

// Login sends the browser to the Google consent page with a one-shot state
// cookie for CSRF protection.
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookieName, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.google.LoginURL(state))
}

// Callback completes the OAuth exchange, issues a session token, and sends
// the browser back to the client app.
func (h *AuthHandler) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	user, err := h.google.HandleCallback(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to complete login",
			"details": err.Error(),
		})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(user, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to issue session",
			"details": err.Error(),
		})
		return
	}

	maxAge := int(h.cfg.TokenTTL.Seconds())
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", false, true)
	h.logger.Info("auth.session_issued", "user_id", user.ID, "expires_at", expiresAt)

	c.Redirect(http.StatusFound, h.clientURL)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie and sends the browser home.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, h.clientURL)
}
