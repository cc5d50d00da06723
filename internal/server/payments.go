package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/middleware"
	"github.com/contractwise/backend/internal/payments"
)

// PaymentsHandler exposes checkout and the Stripe webhook.
type PaymentsHandler struct {
	svc    *payments.Service
	logger *slog.Logger
}

func NewPaymentsHandler(svc *payments.Service, logger *slog.Logger) *PaymentsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentsHandler{svc: svc, logger: logger}
}

// CreateCheckoutSession opens a Stripe checkout for the lifetime upgrade.
func (h *PaymentsHandler) CreateCheckoutSession(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sessionID, err := h.svc.CreateCheckoutSession(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create checkout session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"message":   "Checkout session created",
	})
}

// Webhook receives Stripe events. Signature failures are client errors so
// Stripe stops retrying a request it signed wrong; processing failures are
// server errors so it retries.
func (h *PaymentsHandler) Webhook(c *gin.Context) {
	sig := c.GetHeader("Stripe-Signature")
	if sig == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing stripe-signature header"})
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read webhook payload"})
		return
	}

	if err := h.svc.HandleWebhook(c.Request.Context(), payload, sig); err != nil {
		c.JSON(common.HTTPStatus(err), gin.H{
			"error":   "Failed to process webhook",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// MembershipStatus reports whether the caller has the premium tier.
func (h *PaymentsHandler) MembershipStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	status := "inactive"
	if user.IsPremium {
		status = "active"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
