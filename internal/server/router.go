package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/middleware"
	"github.com/contractwise/backend/internal/repository"
)

// NewRouter wires middleware and routes. The webhook and the OAuth entry
// points stay public; everything else requires a session.
func NewRouter(
	authCfg *common.AuthConfig,
	users repository.UserRepository,
	authHandler *AuthHandler,
	contractsHandler *ContractsHandler,
	paymentsHandler *PaymentsHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(authCfg, users)

	authGroup := r.Group("/auth")
	{
		authGroup.GET("/google", authHandler.Login)
		authGroup.GET("/google/callback", authHandler.Callback)
		authGroup.GET("/me", requireAuth, authHandler.Me)
		authGroup.GET("/logout", requireAuth, authHandler.Logout)
	}

	contracts := r.Group("/contracts", requireAuth)
	{
		contracts.POST("/detect-type", contractsHandler.DetectType)
		contracts.POST("/analyze", contractsHandler.Analyze)
		contracts.GET("/user-contracts", contractsHandler.List)
		contracts.GET("/export", contractsHandler.Export)
		contracts.GET("/contract/:id", contractsHandler.Get)
		contracts.DELETE("/:id", contractsHandler.Delete)
	}

	paymentsGroup := r.Group("/payments")
	{
		paymentsGroup.GET("/create-checkout-session", requireAuth, paymentsHandler.CreateCheckoutSession)
		paymentsGroup.POST("/webhook", paymentsHandler.Webhook)
		paymentsGroup.GET("/membership-status", requireAuth, paymentsHandler.MembershipStatus)
	}

	return r
}
