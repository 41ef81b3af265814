package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NarantsogtB/messenger-bot/internal/handlers"
)

type RouterConfig struct {
	WebhookHandler *handlers.WebhookHandler
	MetricsHandler *handlers.MetricsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Hub-Signature-256"},
		AllowCredentials: false,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Messenger platform callbacks
	router.GET("/webhook", cfg.WebhookHandler.Verify)
	router.POST("/webhook", cfg.WebhookHandler.Receive)

	// Operator surface
	router.GET("/metrics", cfg.MetricsHandler.Snapshot)

	return router
}
