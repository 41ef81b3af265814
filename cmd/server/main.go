package main

import (
	"fmt"
	"os"

	"github.com/NarantsogtB/messenger-bot/internal/clients/messenger"
	"github.com/NarantsogtB/messenger-bot/internal/clients/redis"
	"github.com/NarantsogtB/messenger-bot/internal/config"
	"github.com/NarantsogtB/messenger-bot/internal/handlers"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/server"
	"github.com/NarantsogtB/messenger-bot/internal/store"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading configuration...")
	cfg := config.Load()

	// Redis
	rdb, err := redis.NewClient(log, cfg.RedisAddr)
	if err != nil {
		log.Error("Could not connect to redis", "error", err)
		os.Exit(1)
	}
	kvStore := redis.NewKV(log, rdb)
	queue, err := redis.NewQueue(log, rdb, cfg.QueueStream, cfg.QueueGroup, cfg.QueueConsumer)
	if err != nil {
		log.Error("Could not init queue", "error", err)
		os.Exit(1)
	}

	// Stores
	sessions := store.NewSessionStore(kvStore, log)
	metrics := store.NewMetrics(kvStore, log)

	// Outbound messenger, used only for the onboarding greeting.
	sender := messenger.NewSender(log, cfg.PageAccessToken)

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(
		log,
		queue,
		sessions,
		sender,
		cfg.VerifyToken,
		cfg.AppSecret,
		cfg.OnboardingEnabled,
	)
	metricsHandler := handlers.NewMetricsHandler(log, metrics)

	// Router
	router := server.NewRouter(server.RouterConfig{
		WebhookHandler: webhookHandler,
		MetricsHandler: metricsHandler,
	})

	log.Info("Starting webhook server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
