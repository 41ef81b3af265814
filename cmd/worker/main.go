package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/assets"
	"github.com/NarantsogtB/messenger-bot/internal/clients/gcp"
	"github.com/NarantsogtB/messenger-bot/internal/clients/genai"
	"github.com/NarantsogtB/messenger-bot/internal/clients/messenger"
	"github.com/NarantsogtB/messenger-bot/internal/clients/redis"
	"github.com/NarantsogtB/messenger-bot/internal/config"
	"github.com/NarantsogtB/messenger-bot/internal/pipeline"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/store"
	"github.com/NarantsogtB/messenger-bot/internal/worker"
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
	dedup := store.NewDeduplicationGate(kvStore, log)
	cache := store.NewAnalysisCache(kvStore, log)
	lastResult := store.NewLastResultStore(kvStore, log)
	chatState := store.NewChatStateStore(kvStore, log)
	entitlement := store.NewEntitlementStore(kvStore, log, cfg.DebugAutoPaid)
	metrics := store.NewMetrics(kvStore, log)

	// External clients
	detector, err := gcp.NewFaceDetector(log, cfg.VisionCredentials)
	if err != nil {
		log.Error("Could not init face detector", "error", err)
		os.Exit(1)
	}
	defer detector.Close()
	responder, err := genai.NewChatResponder(log, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Error("Could not init chat responder", "error", err)
		os.Exit(1)
	}
	sender := messenger.NewSender(log, cfg.PageAccessToken)

	// Pipeline
	pipe, err := pipeline.New(log, pipeline.Deps{
		Sessions:    sessions,
		Dedup:       dedup,
		Cache:       cache,
		LastResult:  lastResult,
		ChatState:   chatState,
		Entitlement: entitlement,
		Metrics:     metrics,
		Fetcher:     pipeline.NewHTTPFetcher(&http.Client{Timeout: 30 * time.Second}),
		Detector:    detector,
		Chat:        responder,
		Sender:      sender,
		Resolver:    assets.NewResolver(cfg.AssetBaseURL),
	}, pipeline.Options{
		QualityGateEnabled: cfg.QualityGateEnabled,
		ChatMaxTurns:       cfg.ChatMaxTurns,
		DedupTTL:           cfg.DedupTTL,
		CacheTTL:           cfg.CacheTTL,
	})
	if err != nil {
		log.Error("Could not init pipeline", "error", err)
		os.Exit(1)
	}

	runner, err := worker.NewRunner(log, queue, pipe, cfg.WorkerConcurrency)
	if err != nil {
		log.Error("Could not init worker", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		log.Error("Worker exited", "error", err)
		os.Exit(1)
	}
	log.Info("Worker stopped")
}
