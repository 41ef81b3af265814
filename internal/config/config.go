package config

import (
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/platform/envutil"
)

// Config is the full environment surface of the bot. Every stateful
// store lives in Redis; there is no file-based configuration.
type Config struct {
	// Messenger platform
	VerifyToken     string
	AppSecret       string
	PageAccessToken string

	// Google APIs
	VisionCredentials string
	GeminiAPIKey      string
	GeminiModel       string

	// Redis
	RedisAddr         string
	QueueStream       string
	QueueGroup        string
	QueueConsumer     string
	WorkerConcurrency int

	// HTTP
	Port string

	// Feature flags
	QualityGateEnabled bool
	OnboardingEnabled  bool
	DebugAutoPaid      bool

	// Content
	AssetBaseURL string
	ChatMaxTurns int

	// TTLs
	DedupTTL time.Duration
	CacheTTL time.Duration
}

func Load() Config {
	return Config{
		VerifyToken:     envutil.String("MESSENGER_VERIFY_TOKEN", ""),
		AppSecret:       envutil.String("MESSENGER_APP_SECRET", ""),
		PageAccessToken: envutil.String("FB_PAGE_ACCESS_TOKEN", ""),

		VisionCredentials: envutil.String("GOOGLE_APPLICATION_CREDENTIALS_JSON", envutil.String("GOOGLE_APPLICATION_CREDENTIALS", "")),
		GeminiAPIKey:      envutil.String("GEMINI_API_KEY", ""),
		GeminiModel:       envutil.String("GEMINI_MODEL", "gemini-1.5-flash"),

		RedisAddr:         envutil.String("REDIS_ADDR", "localhost:6379"),
		QueueStream:       envutil.String("QUEUE_STREAM", "analysis-jobs"),
		QueueGroup:        envutil.String("QUEUE_GROUP", "analysis-workers"),
		QueueConsumer:     envutil.String("QUEUE_CONSUMER", "worker-1"),
		WorkerConcurrency: envutil.Int("WORKER_CONCURRENCY", 4),

		Port: envutil.String("PORT", "8080"),

		QualityGateEnabled: envutil.Bool("QUALITY_GATE_ENABLED", true),
		OnboardingEnabled:  envutil.Bool("ONBOARDING_ENABLED", true),
		DebugAutoPaid:      envutil.Bool("DEBUG_AUTO_PAID", false),

		AssetBaseURL: envutil.String("ASSET_BASE_URL", "https://example.com"),
		ChatMaxTurns: envutil.Int("CHAT_MAX_TURNS", 20),

		DedupTTL: envutil.Duration("DEDUP_TTL", 7*24*time.Hour),
		CacheTTL: envutil.Duration("ANALYSIS_CACHE_TTL", 7*24*time.Hour),
	}
}
