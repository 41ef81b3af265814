package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/season"
)

const imageHashPrefix = "imagehash:"

// AnalysisCache maps an image fingerprint to a previously computed
// season. Purely content-addressed and shared across users; the
// requesting user's LastResult is a separate, identity-keyed record.
// Expiry is cost control, not correctness: re-computation after expiry
// is deterministic for the same bytes.
type AnalysisCache interface {
	Get(ctx context.Context, fingerprint string) (season.Season, bool, error)
	Put(ctx context.Context, fingerprint string, s season.Season, ttl time.Duration) error
}

type analysisCache struct {
	kv  kv.Store
	log *logger.Logger
}

func NewAnalysisCache(store kv.Store, baseLog *logger.Logger) AnalysisCache {
	return &analysisCache{kv: store, log: baseLog.With("store", "AnalysisCache")}
}

func (c *analysisCache) Get(ctx context.Context, fingerprint string) (season.Season, bool, error) {
	raw, err := c.kv.Get(ctx, imageHashPrefix+fingerprint)
	if errors.Is(err, kv.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	s, ok := season.Parse(raw)
	if !ok {
		// Treat an unparseable entry as a miss; it will be recomputed
		// and overwritten.
		c.log.Warn("corrupt cache entry", "fingerprint", fingerprint)
		return "", false, nil
	}
	return s, true, nil
}

func (c *analysisCache) Put(ctx context.Context, fingerprint string, s season.Season, ttl time.Duration) error {
	if err := c.kv.Put(ctx, imageHashPrefix+fingerprint, string(s), ttl); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}
