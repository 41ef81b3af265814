package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/season"
)

const lastResultPrefix = "lastResult:"

// LastResultStore records the most recent classification per user. It
// is the universal precondition for the paid flow and is updated on
// every analysis, cache hit or not.
type LastResultStore interface {
	Get(ctx context.Context, userID string) (season.Season, bool, error)
	Set(ctx context.Context, userID string, s season.Season) error
}

type lastResultStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewLastResultStore(store kv.Store, baseLog *logger.Logger) LastResultStore {
	return &lastResultStore{kv: store, log: baseLog.With("store", "LastResultStore")}
}

func (l *lastResultStore) Get(ctx context.Context, userID string) (season.Season, bool, error) {
	raw, err := l.kv.Get(ctx, lastResultPrefix+userID)
	if errors.Is(err, kv.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("last result get: %w", err)
	}
	s, ok := season.Parse(raw)
	if !ok {
		l.log.Warn("corrupt last result", "user_id", userID)
		return "", false, nil
	}
	return s, true, nil
}

func (l *lastResultStore) Set(ctx context.Context, userID string, s season.Season) error {
	if err := l.kv.Put(ctx, lastResultPrefix+userID, string(s), 0); err != nil {
		return fmt.Errorf("last result set: %w", err)
	}
	return nil
}
