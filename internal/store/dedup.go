package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
)

const idempotencyPrefix = "idempotency:"

// DeduplicationGate is the only defense against duplicate user-visible
// output under the queue's at-least-once delivery. The marker is
// written after all side effects, so a crash mid-job redelivers the
// whole job (possible duplicate side effects, accepted trade-off)
// instead of silently dropping the remainder.
type DeduplicationGate interface {
	// Admit reports whether the event should be processed. False means
	// a completion marker exists and the job must be dropped.
	Admit(ctx context.Context, eventID string) (bool, error)
	// MarkComplete records the completion marker. Call only after every
	// externally visible side effect has been issued.
	MarkComplete(ctx context.Context, eventID string, ttl time.Duration) error
}

type dedupGate struct {
	kv  kv.Store
	log *logger.Logger
}

func NewDeduplicationGate(store kv.Store, baseLog *logger.Logger) DeduplicationGate {
	return &dedupGate{kv: store, log: baseLog.With("store", "DeduplicationGate")}
}

func (d *dedupGate) Admit(ctx context.Context, eventID string) (bool, error) {
	_, err := d.kv.Get(ctx, idempotencyPrefix+eventID)
	if errors.Is(err, kv.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("dedup lookup: %w", err)
	}
	return false, nil
}

func (d *dedupGate) MarkComplete(ctx context.Context, eventID string, ttl time.Duration) error {
	if err := d.kv.Put(ctx, idempotencyPrefix+eventID, "1", ttl); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}
