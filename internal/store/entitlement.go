package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
)

const paidPrefix = "paid:"

// EntitlementStore answers the paid/free question. The debug flag
// bypasses the KV check entirely; it exists for local testing and must
// never be set in production.
type EntitlementStore interface {
	IsPaid(ctx context.Context, userID string) (bool, error)
	SetPaid(ctx context.Context, userID string) error
}

type entitlementStore struct {
	kv            kv.Store
	log           *logger.Logger
	debugAutoPaid bool
}

func NewEntitlementStore(store kv.Store, baseLog *logger.Logger, debugAutoPaid bool) EntitlementStore {
	return &entitlementStore{
		kv:            store,
		log:           baseLog.With("store", "EntitlementStore"),
		debugAutoPaid: debugAutoPaid,
	}
}

func (e *entitlementStore) IsPaid(ctx context.Context, userID string) (bool, error) {
	if e.debugAutoPaid {
		return true, nil
	}
	val, err := e.kv.Get(ctx, paidPrefix+userID)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("entitlement get: %w", err)
	}
	return val == "1", nil
}

func (e *entitlementStore) SetPaid(ctx context.Context, userID string) error {
	if err := e.kv.Put(ctx, paidPrefix+userID, "1", 0); err != nil {
		return fmt.Errorf("entitlement set: %w", err)
	}
	return nil
}
