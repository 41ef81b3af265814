// Package store holds the per-user and per-content records that live in
// the external key-value store: sessions, entitlement, last results,
// chat quota, the analysis cache, idempotency markers and metric
// counters. Nothing here is transactional; each record is one key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

const sessionPrefix = "session:"

type SessionStore interface {
	// Get returns the stored session, or the default session when none
	// exists. A missing session is never an error.
	Get(ctx context.Context, userID string) (types.Session, error)
	// Update merges the patch into the current session and writes it
	// back. Read-merge-write: concurrent updates to one user resolve
	// last-write-wins, an accepted weakness of the KV model.
	Update(ctx context.Context, userID string, patch types.SessionPatch) (types.Session, error)
}

type sessionStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewSessionStore(store kv.Store, baseLog *logger.Logger) SessionStore {
	return &sessionStore{kv: store, log: baseLog.With("store", "SessionStore")}
}

func (s *sessionStore) Get(ctx context.Context, userID string) (types.Session, error) {
	raw, err := s.kv.Get(ctx, sessionPrefix+userID)
	if errors.Is(err, kv.ErrNotFound) {
		return types.Session{}, nil
	}
	if err != nil {
		return types.Session{}, fmt.Errorf("get session: %w", err)
	}
	var sess types.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		// Corrupt record: fall back to the default rather than wedging
		// the user forever.
		s.log.Warn("corrupt session record, resetting", "user_id", userID, "error", err)
		return types.Session{}, nil
	}
	return sess, nil
}

func (s *sessionStore) Update(ctx context.Context, userID string, patch types.SessionPatch) (types.Session, error) {
	sess, err := s.Get(ctx, userID)
	if err != nil {
		return types.Session{}, err
	}
	if patch.HasSeenGreeting != nil {
		sess.HasSeenGreeting = *patch.HasSeenGreeting
	}
	if patch.IsPaid != nil {
		sess.IsPaid = *patch.IsPaid
	}
	if patch.Gender != nil {
		sess.Gender = *patch.Gender
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return types.Session{}, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Put(ctx, sessionPrefix+userID, string(raw), 0); err != nil {
		return types.Session{}, fmt.Errorf("put session: %w", err)
	}
	return sess, nil
}
