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

const chatPrefix = "chat:"

// ChatStateStore tracks the conversational quota. Paid content
// delivery enables chat and resets the counter; turns only ever grow
// after that until the key is externally reset.
type ChatStateStore interface {
	Get(ctx context.Context, userID string) (types.ChatState, error)
	// Enable turns chat on and resets the turn counter.
	Enable(ctx context.Context, userID string) error
	// IncrementTurn bumps the counter after one successful exchange.
	IncrementTurn(ctx context.Context, userID string) error
}

type chatStateStore struct {
	kv  kv.Store
	log *logger.Logger
}

func NewChatStateStore(store kv.Store, baseLog *logger.Logger) ChatStateStore {
	return &chatStateStore{kv: store, log: baseLog.With("store", "ChatStateStore")}
}

func (c *chatStateStore) Get(ctx context.Context, userID string) (types.ChatState, error) {
	raw, err := c.kv.Get(ctx, chatPrefix+userID)
	if errors.Is(err, kv.ErrNotFound) {
		return types.ChatState{}, nil
	}
	if err != nil {
		return types.ChatState{}, fmt.Errorf("chat state get: %w", err)
	}
	var state types.ChatState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		c.log.Warn("corrupt chat state, resetting", "user_id", userID, "error", err)
		return types.ChatState{}, nil
	}
	return state, nil
}

func (c *chatStateStore) Enable(ctx context.Context, userID string) error {
	return c.put(ctx, userID, types.ChatState{Enabled: true, TurnsUsed: 0})
}

func (c *chatStateStore) IncrementTurn(ctx context.Context, userID string) error {
	state, err := c.Get(ctx, userID)
	if err != nil {
		return err
	}
	state.TurnsUsed++
	return c.put(ctx, userID, state)
}

func (c *chatStateStore) put(ctx context.Context, userID string, state types.ChatState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal chat state: %w", err)
	}
	if err := c.kv.Put(ctx, chatPrefix+userID, string(raw), 0); err != nil {
		return fmt.Errorf("chat state put: %w", err)
	}
	return nil
}
