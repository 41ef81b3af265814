package kv

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

// memoryStore backs tests and local development without a Redis
// instance. Expiry is checked lazily on read.
type memoryStore struct {
	mu      sync.RWMutex
	values  map[string]string
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemory() Store {
	return &memoryStore{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

// NewMemoryWithClock lets TTL tests control time.
func NewMemoryWithClock(now func() time.Time) Store {
	return &memoryStore{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
		now:     now,
	}
}

func (m *memoryStore) expired(key string) bool {
	exp, ok := m.expires[key]
	return ok && m.now().After(exp)
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok || m.expired(key) {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memoryStore) Put(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	if ttl > 0 {
		m.expires[key] = m.now().Add(ttl)
	} else {
		delete(m.expires, key)
	}
	return nil
}

func (m *memoryStore) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := int64(0)
	if v, ok := m.values[key]; ok && !m.expired(key) {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, err
		}
		cur = parsed
	}
	cur++
	m.values[key] = strconv.FormatInt(cur, 10)
	return cur, nil
}

func (m *memoryStore) ListPrefix(_ context.Context, prefix string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string)
	for k, v := range m.values {
		if strings.HasPrefix(k, prefix) && !m.expired(k) {
			out[k] = v
		}
	}
	return out, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.expires, key)
	return nil
}
