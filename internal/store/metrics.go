package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/NarantsogtB/messenger-bot/internal/kv"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
)

const metricsPrefix = "metrics:"

// Metrics are plain KV counters, readable with one prefix scan.
// Failures to count never fail the job.
type Metrics interface {
	Incr(ctx context.Context, name string)
	Snapshot(ctx context.Context) (map[string]int64, error)
}

type metrics struct {
	kv  kv.Store
	log *logger.Logger
}

func NewMetrics(store kv.Store, baseLog *logger.Logger) Metrics {
	return &metrics{kv: store, log: baseLog.With("store", "Metrics")}
}

func (m *metrics) Incr(ctx context.Context, name string) {
	if _, err := m.kv.Incr(ctx, metricsPrefix+name); err != nil {
		m.log.Warn("metric increment failed", "metric", name, "error", err)
	}
}

func (m *metrics) Snapshot(ctx context.Context) (map[string]int64, error) {
	raw, err := m.kv.ListPrefix(ctx, metricsPrefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out[strings.TrimPrefix(k, metricsPrefix)] = n
	}
	return out, nil
}
