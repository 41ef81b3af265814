package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

// Queue is the at-least-once delivery mechanism between the webhook and
// the worker. A Redis Stream consumer group gives redelivery of
// unacknowledged entries; deduplication of the resulting duplicate
// deliveries is the pipeline's job, not the queue's.
type Queue interface {
	Enqueue(ctx context.Context, job types.Job) error
	// Consume blocks until ctx is cancelled, invoking handler per job.
	// The entry is acknowledged only when handler returns nil.
	Consume(ctx context.Context, handler func(context.Context, types.Job) error) error
	Close() error
}

type streamQueue struct {
	log      *logger.Logger
	rdb      *goredis.Client
	stream   string
	group    string
	consumer string
}

func NewQueue(log *logger.Logger, rdb *goredis.Client, stream, group, consumer string) (Queue, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if stream == "" || group == "" || consumer == "" {
		return nil, fmt.Errorf("stream, group and consumer are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &streamQueue{
		log:      log.With("client", "RedisQueue", "stream", stream),
		rdb:      rdb,
		stream:   stream,
		group:    group,
		consumer: consumer,
	}, nil
}

func (q *streamQueue) Enqueue(ctx context.Context, job types.Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}
	err = q.rdb.XAdd(ctx, &goredis.XAddArgs{
		Stream: q.stream,
		Values: map[string]interface{}{"job": string(raw)},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd: %w", err)
	}
	return nil
}

func (q *streamQueue) Consume(ctx context.Context, handler func(context.Context, types.Job) error) error {
	if handler == nil {
		return fmt.Errorf("handler required")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Reclaim entries another consumer read but never acknowledged.
		q.reclaim(ctx, handler)

		streams, err := q.rdb.XReadGroup(ctx, &goredis.XReadGroupArgs{
			Group:    q.group,
			Consumer: q.consumer,
			Streams:  []string{q.stream, ">"},
			Count:    16,
			Block:    5 * time.Second,
		}).Result()
		if err == goredis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			q.log.Warn("read group failed", "error", err)
			time.Sleep(time.Second)
			continue
		}

		for _, st := range streams {
			for _, msg := range st.Messages {
				q.dispatch(ctx, msg, handler)
			}
		}
	}
}

func (q *streamQueue) dispatch(ctx context.Context, msg goredis.XMessage, handler func(context.Context, types.Job) error) {
	raw, _ := msg.Values["job"].(string)
	var job types.Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		// Poison entry, ack so it never redelivers.
		q.log.Error("unparseable job entry", "id", msg.ID, "error", err)
		_ = q.rdb.XAck(ctx, q.stream, q.group, msg.ID).Err()
		return
	}
	if err := handler(ctx, job); err != nil {
		// Leave pending; the stream redelivers it later.
		q.log.Warn("job failed, leaving pending", "event_id", job.EventID, "error", err)
		return
	}
	if err := q.rdb.XAck(ctx, q.stream, q.group, msg.ID).Err(); err != nil {
		q.log.Warn("ack failed", "id", msg.ID, "error", err)
	}
}

// reclaim picks up entries idle past the redelivery threshold.
func (q *streamQueue) reclaim(ctx context.Context, handler func(context.Context, types.Job) error) {
	msgs, _, err := q.rdb.XAutoClaim(ctx, &goredis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: q.consumer,
		MinIdle:  time.Minute,
		Start:    "0-0",
		Count:    16,
	}).Result()
	if err != nil || len(msgs) == 0 {
		return
	}
	q.log.Info("reclaimed pending entries", "count", len(msgs))
	for _, msg := range msgs {
		q.dispatch(ctx, msg, handler)
	}
}

func (q *streamQueue) Close() error {
	return q.rdb.Close()
}
