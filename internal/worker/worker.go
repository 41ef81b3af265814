// Package worker drives the queue consumer loop. It owns no business
// logic; each delivered job is handed to the pipeline and the entry is
// acknowledged only when the pipeline reports success.
package worker

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/NarantsogtB/messenger-bot/internal/clients/redis"
	"github.com/NarantsogtB/messenger-bot/internal/pipeline"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

type Runner struct {
	log         *logger.Logger
	queue       redis.Queue
	pipe        *pipeline.Pipeline
	concurrency int
}

func NewRunner(baseLog *logger.Logger, queue redis.Queue, pipe *pipeline.Pipeline, concurrency int) (*Runner, error) {
	if baseLog == nil || queue == nil || pipe == nil {
		return nil, fmt.Errorf("logger, queue and pipeline are required")
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{
		log:         baseLog.With("service", "Worker"),
		queue:       queue,
		pipe:        pipe,
		concurrency: concurrency,
	}, nil
}

// Run blocks until ctx is cancelled. Consumers share one consumer-group
// identity; Redis hands each stream entry to exactly one of them.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("starting consumers", "concurrency", r.concurrency)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.concurrency; i++ {
		g.Go(func() error {
			return r.queue.Consume(ctx, r.handle)
		})
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runner) handle(ctx context.Context, job types.Job) error {
	res, err := r.pipe.Process(ctx, job)
	if err != nil {
		r.log.Error("job failed", "event_id", job.EventID, "intent", job.Intent, "error", err)
		return err
	}
	if res.Skipped {
		return nil
	}
	r.log.Info("job done", "event_id", job.EventID, "intent", job.Intent, "season", res.Season)
	return nil
}
