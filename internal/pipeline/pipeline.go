// Package pipeline orchestrates one inbound event end to end:
// deduplication, intent branching, image analysis, the entitlement
// state machine and the chat sub-flow. Every job is processed
// independently; all shared state lives in the external KV store.
package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/assets"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/season"
	"github.com/NarantsogtB/messenger-bot/internal/store"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

// Collaborator contracts, defined consumer-side so tests can fake them.

type FaceDetector interface {
	DetectFace(ctx context.Context, img []byte) (*types.FaceMetadata, error)
}

type ChatResponder interface {
	Respond(ctx context.Context, input string, s season.Season) (string, error)
}

type Sender interface {
	SendText(ctx context.Context, userID, text string)
	SendImage(ctx context.Context, userID, imageURL string)
	SendQuickReplies(ctx context.Context, userID, text string, options []string)
}

type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options carries the configuration surface the pipeline consumes.
type Options struct {
	QualityGateEnabled bool
	ChatMaxTurns       int
	DedupTTL           time.Duration
	CacheTTL           time.Duration
}

type Pipeline struct {
	log  *logger.Logger
	opts Options

	sessions    store.SessionStore
	dedup       store.DeduplicationGate
	cache       store.AnalysisCache
	lastResult  store.LastResultStore
	chatState   store.ChatStateStore
	entitlement store.EntitlementStore
	metrics     store.Metrics

	fetcher  ImageFetcher
	detector FaceDetector
	chat     ChatResponder
	sender   Sender
	resolver *assets.Resolver

	// pickVariant selects a 1-based card variant; swapped in tests.
	pickVariant func(n int) int
}

type Deps struct {
	Sessions    store.SessionStore
	Dedup       store.DeduplicationGate
	Cache       store.AnalysisCache
	LastResult  store.LastResultStore
	ChatState   store.ChatStateStore
	Entitlement store.EntitlementStore
	Metrics     store.Metrics

	Fetcher  ImageFetcher
	Detector FaceDetector
	Chat     ChatResponder
	Sender   Sender
	Resolver *assets.Resolver
}

func New(baseLog *logger.Logger, deps Deps, opts Options) (*Pipeline, error) {
	if baseLog == nil {
		return nil, fmt.Errorf("logger required")
	}
	if deps.Sessions == nil || deps.Dedup == nil || deps.Cache == nil ||
		deps.LastResult == nil || deps.ChatState == nil || deps.Entitlement == nil ||
		deps.Metrics == nil || deps.Fetcher == nil || deps.Detector == nil ||
		deps.Chat == nil || deps.Sender == nil || deps.Resolver == nil {
		return nil, fmt.Errorf("all pipeline dependencies are required")
	}
	if opts.ChatMaxTurns <= 0 {
		opts.ChatMaxTurns = 20
	}
	if opts.DedupTTL <= 0 {
		opts.DedupTTL = 7 * 24 * time.Hour
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 7 * 24 * time.Hour
	}
	return &Pipeline{
		log:         baseLog.With("service", "Pipeline"),
		opts:        opts,
		sessions:    deps.Sessions,
		dedup:       deps.Dedup,
		cache:       deps.Cache,
		lastResult:  deps.LastResult,
		chatState:   deps.ChatState,
		entitlement: deps.Entitlement,
		metrics:     deps.Metrics,
		fetcher:     deps.Fetcher,
		detector:    deps.Detector,
		chat:        deps.Chat,
		sender:      deps.Sender,
		resolver:    deps.Resolver,
		pickVariant: func(n int) int { return rand.IntN(n) + 1 },
	}, nil
}

// Process runs one job. Collaborator failures become localized user
// messages and the job still completes; only infrastructure (KV)
// errors propagate, leaving no completion marker so the queue
// redelivers the whole job.
func (p *Pipeline) Process(ctx context.Context, job types.Job) (types.ProcessResult, error) {
	admitted, err := p.dedup.Admit(ctx, job.EventID)
	if err != nil {
		return types.ProcessResult{}, err
	}
	if !admitted {
		p.log.Info("duplicate event, skipping", "event_id", job.EventID)
		p.metrics.Incr(ctx, "jobs_skipped")
		return types.ProcessResult{OK: true, Skipped: true}, nil
	}

	result := types.ProcessResult{OK: true}

	switch job.Intent {
	case types.IntentMenuPaidEntry:
		if err := p.handlePaidEntry(ctx, job.UserID); err != nil {
			return types.ProcessResult{}, err
		}
	case types.IntentTextMessage:
		if err := p.handleText(ctx, job); err != nil {
			return types.ProcessResult{}, err
		}
	case types.IntentImageMessage:
		if job.ImageURL != "" {
			r, err := p.handleImageAnalysis(ctx, job)
			if err != nil {
				return types.ProcessResult{}, err
			}
			result.Season = r.Season
			result.ReplyText = r.ReplyText
		}
	default:
		// MenuFreeEntry greeting happens at intake; anything else is a
		// no-op but still consumes its idempotency slot.
	}

	// The marker lands after all side effects. A crash anywhere above
	// leaves no marker and the job is redelivered whole.
	if err := p.dedup.MarkComplete(ctx, job.EventID, p.opts.DedupTTL); err != nil {
		return types.ProcessResult{}, err
	}
	p.metrics.Incr(ctx, "jobs_processed")
	return result, nil
}

// handleText routes gender quick-reply payloads into the entitlement
// flow; everything else goes to chat. Recognition is structural, not
// natural-language: the payload must equal one of the two options.
func (p *Pipeline) handleText(ctx context.Context, job types.Job) error {
	switch job.Text {
	case genderOptionFemale, genderOptionMale:
		gender := types.GenderFemale
		if job.Text == genderOptionMale {
			gender = types.GenderMale
		}
		if _, err := p.sessions.Update(ctx, job.UserID, types.SessionPatch{Gender: &gender}); err != nil {
			return err
		}
		// Resume the paid flow the gender prompt interrupted.
		return p.handlePaidEntry(ctx, job.UserID)
	default:
		return p.handleChat(ctx, job.UserID, job.Text)
	}
}

// NewHTTPFetcher adapts a plain HTTP client to the ImageFetcher
// contract.
func NewHTTPFetcher(client *http.Client) ImageFetcher {
	return httpFetcher{client: client}
}
