package pipeline

import (
	"context"
	"net/http"

	"github.com/NarantsogtB/messenger-bot/internal/imaging"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

type httpFetcher struct {
	client *http.Client
}

func (f httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return imaging.Fetch(ctx, f.client, url)
}

// handleImageAnalysis runs the image path: fetch, fingerprint, cache,
// detect, gate, classify, persist, respond. The analysis cache is
// content-keyed and shared; LastResult is identity-keyed and private —
// a cache hit still updates LastResult and emits the full response.
func (p *Pipeline) handleImageAnalysis(ctx context.Context, job types.Job) (types.ProcessResult, error) {
	data, err := p.fetcher.Fetch(ctx, job.ImageURL)
	if err != nil {
		// Transport failure: tell the user to retry, complete the job.
		// Retrying in-pipeline would loop forever on a dead CDN link.
		p.log.Warn("image fetch failed", "event_id", job.EventID, "error", err)
		p.metrics.Incr(ctx, "fetch_error")
		p.sender.SendText(ctx, job.UserID, msgGenericRetry)
		return types.ProcessResult{OK: true, ReplyText: msgGenericRetry}, nil
	}

	fp := imaging.Fingerprint(data)

	cached, hit, err := p.cache.Get(ctx, fp)
	if err != nil {
		return types.ProcessResult{}, err
	}
	if hit {
		p.log.Info("analysis cache hit", "fingerprint", fp)
		p.metrics.Incr(ctx, "cache_hit")
		if err := p.lastResult.Set(ctx, job.UserID, cached); err != nil {
			return types.ProcessResult{}, err
		}
		reply := FormatAnalysis(cached)
		p.sender.SendText(ctx, job.UserID, reply)
		return types.ProcessResult{OK: true, Season: string(cached), ReplyText: reply}, nil
	}

	face, err := p.detector.DetectFace(ctx, data)
	if err != nil {
		p.log.Warn("face detection failed", "event_id", job.EventID, "error", err)
		p.metrics.Incr(ctx, "detect_error")
		p.sender.SendText(ctx, job.UserID, msgGenericRetry)
		return types.ProcessResult{OK: true, ReplyText: msgGenericRetry}, nil
	}
	if face == nil {
		p.metrics.Incr(ctx, "no_face")
		p.sender.SendText(ctx, job.UserID, msgNoFace)
		return types.ProcessResult{OK: true, ReplyText: msgNoFace}, nil
	}

	// The pixel buffer is auxiliary: the gate fails open on decode
	// failure, and the classifier falls back when it has no pixels.
	decoded, decodeErr := imaging.Decode(data)
	if decodeErr != nil {
		p.log.Warn("image decode failed, gate fails open", "event_id", job.EventID, "error", decodeErr)
		p.metrics.Incr(ctx, "decode_error")
	}

	if p.opts.QualityGateEnabled && decodeErr == nil {
		if q := imaging.CheckQuality(*face, decoded.Width, decoded.Height); !q.Valid {
			p.metrics.Incr(ctx, "quality_rejected")
			reply := qualityMessage(q.Reason)
			p.sender.SendText(ctx, job.UserID, reply)
			// No classification, no cache write.
			return types.ProcessResult{OK: true, ReplyText: reply}, nil
		}
	}

	s, confidence := imaging.ClassifyTone(decoded, *face)
	p.log.Info("classified image", "fingerprint", fp, "season", string(s), "confidence", confidence)

	if err := p.cache.Put(ctx, fp, s, p.opts.CacheTTL); err != nil {
		return types.ProcessResult{}, err
	}
	if err := p.lastResult.Set(ctx, job.UserID, s); err != nil {
		return types.ProcessResult{}, err
	}

	p.metrics.Incr(ctx, "analysis_done")
	reply := FormatAnalysis(s)
	p.sender.SendText(ctx, job.UserID, reply)
	return types.ProcessResult{OK: true, Season: string(s), ReplyText: reply}, nil
}
