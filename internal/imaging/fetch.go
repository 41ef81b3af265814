// Package imaging covers the image path of the pipeline: fetching
// bytes, fingerprinting them, decoding JPEG input, the pre-analysis
// quality gate and the tone classifier.
package imaging

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNetwork marks fetch failures; the pipeline turns it into a generic
// localized retry message rather than a crash.
var ErrNetwork = errors.New("imaging: fetch failed")

// Fetch downloads the image bytes from a Messenger CDN URL. No retry
// here: resilience comes from queue redelivery.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %s", ErrNetwork, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return data, nil
}

// Fingerprint is the content address of an image: SHA-256 over the raw
// bytes, so byte-identical uploads from different users collide on
// purpose.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
