package gcp

import (
	"strings"

	"google.golang.org/api/option"
)

// ClientOptions resolves Google credentials the usual two ways: inline
// JSON or a file path. Empty means ADC (attached service account on
// Cloud Run/GKE).
func ClientOptions(creds string) []option.ClientOption {
	creds = strings.TrimSpace(creds)
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}
