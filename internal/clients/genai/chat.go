// Package genai wraps the Gemini API behind the ChatResponder contract
// the pipeline consumes.
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	googlegenai "google.golang.org/genai"

	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/season"
)

// ErrExternal marks Gemini transport/API failures. Callers render a
// fixed localized fallback instead of propagating it to the user.
var ErrExternal = errors.New("genai: chat call failed")

// ChatResponder answers a user's styling question in the context of
// their classified season.
type ChatResponder interface {
	Respond(ctx context.Context, input string, s season.Season) (string, error)
}

type chatResponder struct {
	log    *logger.Logger
	client *googlegenai.Client
	model  string
}

func NewChatResponder(log *logger.Logger, apiKey, model string) (ChatResponder, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing gemini api key")
	}
	client, err := googlegenai.NewClient(context.Background(), &googlegenai.ClientConfig{
		APIKey:  apiKey,
		Backend: googlegenai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &chatResponder{log: log.With("client", "ChatResponder"), client: client, model: model}, nil
}

func (c *chatResponder) Respond(ctx context.Context, input string, s season.Season) (string, error) {
	prompt := buildPrompt(input, s)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, googlegenai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternal, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrExternal)
	}
	return text, nil
}

// The prompt pins the answer language to Mongolian and keeps replies
// short; token spend is the dominant cost of the chat tier.
func buildPrompt(input string, s season.Season) string {
	seasonLine := "Unknown"
	if s != "" {
		seasonLine = string(s)
	}
	return fmt.Sprintf(`You are a professional seasonal color analysis assistant.
Context:
- User's Season: %s
- Language: Mongolian

User Question: %s

Instructions:
- Respond ONLY in Mongolian.
- Be EXTREMELY concise (1-2 sentences maximum).
- Goal: Minimize token usage while being helpful.
- If the season is unknown, just ask them to send a photo.
- Do not use unnecessary greetings or filler.
`, seasonLine, input)
}
