// Package messenger implements the outbound side of the Messenger
// Graph API. All sends are fire-and-forget from the pipeline's point of
// view: delivery failures are logged here and never surface as job
// errors.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
)

const graphSendURL = "https://graph.facebook.com/v11.0/me/messages"

type Sender interface {
	SendText(ctx context.Context, userID, text string)
	SendImage(ctx context.Context, userID, imageURL string)
	SendQuickReplies(ctx context.Context, userID, text string, options []string)
}

type sender struct {
	log         *logger.Logger
	http        *http.Client
	accessToken string
	endpoint    string
}

func NewSender(log *logger.Logger, accessToken string) Sender {
	return &sender{
		log:         log.With("client", "MessengerSender"),
		http:        &http.Client{Timeout: 10 * time.Second},
		accessToken: accessToken,
		endpoint:    graphSendURL,
	}
}

type payload struct {
	Recipient recipient `json:"recipient"`
	Message   message   `json:"message"`
}

type recipient struct {
	ID string `json:"id"`
}

type message struct {
	Text         string       `json:"text,omitempty"`
	Attachment   *attachment  `json:"attachment,omitempty"`
	QuickReplies []quickReply `json:"quick_replies,omitempty"`
}

type attachment struct {
	Type    string            `json:"type"`
	Payload attachmentPayload `json:"payload"`
}

type attachmentPayload struct {
	URL        string `json:"url"`
	IsReusable bool   `json:"is_reusable"`
}

type quickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

func (s *sender) SendText(ctx context.Context, userID, text string) {
	s.post(ctx, payload{
		Recipient: recipient{ID: userID},
		Message:   message{Text: text},
	})
}

func (s *sender) SendImage(ctx context.Context, userID, imageURL string) {
	s.post(ctx, payload{
		Recipient: recipient{ID: userID},
		Message: message{
			Attachment: &attachment{
				Type:    "image",
				Payload: attachmentPayload{URL: imageURL, IsReusable: true},
			},
		},
	})
}

func (s *sender) SendQuickReplies(ctx context.Context, userID, text string, options []string) {
	replies := make([]quickReply, 0, len(options))
	for _, opt := range options {
		replies = append(replies, quickReply{ContentType: "text", Title: opt, Payload: opt})
	}
	s.post(ctx, payload{
		Recipient: recipient{ID: userID},
		Message:   message{Text: text, QuickReplies: replies},
	})
}

func (s *sender) post(ctx context.Context, p payload) {
	raw, err := json.Marshal(p)
	if err != nil {
		s.log.Error("marshal send payload", "error", err)
		return
	}
	u := s.endpoint + "?" + url.Values{"access_token": {s.accessToken}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(raw))
	if err != nil {
		s.log.Error("build send request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		s.log.Error("messenger send failed", "user_id", p.Recipient.ID, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		s.log.Error("messenger send rejected",
			"user_id", p.Recipient.ID,
			"status", resp.StatusCode,
			"body", string(body),
		)
	}
}
