package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NarantsogtB/messenger-bot/internal/clients/redis"
	"github.com/NarantsogtB/messenger-bot/internal/platform/logger"
	"github.com/NarantsogtB/messenger-bot/internal/store"
	"github.com/NarantsogtB/messenger-bot/internal/types"
)

const greetingText = "Сайн байна уу! Танд туслахдаа таатай байх болно 😊 Өөрийн зургаа илгээж, танд тохирох өнгийг мэдэж аваарай."

// WebhookHandler receives Messenger events, verifies them and turns
// each messaging event into one queued Job. All heavy work happens in
// the worker; this path must stay fast enough for the platform's
// webhook deadline.
type WebhookHandler struct {
	log               *logger.Logger
	queue             redis.Queue
	sessions          store.SessionStore
	sender            TextSender
	verifyToken       string
	appSecret         string
	onboardingEnabled bool
}

// TextSender is the slice of the outbound messenger the webhook needs
// for the one synchronous message it ever sends (the greeting).
type TextSender interface {
	SendText(ctx context.Context, userID, text string)
}

func NewWebhookHandler(
	log *logger.Logger,
	queue redis.Queue,
	sessions store.SessionStore,
	sender TextSender,
	verifyToken, appSecret string,
	onboardingEnabled bool,
) *WebhookHandler {
	return &WebhookHandler{
		log:               log.With("handler", "Webhook"),
		queue:             queue,
		sessions:          sessions,
		sender:            sender,
		verifyToken:       verifyToken,
		appSecret:         appSecret,
		onboardingEnabled: onboardingEnabled,
	}
}

// Verify answers the platform's subscription handshake.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.String(http.StatusForbidden, "Forbidden")
}

// Receive validates the signature, parses the batch and enqueues jobs.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	if !h.validSignature(c.GetHeader("X-Hub-Signature-256"), body) {
		h.log.Warn("webhook signature verification failed")
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	var payload types.WebhookBody
	if err := json.Unmarshal(body, &payload); err != nil {
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}
	if payload.Object != "page" {
		c.String(http.StatusNotFound, "Not Found")
		return
	}

	ctx := c.Request.Context()
	for _, entry := range payload.Entry {
		for _, event := range entry.Messaging {
			job := h.buildJob(event)

			if job.Intent == types.IntentMenuFreeEntry && h.onboardingEnabled {
				h.maybeGreet(c, job.UserID)
			}

			if err := h.queue.Enqueue(ctx, job); err != nil {
				// Enqueue failure means the event is lost unless the
				// platform redelivers; signal it so it does.
				h.log.Error("enqueue failed", "event_id", job.EventID, "error", err)
				c.String(http.StatusInternalServerError, "Internal Server Error")
				return
			}
		}
	}

	c.String(http.StatusOK, "EVENT_RECEIVED")
}

func (h *WebhookHandler) buildJob(event types.MessagingEvent) types.Job {
	eventID := ""
	text := ""
	switch {
	case event.Message != nil:
		eventID = event.Message.MID
		text = event.Message.Text
	case event.Postback != nil:
		eventID = event.Postback.MID
		text = event.Postback.Payload
	}
	if eventID == "" {
		eventID = "evt_" + uuid.NewString()
	}

	return types.Job{
		UserID:    event.Sender.ID,
		EventID:   eventID,
		Intent:    DetectIntent(event),
		ImageURL:  ImageURL(event),
		Text:      text,
		Timestamp: event.Timestamp,
	}
}

// maybeGreet sends the one-time greeting on first free-menu entry.
func (h *WebhookHandler) maybeGreet(c *gin.Context, userID string) {
	ctx := c.Request.Context()
	sess, err := h.sessions.Get(ctx, userID)
	if err != nil {
		h.log.Warn("session lookup failed", "user_id", userID, "error", err)
		return
	}
	if sess.HasSeenGreeting {
		return
	}
	h.sender.SendText(ctx, userID, greetingText)
	seen := true
	if _, err := h.sessions.Update(ctx, userID, types.SessionPatch{HasSeenGreeting: &seen}); err != nil {
		h.log.Warn("greeting flag update failed", "user_id", userID, "error", err)
	}
}

func (h *WebhookHandler) validSignature(header string, body []byte) bool {
	if h.appSecret == "" {
		// No secret configured (local development): accept.
		return true
	}
	parts := strings.SplitN(header, "=", 2)
	if len(parts) != 2 || parts[0] != "sha256" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(h.appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(parts[1]))
}
