package handlers

import (
	"testing"

	"github.com/NarantsogtB/messenger-bot/internal/types"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		name  string
		event types.MessagingEvent
		want  types.Intent
	}{
		{
			name: "free menu postback",
			event: types.MessagingEvent{
				Postback: &types.InboundPostback{Payload: "MENU_FREE"},
			},
			want: types.IntentMenuFreeEntry,
		},
		{
			name: "paid menu postback",
			event: types.MessagingEvent{
				Postback: &types.InboundPostback{Payload: "MENU_PAID"},
			},
			want: types.IntentMenuPaidEntry,
		},
		{
			name: "unknown postback payload",
			event: types.MessagingEvent{
				Postback: &types.InboundPostback{Payload: "SOMETHING_ELSE"},
			},
			want: types.IntentUnknown,
		},
		{
			name: "image attachment",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{
					Attachments: []types.Attachment{{Type: "image", Payload: types.AttachmentPayload{URL: "https://cdn/x.jpg"}}},
				},
			},
			want: types.IntentImageMessage,
		},
		{
			name: "image wins over text",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{
					Text:        "look",
					Attachments: []types.Attachment{{Type: "image"}},
				},
			},
			want: types.IntentImageMessage,
		},
		{
			name: "non-image attachment with text",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{
					Text:        "hello",
					Attachments: []types.Attachment{{Type: "audio"}},
				},
			},
			want: types.IntentTextMessage,
		},
		{
			name: "menu keyword in text",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{Text: "MENU_PAID"},
			},
			want: types.IntentMenuPaidEntry,
		},
		{
			name: "plain text",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{Text: "сайн уу"},
			},
			want: types.IntentTextMessage,
		},
		{
			name:  "empty event",
			event: types.MessagingEvent{},
			want:  types.IntentUnknown,
		},
		{
			name: "message with neither text nor attachments",
			event: types.MessagingEvent{
				Message: &types.InboundMessage{},
			},
			want: types.IntentUnknown,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetectIntent(c.event); got != c.want {
				t.Fatalf("DetectIntent = %q, want %q", got, c.want)
			}
		})
	}
}

func TestImageURL(t *testing.T) {
	event := types.MessagingEvent{
		Message: &types.InboundMessage{
			Attachments: []types.Attachment{
				{Type: "audio", Payload: types.AttachmentPayload{URL: "https://cdn/a.mp3"}},
				{Type: "image", Payload: types.AttachmentPayload{URL: "https://cdn/x.jpg"}},
				{Type: "image", Payload: types.AttachmentPayload{URL: "https://cdn/y.jpg"}},
			},
		},
	}
	if got := ImageURL(event); got != "https://cdn/x.jpg" {
		t.Fatalf("expected first image URL, got %q", got)
	}
	if got := ImageURL(types.MessagingEvent{}); got != "" {
		t.Fatalf("expected empty URL, got %q", got)
	}
}
