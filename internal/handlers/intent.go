package handlers

import "github.com/NarantsogtB/messenger-bot/internal/types"

const (
	payloadMenuFree = "MENU_FREE"
	payloadMenuPaid = "MENU_PAID"
)

// DetectIntent classifies one messaging event structurally: postback
// payloads first, then attachments, then plain text. Menu keywords in
// text exist so the flows can be driven without persistent-menu
// buttons.
func DetectIntent(event types.MessagingEvent) types.Intent {
	if event.Postback != nil {
		switch event.Postback.Payload {
		case payloadMenuFree:
			return types.IntentMenuFreeEntry
		case payloadMenuPaid:
			return types.IntentMenuPaidEntry
		default:
			return types.IntentUnknown
		}
	}

	if event.Message != nil {
		for _, a := range event.Message.Attachments {
			if a.Type == "image" {
				return types.IntentImageMessage
			}
		}
		if event.Message.Text != "" {
			switch event.Message.Text {
			case payloadMenuFree:
				return types.IntentMenuFreeEntry
			case payloadMenuPaid:
				return types.IntentMenuPaidEntry
			}
			return types.IntentTextMessage
		}
	}

	return types.IntentUnknown
}

// ImageURL returns the first image attachment URL, if any.
func ImageURL(event types.MessagingEvent) string {
	if event.Message == nil {
		return ""
	}
	for _, a := range event.Message.Attachments {
		if a.Type == "image" && a.Payload.URL != "" {
			return a.Payload.URL
		}
	}
	return ""
}
