package types

// Intent classifies one inbound Messenger event. Detection is structural
// (postback payloads and attachment types), never natural-language.
type Intent string

const (
	IntentTextMessage   Intent = "TEXT_MESSAGE"
	IntentImageMessage  Intent = "IMAGE_MESSAGE"
	IntentMenuPaidEntry Intent = "MENU_PAID_ENTRY"
	IntentMenuFreeEntry Intent = "MENU_FREE_ENTRY"
	IntentUnknown       Intent = "UNKNOWN"
)

// Job is one unit of asynchronous work: a single inbound event, parsed
// at the webhook and consumed exactly once by the pipeline. Immutable
// after enqueue.
type Job struct {
	UserID    string `json:"userId"`
	EventID   string `json:"eventId"`
	Intent    Intent `json:"intent"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Text      string `json:"text,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Session is the per-user entitlement record. Updates use
// read-merge-write semantics; a missing session reads as the zero value
// with defaults applied, never as an error.
type Session struct {
	HasSeenGreeting bool   `json:"hasSeenGreeting"`
	IsPaid          bool   `json:"isPaid"`
	Gender          Gender `json:"gender,omitempty"`
}

// SessionPatch is a partial session update. Nil fields are left as-is.
type SessionPatch struct {
	HasSeenGreeting *bool
	IsPaid          *bool
	Gender          *Gender
}

// ChatState tracks the conversational quota. TurnsUsed only ever grows
// until the key is externally reset.
type ChatState struct {
	Enabled   bool `json:"enabled"`
	TurnsUsed int  `json:"turnsUsed"`
}

// Likelihood mirrors the Vision API likelihood scale.
type Likelihood string

const (
	LikelihoodUnknown      Likelihood = "UNKNOWN"
	LikelihoodVeryUnlikely Likelihood = "VERY_UNLIKELY"
	LikelihoodUnlikely     Likelihood = "UNLIKELY"
	LikelihoodPossible     Likelihood = "POSSIBLE"
	LikelihoodLikely       Likelihood = "LIKELY"
	LikelihoodVeryLikely   Likelihood = "VERY_LIKELY"
)

func (l Likelihood) Bad() bool {
	return l == LikelihoodLikely || l == LikelihoodVeryLikely
}

type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FaceMetadata is what the detection collaborator hands the pipeline.
// Consumed read-only by the quality gate and the tone classifier.
type FaceMetadata struct {
	BoundingBox            BoundingBox `json:"boundingBox"`
	TotalFaces             int         `json:"totalFaces"`
	BlurLikelihood         Likelihood  `json:"blurLikelihood"`
	UnderExposedLikelihood Likelihood  `json:"underExposedLikelihood"`
}

// Webhook payload shapes (Messenger Graph API).

type WebhookBody struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Messaging []MessagingEvent `json:"messaging"`
}

type MessagingEvent struct {
	Sender    Principal        `json:"sender"`
	Recipient Principal        `json:"recipient"`
	Timestamp int64            `json:"timestamp"`
	Message   *InboundMessage  `json:"message,omitempty"`
	Postback  *InboundPostback `json:"postback,omitempty"`
}

type Principal struct {
	ID string `json:"id"`
}

type InboundMessage struct {
	MID         string       `json:"mid"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

type AttachmentPayload struct {
	URL string `json:"url,omitempty"`
}

type InboundPostback struct {
	MID     string `json:"mid"`
	Payload string `json:"payload"`
	Title   string `json:"title"`
}

// ProcessResult summarizes one pipeline run for logging and tests.
type ProcessResult struct {
	OK        bool   `json:"ok"`
	Skipped   bool   `json:"skipped,omitempty"`
	Season    string `json:"season,omitempty"`
	ReplyText string `json:"replyText,omitempty"`
}
