package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"mall-backend/internal/chat/intent"
	"mall-backend/internal/model"
)

// Content part types accepted on the wire.
const (
	PartText     = "text"
	PartImageURL = "image_url"
)

// ContentPart is one element of a multimodal message.
type ContentPart struct {
	Type     string // PartText or PartImageURL
	Text     string // set when Type == PartText
	ImageURL string // set when Type == PartImageURL
}

// MessageContent is the tagged union behind a chat message body: either a
// plain string or a list of text/image parts. It is normalized at the wire
// boundary; core logic only ever consumes the flattened text.
type MessageContent struct {
	parts  []ContentPart
	plain  bool
	source string
}

// TextContent builds a plain-string content value.
func TextContent(text string) MessageContent {
	return MessageContent{
		parts:  []ContentPart{{Type: PartText, Text: text}},
		plain:  true,
		source: text,
	}
}

// UnmarshalJSON accepts either a JSON string or an array of
// {type:"text",text} / {type:"image_url",image_url:{url}} objects.
func (m *MessageContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = TextContent(s)
		return nil
	}

	var raw []struct {
		Type     string `json:"type"`
		Text     string `json:"text"`
		ImageURL struct {
			URL string `json:"url"`
		} `json:"image_url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content must be a string or a list of parts: %w", err)
	}

	parts := make([]ContentPart, 0, len(raw))
	for _, r := range raw {
		switch r.Type {
		case PartText:
			parts = append(parts, ContentPart{Type: PartText, Text: r.Text})
		case PartImageURL:
			parts = append(parts, ContentPart{Type: PartImageURL, ImageURL: r.ImageURL.URL})
		default:
			return fmt.Errorf("unknown content part type %q", r.Type)
		}
	}

	*m = MessageContent{parts: parts}
	return nil
}

// FlattenText joins all textual parts; image parts contribute nothing.
func (m MessageContent) FlattenText() string {
	if m.plain {
		return m.source
	}
	var b strings.Builder
	for _, p := range m.parts {
		if p.Type == PartText {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// Storable returns the persistence form: the original string for plain
// content, otherwise a JSON array preserving the structured parts.
func (m MessageContent) Storable() string {
	if m.plain {
		return m.source
	}

	type storedPart struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	stored := make([]storedPart, 0, len(m.parts))
	for _, p := range m.parts {
		switch p.Type {
		case PartText:
			stored = append(stored, storedPart{Type: PartText, Value: p.Text})
		case PartImageURL:
			stored = append(stored, storedPart{Type: PartImageURL, Value: p.ImageURL})
		}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return m.FlattenText()
	}
	return string(data)
}

// IncomingMessage is one role-tagged turn from the request payload.
type IncomingMessage struct {
	Role    string
	Content MessageContent
}

// --- UseCase Inputs ---

type ChatInput struct {
	Model    string
	Messages []IncomingMessage
}

type SaveMessageInput struct {
	Role      string
	Content   string
	Timestamp int64
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Reply    model.AIMessage
	Products []model.Product
	Intent   intent.Intent
}

type ReloadOutput struct {
	VocabularySize int
}
