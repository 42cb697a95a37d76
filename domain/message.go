// Package domain contains core concepts of the chat store.
// This file defines ChatMessage and its content union.
// Messages are immutable once constructed.
package domain

import (
	"github.com/google/uuid"
)

// MessageKind names the content variant carried by a ChatMessage.
type MessageKind string

const (
	KindText     MessageKind = "text"
	KindMedia    MessageKind = "media"
	KindContact  MessageKind = "contact"
	KindLocation MessageKind = "location"
)

// MessageContent is a sealed union: exactly one variant per message,
// enforced by construction. Only the types below implement it.
type MessageContent interface {
	Kind() MessageKind
	sealed()
}

type TextContent struct {
	Text string
}

// MediaContent wraps a photo, video or audio attachment.
type MediaContent struct {
	Media ChatMedia
}

// ContactContent carries an opaque serialized contact card (vCard bytes).
type ContactContent struct {
	Card []byte
}

type LocationContent struct {
	Lat float64
	Lon float64
}

func (TextContent) Kind() MessageKind     { return KindText }
func (MediaContent) Kind() MessageKind    { return KindMedia }
func (ContactContent) Kind() MessageKind  { return KindContact }
func (LocationContent) Kind() MessageKind { return KindLocation }

func (TextContent) sealed()     {}
func (MediaContent) sealed()    {}
func (ContactContent) sealed()  {}
func (LocationContent) sealed() {}

// ChatMessage represents one immutable chat event. IsIncoming is true
// for simulated received messages, false for locally authored ones.
// There is no exported zero-value path: every message goes through one
// of the per-kind constructors, so Content is never nil and never
// carries more than one variant.
type ChatMessage struct {
	ID         uuid.UUID
	IsIncoming bool
	Content    MessageContent
}

func NewTextMessage(text string, incoming bool) ChatMessage {
	return ChatMessage{ID: uuid.New(), IsIncoming: incoming, Content: TextContent{Text: text}}
}

func NewMediaMessage(media ChatMedia, incoming bool) ChatMessage {
	return ChatMessage{ID: uuid.New(), IsIncoming: incoming, Content: MediaContent{Media: media}}
}

func NewContactMessage(card []byte, incoming bool) ChatMessage {
	return ChatMessage{ID: uuid.New(), IsIncoming: incoming, Content: ContactContent{Card: card}}
}

func NewLocationMessage(lat, lon float64, incoming bool) ChatMessage {
	return ChatMessage{ID: uuid.New(), IsIncoming: incoming, Content: LocationContent{Lat: lat, Lon: lon}}
}

// Text returns the text payload, or false when the message is not textual.
// Convenience for moderation and indexing.
func (m ChatMessage) Text() (string, bool) {
	tc, ok := m.Content.(TextContent)
	if !ok {
		return "", false
	}
	return tc.Text, true
}
