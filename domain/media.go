package domain

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MediaKind discriminates the three media payloads a chat bubble can carry.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"

	// MediaUnknown is only ever produced by sniffing, never stored.
	MediaUnknown MediaKind = "unknown"
)

// ChatMedia is an attachment payload. Data holds the raw bytes of the
// photo, video or audio clip so the whole conversation round-trips
// through a single persisted blob with no file lifecycle to manage.
type ChatMedia struct {
	ID   uuid.UUID
	Kind MediaKind
	Data []byte
}

func NewPhoto(data []byte) ChatMedia {
	return ChatMedia{ID: uuid.New(), Kind: MediaPhoto, Data: data}
}

func NewVideo(data []byte) ChatMedia {
	return ChatMedia{ID: uuid.New(), Kind: MediaVideo, Data: data}
}

func NewAudio(data []byte) ChatMedia {
	return ChatMedia{ID: uuid.New(), Kind: MediaAudio, Data: data}
}

// SniffMediaKind classifies raw bytes by their detected MIME type.
// Pickers declare what they hand over; this is the cross-check.
func SniffMediaKind(data []byte) MediaKind {
	mt := mimetype.Detect(data)
	switch {
	case strings.HasPrefix(mt.String(), "image/"):
		return MediaPhoto
	case strings.HasPrefix(mt.String(), "video/"):
		return MediaVideo
	case strings.HasPrefix(mt.String(), "audio/"):
		return MediaAudio
	default:
		return MediaUnknown
	}
}
