package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"pocket-chat/domain"
)

// Stored forms of the roster entities. The JSON layout is load-bearing:
// any persisted conversation written by an earlier build must keep
// decoding, so field names and the media "kind" discriminants
// ("photo"|"video"|"audio") are fixed.

type storedUser struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	UserPhoto []byte      `json:"userPhoto"`
	UserChat  *storedChat `json:"userChat"`
}

type storedChat struct {
	ID       uuid.UUID       `json:"id"`
	Messages []storedMessage `json:"messages"`
}

// storedMessage flattens the content union into optional fields; the
// decoder enforces the exactly-one rule before anything reaches domain.
type storedMessage struct {
	ID         uuid.UUID       `json:"id"`
	IsIncoming bool            `json:"isIncoming"`
	Text       *string         `json:"text,omitempty"`
	Media      *storedMedia    `json:"media,omitempty"`
	Contact    *[]byte         `json:"contact,omitempty"`
	Location   *storedLocation `json:"location,omitempty"`
}

type storedMedia struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
	Data []byte    `json:"data"`
}

type storedLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func fromUser(user domain.User) storedUser {
	var chat *storedChat
	if user.UserChat != nil {
		chat = lo.ToPtr(fromChat(*user.UserChat))
	}
	return storedUser{
		ID:        user.ID,
		Username:  user.Username,
		UserPhoto: user.UserPhoto,
		UserChat:  chat,
	}
}

func fromChat(chat domain.UserChat) storedChat {
	return storedChat{
		ID: chat.ID,
		Messages: lo.Map(chat.Messages, func(m domain.ChatMessage, _ int) storedMessage {
			return fromMessage(m)
		}),
	}
}

func fromMessage(message domain.ChatMessage) storedMessage {
	stored := storedMessage{ID: message.ID, IsIncoming: message.IsIncoming}
	switch content := message.Content.(type) {
	case domain.TextContent:
		stored.Text = lo.ToPtr(content.Text)
	case domain.MediaContent:
		stored.Media = &storedMedia{
			ID:   content.Media.ID,
			Kind: string(content.Media.Kind),
			Data: content.Media.Data,
		}
	case domain.ContactContent:
		// A nil card must not collapse to JSON null: null decodes as an
		// absent field and the message would fail the exactly-one check.
		stored.Contact = lo.ToPtr(append([]byte{}, content.Card...))
	case domain.LocationContent:
		stored.Location = &storedLocation{Lat: content.Lat, Lon: content.Lon}
	}
	return stored
}

func toUser(stored storedUser) (domain.User, error) {
	user := domain.User{
		ID:        stored.ID,
		Username:  stored.Username,
		UserPhoto: stored.UserPhoto,
	}
	if stored.UserChat != nil {
		chat, err := toChat(*stored.UserChat)
		if err != nil {
			return domain.User{}, fmt.Errorf("user %s: %w", stored.ID, err)
		}
		user.UserChat = &chat
	}
	return user, nil
}

func toChat(stored storedChat) (domain.UserChat, error) {
	chat := domain.UserChat{ID: stored.ID}
	for _, sm := range stored.Messages {
		message, err := toMessage(sm)
		if err != nil {
			return domain.UserChat{}, err
		}
		chat.Messages = append(chat.Messages, message)
	}
	return chat, nil
}

func toMessage(stored storedMessage) (domain.ChatMessage, error) {
	var content domain.MessageContent
	populated := 0

	if stored.Text != nil {
		populated++
		content = domain.TextContent{Text: *stored.Text}
	}
	if stored.Media != nil {
		populated++
		media, err := toMedia(*stored.Media)
		if err != nil {
			return domain.ChatMessage{}, fmt.Errorf("message %s: %w", stored.ID, err)
		}
		content = domain.MediaContent{Media: media}
	}
	if stored.Contact != nil {
		populated++
		content = domain.ContactContent{Card: *stored.Contact}
	}
	if stored.Location != nil {
		populated++
		content = domain.LocationContent{Lat: stored.Location.Lat, Lon: stored.Location.Lon}
	}

	if populated != 1 {
		return domain.ChatMessage{}, fmt.Errorf("message %s: %d content fields populated, want exactly 1", stored.ID, populated)
	}
	return domain.ChatMessage{ID: stored.ID, IsIncoming: stored.IsIncoming, Content: content}, nil
}

func toMedia(stored storedMedia) (domain.ChatMedia, error) {
	kind := domain.MediaKind(stored.Kind)
	switch kind {
	case domain.MediaPhoto, domain.MediaVideo, domain.MediaAudio:
	default:
		return domain.ChatMedia{}, fmt.Errorf("media %s: unknown kind %q", stored.ID, stored.Kind)
	}
	return domain.ChatMedia{ID: stored.ID, Kind: kind, Data: stored.Data}, nil
}
