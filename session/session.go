// Package session mediates message composition and append for the one
// user whose conversation is currently open. Every mutation funnels
// through ChatSession and is flushed to the store synchronously, so the
// persisted roster tracks the visible conversation.
package session

import (
	"log/slog"
	"sync"

	"pocket-chat/domain"
	"pocket-chat/moderation"
	"pocket-chat/repositories"
	"pocket-chat/search"
)

// ChatSession owns the working copy of the active user. The mutex
// serializes UI sends against the simulated-receipt feed: both paths go
// through Append, so a whole fetch-modify-save cycle can never overlap
// another and lose an update.
type ChatSession struct {
	mu    sync.Mutex
	store repositories.IUserStore
	log   *slog.Logger
	user  domain.User

	moderator *moderation.Moderator
	index     *search.Index
}

func NewChatSession(store repositories.IUserStore, log *slog.Logger, user domain.User) *ChatSession {
	return &ChatSession{store: store, log: log, user: user}
}

// WithModerator masks configured words in outgoing text.
func (s *ChatSession) WithModerator(m *moderation.Moderator) *ChatSession {
	s.moderator = m
	return s
}

// WithIndex makes text messages searchable as they are appended.
func (s *ChatSession) WithIndex(index *search.Index) *ChatSession {
	s.index = index
	return s
}

// Load replaces the in-memory chat with the persisted one. This is a
// full overwrite, not a merge; whatever the session held before is
// discarded. A lookup miss leaves the state untouched.
func (s *ChatSession) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	persisted, ok := s.store.FetchByID(s.user.ID)
	if !ok {
		s.log.Debug("Active user not persisted yet", "username", s.user.Username)
		return
	}
	s.user.UserChat = persisted.UserChat
}

// Append adds a message at the end of the conversation and flushes the
// roster. A failed flush keeps the in-memory append: the visible
// conversation may run ahead of disk, which is the documented
// best-effort contract.
func (s *ChatSession) Append(message domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.EnsureChat().Append(message)
	if err := s.store.SaveChatFor(s.user); err != nil {
		s.log.Error("Chat not persisted, in-memory view is ahead of disk", "err", err)
	}
	if s.index != nil {
		if err := s.index.IndexMessage(s.user.ID, message); err != nil {
			s.log.Error("Message not indexed", "err", err)
		}
	}
}

// SendText authors a text message, passing it through moderation first
// when a moderator is attached.
func (s *ChatSession) SendText(text string) domain.ChatMessage {
	if s.moderator != nil {
		text = s.moderator.Censor(text)
	}
	message := domain.NewTextMessage(text, false)
	s.Append(message)
	return message
}

func (s *ChatSession) SendPhoto(data []byte) domain.ChatMessage {
	return s.sendMedia(domain.NewPhoto(data))
}

func (s *ChatSession) SendVideo(data []byte) domain.ChatMessage {
	return s.sendMedia(domain.NewVideo(data))
}

func (s *ChatSession) SendAudio(data []byte) domain.ChatMessage {
	return s.sendMedia(domain.NewAudio(data))
}

func (s *ChatSession) sendMedia(media domain.ChatMedia) domain.ChatMessage {
	if sniffed := domain.SniffMediaKind(media.Data); sniffed != media.Kind {
		s.log.Warn("Media bytes do not look like their declared kind",
			"declared", media.Kind, "sniffed", sniffed)
	}
	message := domain.NewMediaMessage(media, false)
	s.Append(message)
	return message
}

// SendContact stores the picker's serialized card opaquely.
func (s *ChatSession) SendContact(card []byte) domain.ChatMessage {
	message := domain.NewContactMessage(card, false)
	s.Append(message)
	return message
}

func (s *ChatSession) SendLocation(lat, lon float64) domain.ChatMessage {
	message := domain.NewLocationMessage(lat, lon, false)
	s.Append(message)
	return message
}

// Receive appends a simulated incoming message. This is a local-only
// simulation, not a real inbound channel.
func (s *ChatSession) Receive(message domain.ChatMessage) {
	s.Append(message)
}

// Messages returns a copy of the conversation in insertion order.
func (s *ChatSession) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user.UserChat == nil {
		return nil
	}
	return append([]domain.ChatMessage(nil), s.user.UserChat.Messages...)
}

// User returns a snapshot of the active user. The chat is copied so
// callers cannot mutate the conversation behind the session's mutex.
func (s *ChatSession) User() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.user
	if s.user.UserChat != nil {
		chat := *s.user.UserChat
		chat.Messages = append([]domain.ChatMessage(nil), s.user.UserChat.Messages...)
		user.UserChat = &chat
	}
	return user
}
