// Package domain contains core concepts of the chat store.
// This file defines User and UserChat entities and their invariants.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// User is one conversation partner in the roster. ID is generated once
// and never changes; Username doubles as the de-duplication key when an
// entry is created from a picked contact.
type User struct {
	ID        uuid.UUID
	Username  string
	UserPhoto []byte
	UserChat  *UserChat
}

// UserChat is the ordered conversation owned by exactly one User.
// Message order is insertion order, oldest first.
type UserChat struct {
	ID       uuid.UUID
	Messages []ChatMessage
}

type usernameRules struct {
	Username string `validate:"required,max=64"`
}

// NewUser creates a roster entry with no chat yet. The chat appears
// lazily on the first message.
func NewUser(username string, photo []byte) (User, error) {
	if err := validate.Struct(usernameRules{Username: username}); err != nil {
		return User{}, err
	}
	return User{ID: uuid.New(), Username: username, UserPhoto: photo}, nil
}

// EnsureChat returns the user's chat, creating an empty one in place
// if the user has never exchanged a message.
func (u *User) EnsureChat() *UserChat {
	if u.UserChat == nil {
		u.UserChat = &UserChat{ID: uuid.New()}
	}
	return u.UserChat
}

// Append adds a message at the end of the conversation.
func (c *UserChat) Append(message ChatMessage) {
	c.Messages = append(c.Messages, message)
}
