//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_store.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"pocket-chat/domain"
	"pocket-chat/errors"
)

// rosterKey is the single key the whole roster blob lives under.
const rosterKey = "roster"

type IUserStore interface {
	FetchAll() []domain.User
	FetchByID(id uuid.UUID) (domain.User, bool)
	SaveAll(users []domain.User) error
	SaveChatFor(user domain.User) error
}

// UserStore persists the full roster of users as one JSON blob in
// BadgerDB. Writes are whole-collection overwrites, last writer wins;
// acceptable because a single session owns all mutations.
type UserStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserStore(db *badger.DB, log *slog.Logger) *UserStore {
	return &UserStore{db: db, log: log}
}

// FetchAll decodes the persisted roster. An absent or undecodable blob
// yields an empty roster rather than an error: a fresh install and a
// corrupted one look the same to callers, only the logs differ.
func (s *UserStore) FetchAll() []domain.User {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(rosterKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		s.log.Debug("No roster in store", "err", err)
		return nil
	}

	var stored []storedUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn("Roster blob is undecodable, treating as empty", "err", err)
		return nil
	}

	users := make([]domain.User, 0, len(stored))
	for _, su := range stored {
		user, err := toUser(su)
		if err != nil {
			s.log.Warn("Roster blob is undecodable, treating as empty", "err", err)
			return nil
		}
		users = append(users, user)
	}
	return users
}

// FetchByID is a linear scan over the roster; a miss is not an error.
func (s *UserStore) FetchByID(id uuid.UUID) (domain.User, bool) {
	return lo.Find(s.FetchAll(), func(u domain.User) bool {
		return u.ID == id
	})
}

// SaveAll serializes the given users and overwrites the roster blob
// unconditionally.
func (s *UserStore) SaveAll(users []domain.User) error {
	stored := lo.Map(users, func(u domain.User, _ int) storedUser {
		return fromUser(u)
	})
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(rosterKey), data)
	})
	if err != nil {
		return fmt.Errorf("writing roster: %w", err)
	}
	return nil
}

// SaveChatFor replaces the chat of the roster entry matching user.ID
// and writes the roster back. When no entry matches, the roster is
// still written unchanged and ErrUserNotInRoster is returned; callers
// decide whether that matters to them.
func (s *UserStore) SaveChatFor(user domain.User) error {
	users := s.FetchAll()
	_, index, found := lo.FindIndexOf(users, func(u domain.User) bool {
		return u.ID == user.ID
	})
	if found {
		users[index].UserChat = user.UserChat
	} else {
		s.log.Warn("User not in roster, chat not persisted", "username", user.Username)
	}
	if err := s.SaveAll(users); err != nil {
		return err
	}
	if !found {
		return errors.ErrUserNotInRoster
	}
	return nil
}
