package session

import (
	"log/slog"

	"github.com/samber/lo"

	"pocket-chat/domain"
	"pocket-chat/repositories"
)

// EnsureRosterEntry returns the roster entry for username, creating and
// persisting one when the name is unseen. Username is the
// de-duplication key here because that is all a picked contact gives
// us; two distinct people sharing a display name collapse into one
// conversation, as in the original app.
func EnsureRosterEntry(store repositories.IUserStore, log *slog.Logger, username string, photo []byte) (domain.User, error) {
	users := store.FetchAll()
	if existing, ok := lo.Find(users, func(u domain.User) bool {
		return u.Username == username
	}); ok {
		return existing, nil
	}

	user, err := domain.NewUser(username, photo)
	if err != nil {
		return domain.User{}, err
	}
	if err := store.SaveAll(append(users, user)); err != nil {
		return domain.User{}, err
	}
	log.Info("Added user to roster", "username", username)
	return user, nil
}
