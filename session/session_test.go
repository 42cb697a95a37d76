package session

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pocket-chat/domain"
	"pocket-chat/mocks"
	"pocket-chat/moderation"
	"pocket-chat/repositories"
)

func newStore(t *testing.T) *repositories.UserStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewUserStore(db, slog.Default())
}

func seedUser(t *testing.T, store *repositories.UserStore, username string) domain.User {
	t.Helper()
	user, err := domain.NewUser(username, []byte{0x1})
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(append(store.FetchAll(), user)))
	return user
}

func Test_Append_Preserves_Order(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()

	texts := []string{"one", "two", "three", "four", "five"}
	for _, text := range texts {
		chatSession.SendText(text)
	}

	persisted, ok := store.FetchByID(user.ID)
	req.True(ok)
	req.NotNil(persisted.UserChat)

	got := lo.Map(persisted.UserChat.Messages, func(m domain.ChatMessage, _ int) string {
		text, _ := m.Text()
		return text
	})
	req.Equal(texts, got)
}

func Test_Append_Creates_Chat_Lazily(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()
	req.Nil(chatSession.User().UserChat)

	chatSession.SendText("hi")
	req.NotNil(chatSession.User().UserChat)
}

func Test_Load_Overwrites_InMemory_State(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	first := NewChatSession(store, slog.Default(), user)
	first.Load()
	first.SendText("persisted before reopen")

	// A fresh session starts from the stale roster value and must pick
	// up the persisted chat wholesale on Load.
	second := NewChatSession(store, slog.Default(), user)
	second.Load()
	req.Len(second.Messages(), 1)
	text, _ := second.Messages()[0].Text()
	req.Equal("persisted before reopen", text)
}

func Test_Load_Miss_Leaves_State_Untouched(t *testing.T) {
	req := require.New(t)
	store := newStore(t)

	user, err := domain.NewUser("Ghost", nil)
	req.NoError(err)

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()
	req.Nil(chatSession.User().UserChat)
}

func Test_Append_Keeps_InMemory_View_On_Save_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockIUserStore(ctrl)
	mockStore.EXPECT().SaveChatFor(gomock.Any()).Return(fmt.Errorf("disk full")).Times(2)

	user, err := domain.NewUser("Nick Cave", nil)
	req.NoError(err)

	chatSession := NewChatSession(mockStore, slog.Default(), user)
	chatSession.SendText("kept in memory")
	chatSession.SendText("also kept")

	// Documented drift: the visible conversation runs ahead of disk
	req.Len(chatSession.Messages(), 2)
}

func Test_SendText_Passes_Through_Moderation(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	req.NoError(err)

	chatSession := NewChatSession(store, slog.Default(), user).WithModerator(moderator)
	message := chatSession.SendText("release the badger")

	text, _ := message.Text()
	req.Equal("release the ******", text)
}

func Test_Send_Every_Kind(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()

	chatSession.SendText("hi")
	chatSession.SendPhoto([]byte("\x89PNG\r\n\x1a\n"))
	chatSession.SendVideo([]byte{0x00, 0x00, 0x00, 0x18})
	chatSession.SendAudio([]byte("ID3"))
	chatSession.SendContact([]byte("BEGIN:VCARD\nEND:VCARD"))
	chatSession.SendLocation(41.03, 28.98)

	persisted, ok := store.FetchByID(user.ID)
	req.True(ok)

	kinds := lo.Map(persisted.UserChat.Messages, func(m domain.ChatMessage, _ int) domain.MessageKind {
		return m.Content.Kind()
	})
	req.Equal([]domain.MessageKind{
		domain.KindText,
		domain.KindMedia, domain.KindMedia, domain.KindMedia,
		domain.KindContact,
		domain.KindLocation,
	}, kinds)

	for _, m := range persisted.UserChat.Messages {
		req.False(m.IsIncoming)
	}
}

func Test_User_Snapshot_Does_Not_Alias_Session_State(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()
	chatSession.SendText("hi")

	snapshot := chatSession.User()
	snapshot.UserChat.Messages = append(snapshot.UserChat.Messages,
		domain.NewTextMessage("smuggled past the mutex", true))
	snapshot.UserChat.Messages[0] = domain.NewTextMessage("rewritten", false)

	messages := chatSession.Messages()
	req.Len(messages, 1)
	text, _ := messages[0].Text()
	req.Equal("hi", text)
}

// The seeded-roster scenario: a text then a photo, both persisted in
// order with the photo carrying its discriminant.
func Test_EndToEnd_Conversation(t *testing.T) {
	req := require.New(t)
	store := newStore(t)
	user := seedUser(t, store, "Nick Cave")

	chatSession := NewChatSession(store, slog.Default(), user)
	chatSession.Load()

	chatSession.SendText("hi")

	persisted, ok := store.FetchByID(user.ID)
	req.True(ok)
	req.Len(persisted.UserChat.Messages, 1)
	text, _ := persisted.UserChat.Messages[0].Text()
	req.Equal("hi", text)
	req.False(persisted.UserChat.Messages[0].IsIncoming)

	chatSession.SendPhoto([]byte{0x89, 0x50, 0x4e, 0x47})

	persisted, ok = store.FetchByID(user.ID)
	req.True(ok)
	req.Len(persisted.UserChat.Messages, 2)
	media, isMedia := persisted.UserChat.Messages[1].Content.(domain.MediaContent)
	req.True(isMedia)
	req.Equal(domain.MediaPhoto, media.Media.Kind)
}
