package workers

import (
	"context"
	"log/slog"
	"time"

	"pocket-chat/domain"
	"pocket-chat/session"
)

// IncomingFeed simulates the other side of the conversation: every
// interval it appends one incoming text message to the active session.
// It is an unauthenticated local-only simulation, not a real inbound
// channel.
type IncomingFeed struct {
	log      *slog.Logger
	session  *session.ChatSession
	interval time.Duration
	text     string
}

func NewIncomingFeed(log *slog.Logger, chatSession *session.ChatSession, interval time.Duration, text string) *IncomingFeed {
	return &IncomingFeed{log: log, session: chatSession, interval: interval, text: text}
}

func (f *IncomingFeed) Run(ctx context.Context) error {
	f.log.Info("Starting incoming message feed", "interval", f.interval)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			f.session.Receive(domain.NewTextMessage(f.text, true))
			f.log.Debug("Simulated incoming message appended")
		}
	}
}
