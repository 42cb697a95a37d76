package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"pocket-chat/moderation"
	"pocket-chat/repositories"
	"pocket-chat/runtime/workers"
	"pocket-chat/search"
	"pocket-chat/session"
)

// Demo avatars: enough bytes to be recognizable payloads, not real art.
var (
	avatarNick    = []byte("\x89PNG\r\n\x1a\nnick")
	avatarTanjiro = []byte("\x89PNG\r\n\x1a\ntanjiro")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the demo lifecycle, and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB blob store + Bluge message index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = blugeWriter.Close()
	}()

	// 3. Roster & Session
	store := repositories.NewUserStore(db, log)

	// Seed the demo conversation partners on first run; later runs find
	// them by username and reuse the persisted chats.
	active, err := session.EnsureRosterEntry(store, log, "Nick Cave", avatarNick)
	if err != nil {
		return fmt.Errorf("seeding roster: %w", err)
	}
	if _, err = session.EnsureRosterEntry(store, log, "Tanjiro Kamado", avatarTanjiro); err != nil {
		return fmt.Errorf("seeding roster: %w", err)
	}

	index := search.NewIndex(blugeWriter)
	chatSession := session.NewChatSession(store, log, active).WithIndex(index)

	if words := splitWords(config.CensoredWords); len(words) > 0 {
		mask, err := CharacterRune(config.CharReplacement)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(words, mask)
		if err != nil {
			return fmt.Errorf("building moderator: %w", err)
		}
		chatSession.WithModerator(moderator)
	}

	chatSession.Load()
	log.Info("Conversation loaded", "username", active.Username,
		"messages", len(chatSession.Messages()))

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Simulated incoming messages under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewIncomingFeed(log, chatSession, config.FeedInterval, config.FeedText))

	// 6. Interactive input: each line is a text send, /find searches.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "":
			case strings.HasPrefix(line, "/find "):
				terms := strings.TrimPrefix(line, "/find ")
				ids, err := index.Search(ctx, active.ID, terms, 10)
				if err != nil {
					log.Error("Search failed", "err", err)
					continue
				}
				log.Info("Search results", "terms", terms, "ids", ids)
			default:
				chatSession.SendText(line)
			}
		}
		stop()
	}()

	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}

func splitWords(csv string) []string {
	var words []string
	for _, w := range strings.Split(csv, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}
