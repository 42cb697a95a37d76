package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/abadojack/whatlanggo"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/process"

	"pocket-chat/domain"
	"pocket-chat/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// VIEWER_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"VIEWER_COLOURS" default:"true"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening while the demo app holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Dump every conversation
	store := repositories.NewUserStore(db, slog.Default())
	users := store.FetchAll()
	if len(users) == 0 {
		fmt.Println("Roster is empty.")
		return
	}

	for _, user := range users {
		printHeader(config.Colours, user)
		if user.UserChat == nil {
			fmt.Println("  (no messages)")
			continue
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Direction", "Kind", "Detail", "Lang"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")

		for _, message := range user.UserChat.Messages {
			table.Append(row(message))
		}
		table.Render()
	}

	printSelfStats()
}

func printHeader(colours bool, user domain.User) {
	header := fmt.Sprintf("=== %s (%d avatar bytes) ===", user.Username, len(user.UserPhoto))
	if colours {
		color.Green.Println(header)
		return
	}
	fmt.Println(header)
}

func row(message domain.ChatMessage) []string {
	direction := "sent"
	if message.IsIncoming {
		direction = "received"
	}

	var detail, lang string
	switch content := message.Content.(type) {
	case domain.TextContent:
		detail = truncate(content.Text, 40)
		lang = whatlanggo.LangToString(whatlanggo.Detect(content.Text).Lang)
	case domain.MediaContent:
		detail = fmt.Sprintf("%s, %d bytes", content.Media.Kind, len(content.Media.Data))
	case domain.ContactContent:
		detail = fmt.Sprintf("card, %d bytes", len(content.Card))
	case domain.LocationContent:
		detail = fmt.Sprintf("%.5f, %.5f", content.Lat, content.Lon)
	}
	return []string{direction, string(message.Content.Kind()), detail, lang}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

func printSelfStats() {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}
	cpu, _ := p.CPUPercent()
	mem, _ := p.MemoryPercent()
	fmt.Printf("\nviewer stats: cpu=%.1f%% mem=%.1f%%\n", cpu, mem)
}
