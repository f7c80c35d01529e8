package cli

import (
	"fmt"
	"strings"

	"github.com/SubhamMahanty05/Chatbot/internal/config"
	"github.com/SubhamMahanty05/Chatbot/internal/memory"
)

const (
	recallLimit   = 10
	sessionsLimit = 10
)

// handleCommand handles built-in slash commands. Returns true to continue
// the loop, false to exit.
func handleCommand(cmd string, archive *memory.Archive) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true
	}

	switch strings.ToLower(parts[0]) {
	case "/help":
		printHelp()
		return true

	case "/config":
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s❌ Failed to load config: %v%s\n", colorRed, err, colorReset)
		} else {
			fmt.Println(cfg.String())
		}
		return true

	case "/recall":
		if len(parts) < 2 {
			fmt.Println("Usage: /recall <keyword>")
			return true
		}
		printRecall(archive, strings.Join(parts[1:], " "))
		return true

	case "/sessions":
		printSessions(archive)
		return true

	case "/exit", "/quit", "/q":
		return false

	default:
		fmt.Printf("Unknown command: %s (try /help)\n", parts[0])
		return true
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /help              Show this help
  /config            Show current configuration
  /recall <keyword>  Search archived conversations for a keyword
  /sessions          List archived sessions
  /exit              End the session (same as 'exit' or 'quit')`)
}

func printRecall(archive *memory.Archive, keyword string) {
	if archive == nil {
		fmt.Println("Transcript archive is unavailable.")
		return
	}

	matches, err := archive.Search(keyword, recallLimit)
	if err != nil {
		fmt.Printf("%s❌ Search failed: %v%s\n", colorRed, err, colorReset)
		return
	}
	if len(matches) == 0 {
		fmt.Printf("No archived messages match %q.\n", keyword)
		return
	}

	for _, m := range matches {
		if m.Speaker == memory.SpeakerUser && m.Label != "" {
			fmt.Printf("[%s] %s: %s (%s %+.3f)\n",
				m.CreatedAt.Format("2006-01-02"), m.Speaker, m.Text, m.Label, m.Score)
		} else {
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02"), m.Speaker, m.Text)
		}
	}
}

func printSessions(archive *memory.Archive) {
	if archive == nil {
		fmt.Println("Transcript archive is unavailable.")
		return
	}

	sessions, err := archive.RecentSessions(sessionsLimit)
	if err != nil {
		fmt.Printf("%s❌ Failed to list sessions: %v%s\n", colorRed, err, colorReset)
		return
	}
	if len(sessions) == 0 {
		fmt.Println("No archived sessions yet.")
		return
	}

	for _, s := range sessions {
		fmt.Printf("%s  %s  %d message(s)\n",
			s.ID[:8], s.StartedAt.Format("2006-01-02 15:04:05"), s.Messages)
	}
}
