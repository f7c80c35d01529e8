// Package cli runs the interactive chat loop and the end-of-session report.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/SubhamMahanty05/Chatbot/internal/bot"
	"github.com/SubhamMahanty05/Chatbot/internal/config"
	"github.com/SubhamMahanty05/Chatbot/internal/llm"
	"github.com/SubhamMahanty05/Chatbot/internal/logger"
	"github.com/SubhamMahanty05/Chatbot/internal/memory"
)

const (
	Version = "0.1.0"

	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// Run starts the interactive chat session and blocks until it ends.
func Run(cfg *config.Config) error {
	if err := logger.Init(logger.Config{
		LogDir: config.LogDir(),
		Level:  logger.INFO,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	printWelcome()

	client := llm.New(
		cfg.Model.APIKey,
		cfg.Model.BaseURL,
		cfg.Model.Model,
		cfg.Model.Temperature,
		cfg.Model.MaxTokens,
	)
	if !client.Available() {
		fmt.Printf("%sNo API key configured — replies will use the built-in generator.%s\n\n", colorYellow, colorReset)
	}

	state := memory.LoadState(cfg.StatePath())
	sessions := memory.OpenSessionLog(cfg.SessionsPath())

	archive, err := memory.OpenArchive(cfg.ArchivePath())
	if err != nil {
		logger.Warn("transcript archive unavailable: %v", err)
		archive = nil
	} else {
		defer archive.Close()
	}

	chatbot, err := bot.New(cfg, client, state, sessions)
	if err != nil {
		return fmt.Errorf("failed to initialize chatbot: %w", err)
	}

	if err := runLoop(chatbot, archive); err != nil {
		return err
	}

	printSessionReport(chatbot)
	saveSession(chatbot, archive)
	return nil
}

func printWelcome() {
	fmt.Printf("\n%s=== Chatbot with Hybrid Sentiment (v%s) ===%s\n", colorCyan, Version, colorReset)
	fmt.Printf("%sType 'exit' or 'quit' to finish, /help for commands.%s\n\n", colorGray, colorReset)
}

// historyFilePath returns the readline history file path.
func historyFilePath() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

// runLoop reads messages until exit/quit or EOF. One message is processed
// to completion before the next is accepted.
func runLoop(chatbot *bot.Chatbot, archive *memory.Archive) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            fmt.Sprintf("%sYou: %s", colorGreen, colorReset),
		HistoryFile:       historyFilePath(),
		HistoryLimit:      1000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	ctx := context.Background()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Printf("\n%sType 'exit' to finish the session%s\n", colorYellow, colorReset)
				continue
			}
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		lowered := strings.ToLower(input)
		if lowered == "exit" || lowered == "quit" {
			return nil
		}

		if strings.HasPrefix(input, "/") {
			if handleCommand(input, archive) {
				continue
			}
			return nil // /exit
		}

		reply, label, score := chatbot.Handle(ctx, input)
		fmt.Printf("→ Sentiment: %s (%+.3f)\n", label, score)
		fmt.Printf("%sBot:%s %s\n\n", colorBlue, colorReset, reply)
	}
}

// printSessionReport prints the tier-2 breakdown, trend, ASCII chart, and
// the final weighted summary.
func printSessionReport(chatbot *bot.Chatbot) {
	history := chatbot.History()

	fmt.Println("\n=========== SENTIMENT SUMMARY ===========")

	fmt.Println("=== 📌 Statement-Level Sentiment (Tier 2) ===")
	tier2 := bot.Tier2Lines(history)
	if len(tier2) == 0 {
		fmt.Println("No messages.")
	}
	for _, line := range tier2 {
		fmt.Println(line)
	}

	fmt.Println("\nTrend:", bot.Trend(history))
	fmt.Println()

	fmt.Println("=== 📈 ASCII Sentiment Trend ===")
	chart := bot.TrendChart(history)
	if len(chart) == 0 {
		fmt.Println("No data.")
	}
	for _, line := range chart {
		fmt.Println(line)
	}

	summary := bot.Summarize(history)
	tail := summary.Explanation
	if i := strings.LastIndex(tail, "\n"); i >= 0 {
		tail = tail[i+1:]
	}

	fmt.Println("===== Final Output =====")
	fmt.Printf("Overall conversation sentiment: %s – %s\n", summary.Overall, tail)
	fmt.Printf("Average Score: %+.3f\n", summary.Average)
}

// saveSession persists the memory record, session log, text transcript, and
// the searchable archive. Write failures are the one unrecovered failure
// mode; they are reported but do not abort the remaining writes.
func saveSession(chatbot *bot.Chatbot, archive *memory.Archive) {
	if err := chatbot.SaveTranscript(); err != nil {
		fmt.Printf("%s❌ Failed to write chat log: %v%s\n", colorRed, err, colorReset)
	}
	if err := chatbot.SavePersistentMemory(); err != nil {
		fmt.Printf("%s❌ Failed to save memory: %v%s\n", colorRed, err, colorReset)
	}
	if archive != nil {
		if _, err := archive.SaveSession(chatbot.StartedAt(), chatbot.History()); err != nil {
			logger.Warn("failed to archive session: %v", err)
		}
	}

	fmt.Println("\n💾 Chat saved.")
}
