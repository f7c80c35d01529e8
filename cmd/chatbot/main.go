package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SubhamMahanty05/Chatbot/internal/cli"
	"github.com/SubhamMahanty05/Chatbot/internal/config"
)

func main() {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "chatbot",
		Short: "Chatbot - a conversational agent with hybrid sentiment analysis",
		Long: `Chatbot is a command-line conversational agent that classifies the
emotional tone of what you type and replies accordingly.

It can:
  • Score each message with a hybrid lexicon + rule sentiment engine
  • Remember your name, tone preference, and discussed topics across sessions
  • Replay your previous conversation on request
  • Report a session-level sentiment summary and trend when you leave`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if configDir != "" {
				config.SetConfigDir(configDir)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return cli.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ./config)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Println(cfg.String())

			path, _ := config.ConfigPath()
			fmt.Printf("\nConfig file path: %s\n", path)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chatbot v%s\n", cli.Version)
		},
	}

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
