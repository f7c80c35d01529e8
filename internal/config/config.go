// Package config loads the application configuration: a yaml file merged
// over defaults, with the API key supplied via the .secrets file or the
// environment when the yaml omits it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// configDir is the configuration directory path.
	// Can be set via SetConfigDir before loading config.
	configDir     string
	configDirInit bool
)

// SetConfigDir sets a custom configuration directory.
// Must be called before any config loading functions.
func SetConfigDir(dir string) {
	configDir = dir
	configDirInit = true
}

// GetConfigDir returns the configuration directory.
// Priority: 1. Manually set via SetConfigDir, 2. ./config in current directory.
func GetConfigDir() string {
	if !configDirInit {
		cwd, err := os.Getwd()
		if err == nil {
			configDir = filepath.Join(cwd, "config")
		}
		configDirInit = true
	}
	return configDir
}

// Config application configuration structure
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Memory MemoryConfig `yaml:"memory"`
}

// ModelConfig completion endpoint configuration
type ModelConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// MemoryConfig persistence paths and context size
type MemoryConfig struct {
	DataDir         string `yaml:"data_dir"`
	ChatLogPath     string `yaml:"chat_log_path"`
	ContextMessages int    `yaml:"context_messages"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			APIKey:      "",
			BaseURL:     "https://api.groq.com/openai",
			Model:       "llama-3.1-8b-instant",
			Temperature: 0.7,
			MaxTokens:   200,
		},
		Memory: MemoryConfig{
			DataDir:         "memory",
			ChatLogPath:     "chat_log.txt",
			ContextMessages: 4,
		},
	}
}

// StatePath returns the persisted user memory file path.
func (c *Config) StatePath() string {
	return filepath.Join(c.Memory.DataDir, "user_memory.json")
}

// SessionsPath returns the persisted session log file path.
func (c *Config) SessionsPath() string {
	return filepath.Join(c.Memory.DataDir, "chat_sessions.json")
}

// ArchivePath returns the transcript archive database path.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.Memory.DataDir, "archive.db")
}

// ConfigDir returns the configuration directory path
func ConfigDir() (string, error) {
	dir := GetConfigDir()
	if dir == "" {
		return "", fmt.Errorf("failed to determine config directory")
	}
	return dir, nil
}

// LogDir returns the log directory path
func LogDir() string {
	dir := GetConfigDir()
	if dir == "" {
		return "logs"
	}
	return filepath.Join(dir, "logs")
}

// ConfigPath returns the configuration file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads configuration from file and merges with secrets
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Config file doesn't exist yet: create the default one
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.mergeSecrets()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use default values as base
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.mergeSecrets()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeSecrets fills the API key from the .secrets file or environment when
// the yaml leaves it empty.
func (c *Config) mergeSecrets() {
	if c.Model.APIKey != "" {
		return
	}

	secrets, _ := LoadSecrets()
	if secrets != nil {
		if apiKey := secrets.GetGroqAPIKey(); apiKey != "" {
			c.Model.APIKey = apiKey
			return
		}
	}

	if apiKey := os.Getenv("GROQ_API_KEY"); apiKey != "" {
		c.Model.APIKey = apiKey
	}
}

// Save saves configuration to file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	content := "# Chatbot Configuration File\n\n" + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Model.BaseURL == "" {
		return fmt.Errorf("config error: model.base_url cannot be empty")
	}
	if c.Model.Model == "" {
		return fmt.Errorf("config error: model.model cannot be empty")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("config error: model.temperature must be between 0 and 2")
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("config error: model.max_tokens must be greater than 0")
	}

	if c.Memory.DataDir == "" {
		return fmt.Errorf("config error: memory.data_dir cannot be empty")
	}
	if c.Memory.ChatLogPath == "" {
		return fmt.Errorf("config error: memory.chat_log_path cannot be empty")
	}
	if c.Memory.ContextMessages <= 0 {
		return fmt.Errorf("config error: memory.context_messages must be greater than 0")
	}

	return nil
}

// IsAPIKeyConfigured checks if API key is configured
func (c *Config) IsAPIKeyConfigured() bool {
	return c.Model.APIKey != ""
}

// String returns string representation of config (hides sensitive info)
func (c *Config) String() string {
	return fmt.Sprintf(`Chatbot Configuration:
  Model:
    API Key: %s
    Base URL: %s
    Model: %s
    Temperature: %.1f
    Max Tokens: %d
  Memory:
    Data Dir: %s
    Chat Log: %s
    Context Messages: %d`,
		redactAPIKey(c.Model.APIKey),
		c.Model.BaseURL,
		c.Model.Model,
		c.Model.Temperature,
		c.Model.MaxTokens,
		c.Memory.DataDir,
		c.Memory.ChatLogPath,
		c.Memory.ContextMessages,
	)
}

func redactAPIKey(value string) string {
	if value == "" {
		return "(not configured)"
	}
	if len(value) > 8 {
		return value[:8] + "..."
	}
	return "***"
}
