package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PromptConfig holds the responder prompt templates. The tone line is picked
// by the stored tone preference; the sentiment line carries the detected
// label into the system prompt.
type PromptConfig struct {
	System        string            `yaml:"system"`
	ToneLines     map[string]string `yaml:"tone_lines"`
	SentimentLine string            `yaml:"sentiment_line"`
	ContextPrefix string            `yaml:"context_prefix"`
	UserSuffix    string            `yaml:"user_suffix"`
}

// DefaultPromptConfig returns the built-in prompt templates.
func DefaultPromptConfig() *PromptConfig {
	return &PromptConfig{
		System: "You are a helpful conversational assistant. " +
			"Respond in 1–3 sentences, warm and human but not overly emotional.\n",
		ToneLines: map[string]string{
			"casual":  "Tone: friendly casual. Emojis allowed but not excessive.\n",
			"formal":  "Tone: polite and formal. No emojis.\n",
			"neutral": "Tone: neutral-warm professional.\n",
		},
		SentimentLine: "Detected user sentiment: %s. Adjust empathy accordingly.\n",
		ContextPrefix: "Recent context: %s\n",
		UserSuffix:    "Reply directly. Do not mention sentiment or being an AI.\n",
	}
}

// PromptConfigPath returns the prompt config file path
func PromptConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prompts.yaml"), nil
}

// LoadPromptConfig loads prompt templates from file, falling back to the
// built-in defaults when no file exists.
func LoadPromptConfig() (*PromptConfig, error) {
	configPath, err := PromptConfigPath()
	if err != nil {
		return DefaultPromptConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultPromptConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt config: %w", err)
	}

	cfg := DefaultPromptConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse prompt config: %w", err)
	}

	return cfg, nil
}

// ToneLine returns the system prompt line for a tone preference.
func (p *PromptConfig) ToneLine(tone string) string {
	if line, ok := p.ToneLines[tone]; ok {
		return line
	}
	return p.ToneLines["neutral"]
}
