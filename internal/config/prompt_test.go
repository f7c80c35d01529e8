package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPromptConfig(t *testing.T) {
	p := DefaultPromptConfig()

	if !strings.Contains(p.System, "helpful conversational assistant") {
		t.Errorf("System prompt = %q", p.System)
	}
	if len(p.ToneLines) != 3 {
		t.Errorf("Expected 3 tone lines, got %d", len(p.ToneLines))
	}
}

func TestToneLine(t *testing.T) {
	p := DefaultPromptConfig()

	if got := p.ToneLine("formal"); !strings.Contains(got, "No emojis") {
		t.Errorf("ToneLine(formal) = %q", got)
	}

	// Unknown tones fall back to neutral.
	if got := p.ToneLine("sarcastic"); got != p.ToneLines["neutral"] {
		t.Errorf("ToneLine(sarcastic) = %q", got)
	}
}

func TestLoadPromptConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configTestDir := filepath.Join(tmpDir, "config")
	SetConfigDir(configTestDir)

	// No prompts.yaml: defaults apply.
	p, err := LoadPromptConfig()
	if err != nil {
		t.Fatalf("Failed to load prompt config: %v", err)
	}
	if p.System != DefaultPromptConfig().System {
		t.Errorf("Expected default system prompt, got %q", p.System)
	}

	// A file overrides only the keys it sets.
	if err := os.MkdirAll(configTestDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "system: \"Custom system prompt.\\n\"\n"
	if err := os.WriteFile(filepath.Join(configTestDir, "prompts.yaml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	p, err = LoadPromptConfig()
	if err != nil {
		t.Fatalf("Failed to load prompt config: %v", err)
	}
	if p.System != "Custom system prompt.\n" {
		t.Errorf("System = %q", p.System)
	}
	if p.ToneLine("formal") != DefaultPromptConfig().ToneLines["formal"] {
		t.Error("Unset keys should keep their defaults")
	}
}
