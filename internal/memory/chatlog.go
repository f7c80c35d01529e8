package memory

import (
	"fmt"
	"os"
	"strings"
)

// AppendTranscript appends a finished session to the human-readable chat
// log, delimited by a "=== New Chat ===" header.
func AppendTranscript(path string, history []Utterance) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open chat log: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("\n=== New Chat ===\n")
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(m.Speaker), m.Text)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write chat log: %w", err)
	}
	return nil
}
