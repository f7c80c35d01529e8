package memory

import (
	"encoding/json"
	"fmt"
	"os"
)

// Speaker values for utterances.
const (
	SpeakerUser = "user"
	SpeakerBot  = "bot"
)

// Utterance is one immutable turn of a session history. Only user turns
// carry sentiment fields.
type Utterance struct {
	Speaker        string   `json:"speaker"`
	Text           string   `json:"text"`
	SentimentLabel string   `json:"sentiment_label,omitempty"`
	SentimentScore *float64 `json:"sentiment_score,omitempty"`
}

// NewUserUtterance builds a user turn with its sentiment.
func NewUserUtterance(text, label string, score float64) Utterance {
	return Utterance{
		Speaker:        SpeakerUser,
		Text:           text,
		SentimentLabel: label,
		SentimentScore: &score,
	}
}

// NewBotUtterance builds a bot turn.
func NewBotUtterance(text string) Utterance {
	return Utterance{Speaker: SpeakerBot, Text: text}
}

// Score returns the sentiment score, or 0 for turns without one.
func (u Utterance) Score() float64 {
	if u.SentimentScore == nil {
		return 0
	}
	return *u.SentimentScore
}

// Session is one finished run: a timestamp plus its ordered history.
// Appended once per run and never mutated afterward.
type Session struct {
	Timestamp string      `json:"timestamp"`
	History   []Utterance `json:"history"`
}

// SessionLog is the append-only cross-run session history. Each run reads
// the whole array, appends one session, and rewrites the whole array.
type SessionLog struct {
	path     string
	sessions []Session
}

// OpenSessionLog loads the persisted session log. A missing or malformed
// file yields an empty log.
func OpenSessionLog(path string) *SessionLog {
	log := &SessionLog{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return log
	}
	if err := json.Unmarshal(data, &log.sessions); err != nil {
		log.sessions = nil
	}
	return log
}

// Len returns the number of stored prior sessions.
func (l *SessionLog) Len() int {
	return len(l.sessions)
}

// Last returns the most recent prior session.
func (l *SessionLog) Last() (Session, bool) {
	if len(l.sessions) == 0 {
		return Session{}, false
	}
	return l.sessions[len(l.sessions)-1], true
}

// Append adds a session and rewrites the log file atomically.
func (l *SessionLog) Append(s Session) error {
	l.sessions = append(l.sessions, s)

	data, err := json.MarshalIndent(l.sessions, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize session log: %w", err)
	}
	return atomicWrite(l.path, data)
}
