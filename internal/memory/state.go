// Package memory holds the persistent conversational memory model: the
// cross-session user state record, the session history log, the plain-text
// transcript, and a searchable transcript archive.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/SubhamMahanty05/Chatbot/internal/sentiment"
)

// Tone preferences.
const (
	ToneNeutral = "neutral"
	ToneCasual  = "casual"
	ToneFormal  = "formal"
)

// State is the single cross-session memory record for the user. Topics is a
// true set; it is serialized as a sorted slice of unique strings and rebuilt
// into a set on load.
type State struct {
	Name           string
	Tone           string
	Topics         map[string]bool
	NegativeStreak int
	PositiveStreak int
	NegCount       int
	PosCount       int
	LastSentiment  string
}

// stateRecord is the persisted JSON shape. Name is nullable so an unknown
// name round-trips as null rather than "".
type stateRecord struct {
	Name           *string  `json:"name"`
	Tone           string   `json:"tone"`
	Topics         []string `json:"topics"`
	NegativeStreak int      `json:"negative_streak"`
	PositiveStreak int      `json:"positive_streak"`
	NegCount       int      `json:"neg_count"`
	PosCount       int      `json:"pos_count"`
	LastSentiment  string   `json:"last_sentiment"`
}

// DefaultState returns a fresh memory record.
func DefaultState() *State {
	return &State{
		Tone:          ToneNeutral,
		Topics:        make(map[string]bool),
		LastSentiment: sentiment.Neutral,
	}
}

// LoadState reads the persisted memory record. A missing or malformed file
// silently yields the defaults; fields absent from the file keep their
// defaults.
func LoadState(path string) *State {
	state := DefaultState()

	data, err := os.ReadFile(path)
	if err != nil {
		return state
	}

	rec := stateRecord{
		Tone:          state.Tone,
		LastSentiment: state.LastSentiment,
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return DefaultState()
	}

	if rec.Name != nil {
		state.Name = *rec.Name
	}
	state.Tone = rec.Tone
	for _, topic := range rec.Topics {
		state.Topics[topic] = true
	}
	state.NegativeStreak = rec.NegativeStreak
	state.PositiveStreak = rec.PositiveStreak
	state.NegCount = rec.NegCount
	state.PosCount = rec.PosCount
	state.LastSentiment = rec.LastSentiment

	return state
}

// SaveState writes the memory record to path, creating parent directories as
// needed. The write goes through a temp file and rename so a crash mid-write
// cannot leave a partial file.
func SaveState(path string, s *State) error {
	rec := stateRecord{
		Tone:           s.Tone,
		Topics:         s.TopicList(),
		NegativeStreak: s.NegativeStreak,
		PositiveStreak: s.PositiveStreak,
		NegCount:       s.NegCount,
		PosCount:       s.PosCount,
		LastSentiment:  s.LastSentiment,
	}
	if s.Name != "" {
		name := s.Name
		rec.Name = &name
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize memory state: %w", err)
	}

	return atomicWrite(path, data)
}

// TopicList returns the topic set as a sorted slice.
func (s *State) TopicList() []string {
	topics := make([]string, 0, len(s.Topics))
	for topic := range s.Topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// UpdateSentimentStats records the turn's label: negative and positive turns
// grow their streak and reset the opposite one, neutral turns decay both
// streaks toward zero. The cumulative counts never reset.
func (s *State) UpdateSentimentStats(label string) {
	s.LastSentiment = label

	switch label {
	case sentiment.Negative:
		s.NegCount++
		s.NegativeStreak++
		s.PositiveStreak = 0
	case sentiment.Positive:
		s.PosCount++
		s.PositiveStreak++
		s.NegativeStreak = 0
	default:
		s.NegativeStreak = decay(s.NegativeStreak)
		s.PositiveStreak = decay(s.PositiveStreak)
	}
}

func decay(streak int) int {
	if streak > 0 {
		return streak - 1
	}
	return 0
}

// atomicWrite writes data to path via a temp file in the same directory
// followed by a rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
