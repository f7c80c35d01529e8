// Package bot is the dialogue controller: per-turn orchestration of
// sentiment analysis, memory updates, intent routing, and reply generation.
package bot

import (
	"context"
	"math/rand"
	"time"

	"github.com/SubhamMahanty05/Chatbot/internal/config"
	"github.com/SubhamMahanty05/Chatbot/internal/memory"
	"github.com/SubhamMahanty05/Chatbot/internal/sentiment"
)

// Responder produces a reply via the remote completion endpoint. It is
// fallible by contract; the controller falls back to rule-based replies on
// any failure.
type Responder interface {
	Available() bool
	Chat(ctx context.Context, system, user string) (string, error)
}

// Chatbot owns the per-session state: analyzer, memory record, prior
// sessions, and the growing history of the current session.
type Chatbot struct {
	cfg       *config.Config
	prompts   *config.PromptConfig
	analyzer  *sentiment.Analyzer
	responder Responder
	state     *memory.State
	sessions  *memory.SessionLog
	history   []memory.Utterance
	startedAt time.Time
	rng       *rand.Rand
}

// Option configures a Chatbot.
type Option func(*Chatbot)

// WithAnalyzer overrides the sentiment analyzer.
func WithAnalyzer(a *sentiment.Analyzer) Option {
	return func(b *Chatbot) {
		b.analyzer = a
	}
}

// WithRandSource overrides the random source used for joke selection.
func WithRandSource(src rand.Source) Option {
	return func(b *Chatbot) {
		b.rng = rand.New(src)
	}
}

// New creates a Chatbot over loaded state and prior sessions. responder may
// be nil; replies then always come from the rule-based generator.
func New(cfg *config.Config, responder Responder, state *memory.State, sessions *memory.SessionLog, opts ...Option) (*Chatbot, error) {
	prompts, err := config.LoadPromptConfig()
	if err != nil {
		return nil, err
	}

	b := &Chatbot{
		cfg:       cfg,
		prompts:   prompts,
		analyzer:  sentiment.NewAnalyzer(),
		responder: responder,
		state:     state,
		sessions:  sessions,
		startedAt: time.Now(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Handle processes one user message to completion: analyze, update memory,
// check special-case intents, otherwise generate a reply. Returns the reply
// with the message's sentiment label and score.
func (b *Chatbot) Handle(ctx context.Context, msg string) (string, string, float64) {
	label, score := b.analyzer.Analyze(msg)
	b.addUser(msg, label, score)

	b.state.UpdateFromText(msg)
	b.state.UpdateSentimentStats(label)

	if reply, ok := b.matchIntent(msg); ok {
		b.addBot(reply)
		return reply, label, score
	}

	reply := b.generateReply(ctx, label, msg)
	b.addBot(reply)
	return reply, label, score
}

// History returns the session history so far.
func (b *Chatbot) History() []memory.Utterance {
	return b.history
}

// State returns the memory record.
func (b *Chatbot) State() *memory.State {
	return b.state
}

// StartedAt returns the session start time.
func (b *Chatbot) StartedAt() time.Time {
	return b.startedAt
}

// SavePersistentMemory writes the memory record and appends this session to
// the session log.
func (b *Chatbot) SavePersistentMemory() error {
	if err := memory.SaveState(b.cfg.StatePath(), b.state); err != nil {
		return err
	}

	session := memory.Session{
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
		History:   b.history,
	}
	return b.sessions.Append(session)
}

// SaveTranscript appends this session to the plain-text chat log.
func (b *Chatbot) SaveTranscript() error {
	return memory.AppendTranscript(b.cfg.Memory.ChatLogPath, b.history)
}

func (b *Chatbot) addUser(text, label string, score float64) {
	b.history = append(b.history, memory.NewUserUtterance(text, label, score))
}

func (b *Chatbot) addBot(text string) {
	b.history = append(b.history, memory.NewBotUtterance(text))
}
