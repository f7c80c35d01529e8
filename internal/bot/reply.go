package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/SubhamMahanty05/Chatbot/internal/logger"
	"github.com/SubhamMahanty05/Chatbot/internal/memory"
	"github.com/SubhamMahanty05/Chatbot/internal/sentiment"
)

// generateReply attempts remote generation; on any failure it
// deterministically uses the local rule-based generator. Failures go to the
// operator log, never into the reply.
func (b *Chatbot) generateReply(ctx context.Context, label, text string) string {
	if b.responder == nil || !b.responder.Available() {
		return fallbackReply(label)
	}

	system := b.buildSystemPrompt(b.state.Tone, label)
	user := b.buildUserPrompt(text, b.recentContext())

	reply, err := b.responder.Chat(ctx, system, user)
	if err != nil {
		logger.Error("completion call failed: %v", err)
		return fallbackReply(label)
	}

	return b.applyTone(strings.TrimSpace(reply), label)
}

// fallbackReply is the rule-based reply generator.
func fallbackReply(label string) string {
	switch label {
	case sentiment.Negative:
		return "I'm really sorry to hear that. Could you tell me what bothered you the most?"
	case sentiment.Positive:
		return "That's good to hear! What else is on your mind?"
	default:
		return "I understand. Tell me more so I can assist you better."
	}
}

func (b *Chatbot) buildSystemPrompt(tone, label string) string {
	var s strings.Builder
	s.WriteString(b.prompts.System)
	s.WriteString(b.prompts.ToneLine(tone))
	fmt.Fprintf(&s, b.prompts.SentimentLine, label)
	return s.String()
}

func (b *Chatbot) buildUserPrompt(text, shortContext string) string {
	var s strings.Builder
	if shortContext != "" {
		fmt.Fprintf(&s, b.prompts.ContextPrefix, shortContext)
	}
	fmt.Fprintf(&s, "User message: %s\n", text)
	s.WriteString(b.prompts.UserSuffix)
	return s.String()
}

// recentContext joins the last few history turns for the user prompt.
func (b *Chatbot) recentContext() string {
	n := b.cfg.Memory.ContextMessages
	history := b.history
	if len(history) > n {
		history = history[len(history)-n:]
	}

	recent := make([]string, 0, len(history))
	for _, m := range history {
		recent = append(recent, fmt.Sprintf("%s: %s", m.Speaker, m.Text))
	}
	return strings.Join(recent, " | ")
}

// applyTone applies the cosmetic tone adjustment to a generated reply.
func (b *Chatbot) applyTone(reply, label string) string {
	if b.state.Tone == memory.ToneCasual && label == sentiment.Positive && !strings.Contains(reply, "😊") {
		reply += " 😊"
	}
	return reply
}
