package bot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SubhamMahanty05/Chatbot/internal/memory"
)

// crisisPhrases short-circuit every other intent. This is a supportive
// pointer to real help, not a clinical detector.
var crisisPhrases = []string{
	"suicidal", "kill myself", "i want to die", "i wanna die",
	"don't want to live", "life is meaningless",
	"hurt myself", "self-harm", "cut myself",
}

const crisisReply = "I'm really sorry you're feeling this way. " +
	"I might not be able to provide the help you need right now. " +
	"Please reach out to someone you trust or a mental health professional. " +
	"You matter, and you're not alone."

var greetings = map[string]bool{
	"hi": true, "hii": true, "hello": true, "hey": true,
}

var greetingPattern = regexp.MustCompile(`^h+i+$`)

var jokes = []string{
	"Why do programmers hate nature? Too many bugs! 😄",
	"Why do computers get cold? They forgot to close their Windows! 😂",
}

// replayCount is how many trailing messages of the previous session are
// rendered on request.
const replayCount = 10

// intentRule pairs a predicate with a complete-reply handler. Rules are
// evaluated in fixed priority order, first match wins; crisis must stay
// first.
type intentRule struct {
	match func(t string) bool
	reply func(t string) string
}

// matchIntent checks the special-case intents against the lowercased,
// trimmed message. A matched intent bypasses the reply generator entirely.
func (b *Chatbot) matchIntent(text string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range b.intentRules() {
		if rule.match(t) {
			return rule.reply(t), true
		}
	}
	return "", false
}

func (b *Chatbot) intentRules() []intentRule {
	return []intentRule{
		{
			match: func(t string) bool { return containsAny(t, crisisPhrases) },
			reply: func(string) string { return crisisReply },
		},
		{
			match: func(t string) bool {
				return strings.Contains(t, "previous chat") || strings.Contains(t, "last conversation")
			},
			reply: func(string) string { return b.replayLastSession() },
		},
		{
			match: func(t string) bool { return greetings[t] || greetingPattern.MatchString(t) },
			reply: func(string) string { return b.greetingReply() },
		},
		{
			match: func(t string) bool { return strings.Contains(t, "how are you") },
			reply: func(string) string {
				return "I'm functioning well, thank you for asking. How are you doing today?"
			},
		},
		{
			match: func(t string) bool { return strings.Contains(t, "who am i") },
			reply: func(string) string { return b.whoAmIReply() },
		},
		{
			match: func(t string) bool { return strings.Contains(t, "love") },
			reply: func(string) string {
				// side effect: flips the stored tone preference
				b.state.Tone = memory.ToneCasual
				return "That's sweet of you. I'm always here for a good conversation. 💙"
			},
		},
		{
			match: func(t string) bool { return strings.Contains(t, "joke") },
			reply: func(string) string { return jokes[b.rng.Intn(len(jokes))] },
		},
		{
			match: func(t string) bool { return strings.Contains(t, "bye") },
			reply: func(string) string { return "Goodbye! It was a pleasure talking with you." },
		},
	}
}

func (b *Chatbot) replayLastSession() string {
	last, ok := b.sessions.Last()
	if !ok {
		return "You don't have any stored conversations yet."
	}

	history := last.History
	if len(history) > replayCount {
		history = history[len(history)-replayCount:]
	}

	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Speaker, m.Text))
	}
	return "Here are the last messages from your previous chat:\n" + strings.Join(lines, "\n")
}

func (b *Chatbot) greetingReply() string {
	name := ""
	if b.state.Name != "" {
		name = " " + b.state.Name
	}
	return fmt.Sprintf("Hello%s! It’s great connecting with you. How may I assist you today?", name)
}

func (b *Chatbot) whoAmIReply() string {
	if b.state.Name != "" {
		return fmt.Sprintf("You told me earlier your name is %s.", b.state.Name)
	}
	return "You haven’t told me your name yet."
}

func containsAny(t string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}
