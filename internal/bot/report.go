package bot

import (
	"fmt"
	"strings"

	"github.com/SubhamMahanty05/Chatbot/internal/memory"
	"github.com/SubhamMahanty05/Chatbot/internal/sentiment"
)

// Trend endpoints must move by more than this to count as a change.
const trendDelta = 0.25

// Summary is the tier-1 session aggregate.
type Summary struct {
	Overall     string
	Average     float64
	Explanation string
}

// Summarize computes the weighted session summary. Later messages dominate:
// the i-th user message (1-indexed) is weighted by i.
func Summarize(history []memory.Utterance) Summary {
	userMsgs := userMessages(history)
	if len(userMsgs) == 0 {
		return Summary{
			Overall:     sentiment.Neutral,
			Explanation: "No user messages found.",
		}
	}

	var pos, neg, neu int
	for _, m := range userMsgs {
		switch m.SentimentLabel {
		case sentiment.Positive:
			pos++
		case sentiment.Negative:
			neg++
		default:
			neu++
		}
	}

	var wsum, wtotal float64
	for i, m := range userMsgs {
		w := float64(i + 1)
		wsum += w * m.Score()
		wtotal += w
	}
	avg := wsum / wtotal

	overall := sentiment.Classify(avg)

	var explanation strings.Builder
	fmt.Fprintf(&explanation, "You expressed negative feelings %d time(s).\n", neg)
	fmt.Fprintf(&explanation, "You expressed positive feelings %d time(s).\n", pos)
	fmt.Fprintf(&explanation, "You expressed neutral or unclear feelings %d time(s).\n", neu)

	switch overall {
	case sentiment.Negative:
		explanation.WriteString("Recent messages leaned negative.")
	case sentiment.Positive:
		explanation.WriteString("Overall tone leaned positive.")
	default:
		explanation.WriteString("Your emotions were mixed or balanced.")
	}

	return Summary{
		Overall:     overall,
		Average:     avg,
		Explanation: explanation.String(),
	}
}

// Trend compares the first and last user scores only; intermediate
// volatility is ignored.
func Trend(history []memory.Utterance) string {
	scores := userScores(history)
	if len(scores) < 2 {
		return "Not enough data for a trend."
	}

	change := scores[len(scores)-1] - scores[0]
	switch {
	case change > trendDelta:
		return "Your emotional tone improved over the conversation."
	case change < -trendDelta:
		return "Your emotional tone declined over time."
	default:
		return "Your emotional tone stayed relatively stable."
	}
}

// Tier2Lines renders the per-statement sentiment breakdown.
func Tier2Lines(history []memory.Utterance) []string {
	userMsgs := userMessages(history)
	lines := make([]string, 0, len(userMsgs))
	for i, m := range userMsgs {
		lines = append(lines, fmt.Sprintf("%d. %q → %s (%+.3f)", i+1, m.Text, m.SentimentLabel, m.Score()))
	}
	return lines
}

// TrendChart renders one bar per user message: floor(|score|*10) block
// characters beside the signed score.
func TrendChart(history []memory.Utterance) []string {
	scores := userScores(history)
	lines := make([]string, 0, len(scores))
	for i, s := range scores {
		bar := strings.Repeat("█", barLength(s))
		lines = append(lines, fmt.Sprintf("%d: %+.3f %s", i+1, s, bar))
	}
	return lines
}

func barLength(score float64) int {
	if score < 0 {
		score = -score
	}
	return int(score * 10)
}

func userMessages(history []memory.Utterance) []memory.Utterance {
	var msgs []memory.Utterance
	for _, m := range history {
		if m.Speaker == memory.SpeakerUser {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

func userScores(history []memory.Utterance) []float64 {
	var scores []float64
	for _, m := range history {
		if m.Speaker == memory.SpeakerUser {
			scores = append(scores, m.Score())
		}
	}
	return scores
}
