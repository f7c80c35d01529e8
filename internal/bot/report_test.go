package bot

import (
	"math"
	"strings"
	"testing"

	"github.com/SubhamMahanty05/Chatbot/internal/memory"
	"github.com/SubhamMahanty05/Chatbot/internal/sentiment"
)

func userHistory(scores ...float64) []memory.Utterance {
	var history []memory.Utterance
	for _, s := range scores {
		history = append(history,
			memory.NewUserUtterance("msg", sentiment.Classify(s), s),
			memory.NewBotUtterance("reply"),
		)
	}
	return history
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)

	if got.Overall != sentiment.Neutral || got.Average != 0 {
		t.Errorf("Summarize(nil) = %+v", got)
	}
	if got.Explanation != "No user messages found." {
		t.Errorf("Explanation = %q", got.Explanation)
	}
}

func TestSummarize_PositionWeighted(t *testing.T) {
	// Weights 1,2,3: (1*0.1 + 2*0.2 + 3*0.9) / 6 = 3.2/6.
	got := Summarize(userHistory(0.1, 0.2, 0.9))

	want := 3.2 / 6.0
	if math.Abs(got.Average-want) > 1e-9 {
		t.Errorf("Average = %f, want %f", got.Average, want)
	}
	if got.Overall != sentiment.Positive {
		t.Errorf("Overall = %s, want Positive", got.Overall)
	}
	if !strings.Contains(got.Explanation, "positive feelings 3 time(s)") {
		t.Errorf("Explanation = %q", got.Explanation)
	}
	if !strings.HasSuffix(got.Explanation, "Overall tone leaned positive.") {
		t.Errorf("Explanation tail wrong: %q", got.Explanation)
	}
}

func TestSummarize_RecencyDominates(t *testing.T) {
	// Two early positives against one strong late negative: the late
	// message carries the most weight.
	got := Summarize(userHistory(0.3, 0.3, -0.9))

	if got.Overall != sentiment.Negative {
		t.Errorf("Overall = %s, want Negative (avg %f)", got.Overall, got.Average)
	}
	if !strings.HasSuffix(got.Explanation, "Recent messages leaned negative.") {
		t.Errorf("Explanation tail wrong: %q", got.Explanation)
	}
}

func TestSummarize_CountsLabels(t *testing.T) {
	got := Summarize(userHistory(0.5, -0.5, 0.0))

	for _, want := range []string{
		"negative feelings 1 time(s)",
		"positive feelings 1 time(s)",
		"neutral or unclear feelings 1 time(s)",
	} {
		if !strings.Contains(got.Explanation, want) {
			t.Errorf("Explanation missing %q:\n%s", want, got.Explanation)
		}
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"improved", []float64{0.0, 0.5}, "Your emotional tone improved over the conversation."},
		{"declined", []float64{0.0, -0.5}, "Your emotional tone declined over time."},
		{"stable", []float64{0.1, 0.1}, "Your emotional tone stayed relatively stable."},
		{"delta at threshold is stable", []float64{0.0, 0.25}, "Your emotional tone stayed relatively stable."},
		{"single score", []float64{0.4}, "Not enough data for a trend."},
		{"no scores", nil, "Not enough data for a trend."},
		{"endpoints only", []float64{0.0, -0.9, 0.4}, "Your emotional tone improved over the conversation."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(userHistory(tt.scores...)); got != tt.want {
				t.Errorf("Trend(%v) = %q, want %q", tt.scores, got, tt.want)
			}
		})
	}
}

func TestTier2Lines(t *testing.T) {
	history := []memory.Utterance{
		memory.NewUserUtterance("good day", sentiment.Positive, 0.62),
		memory.NewBotUtterance("Nice!"),
		memory.NewUserUtterance("bad day", sentiment.Negative, -0.4),
	}

	lines := Tier2Lines(history)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `1. "good day" → Positive (+0.620)` {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if lines[1] != `2. "bad day" → Negative (-0.400)` {
		t.Errorf("Line 1 = %q", lines[1])
	}
}

func TestTrendChart(t *testing.T) {
	lines := TrendChart(userHistory(0.55, -0.3, 0.0))
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	// floor(|0.55|*10) = 5 bars, signed score shown.
	if lines[0] != "1: +0.550 "+strings.Repeat("█", 5) {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if lines[1] != "2: -0.300 "+strings.Repeat("█", 3) {
		t.Errorf("Line 1 = %q", lines[1])
	}
	if lines[2] != "3: +0.000 " {
		t.Errorf("Line 2 = %q", lines[2])
	}
}
