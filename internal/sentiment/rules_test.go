package sentiment

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRules_FailurePhrasePenalty(t *testing.T) {
	rules := DefaultRules()

	with := rules.Score("i failed the exam")
	without := rules.Score("exam")

	if !almostEqual(with, -0.6) {
		t.Errorf("Expected failure phrase to score -0.6, got %f", with)
	}
	if without != 0 {
		t.Errorf("Expected plain 'exam' to score 0, got %f", without)
	}
	if with > without-0.6+1e-9 {
		t.Errorf("Failure phrase should cost a fixed 0.6 penalty: %f vs %f", with, without)
	}
}

func TestRules_FeelingPatterns(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		text string
		want float64
	}{
		{"i feel hopeless", -0.7},
		{"I'm feeling motivated today", 0.7},
		{"im feeling thrilled", 0.7},
		{"i am confident", 0.6},
		{"i am miserable", -0.6},
		{"i feel table", 0}, // not in either word set
	}

	for _, tt := range tests {
		got := rules.Score(tt.text)
		if !almostEqual(got, tt.want) {
			t.Errorf("Score(%q) = %f, want %f", tt.text, got, tt.want)
		}
	}
}

func TestRules_SlangAndBlue(t *testing.T) {
	rules := DefaultRules()

	if got := rules.Score("just go away"); !almostEqual(got, -0.6) {
		t.Errorf("Expected slang penalty -0.6, got %f", got)
	}

	// "im feeling blue" hits both the feeling-word match (-0.7) and the
	// literal blue phrase (-0.6); the sum clamps at -1.
	if got := rules.Score("im feeling blue"); got != -1.0 {
		t.Errorf("Expected clamped -1.0, got %f", got)
	}
}

func TestRules_Amplifiers(t *testing.T) {
	rules := DefaultRules()

	// Repetition and exclamations multiply the cumulative additive score.
	got := rules.Score("i failed the exam!!! noooo")
	want := -0.6 * 1.2 * (1 + 3*0.05)
	if !almostEqual(got, want) {
		t.Errorf("Expected amplified score %f, got %f", want, got)
	}

	// Amplifiers alone have nothing to amplify.
	if got := rules.Score("soooo!!!"); got != 0 {
		t.Errorf("Expected 0 for amplifiers over empty base, got %f", got)
	}

	// Exclamation multiplier caps at 5 marks; the run of '!' also counts
	// as character repetition.
	capped := rules.Score("i failed the exam!!!!!!!!!!")
	want = -0.6 * 1.2 * (1 + 5*0.05)
	if !almostEqual(capped, want) {
		t.Errorf("Expected capped multiplier score %f, got %f", want, capped)
	}
}

func TestRules_ScoreBounds(t *testing.T) {
	rules := DefaultRules()

	texts := []string{
		"",
		"i failed the exam and i am hopeless, shut up, feeling blue!!!",
		"i feel thrilled and i am confident!!!",
		"noooo",
		"a completely ordinary sentence",
	}

	for _, text := range texts {
		got := rules.Score(text)
		if got < -1.0 || got > 1.0 {
			t.Errorf("Score(%q) = %f out of [-1, 1]", text, got)
		}
	}
}

func TestHasTripleRun(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"nooo", true},
		{"noo", false},
		{"", false},
		{"aaab", true},
		{"ababab", false},
	}

	for _, tt := range tests {
		if got := hasTripleRun(tt.text); got != tt.want {
			t.Errorf("hasTripleRun(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
