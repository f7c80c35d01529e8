package sentiment

import (
	"regexp"
	"strings"
)

// Fixed rule adjustments. The multiplicative steps (character repetition,
// exclamation emphasis) apply to the cumulative sum of the additive steps,
// so evaluation order matters.
const (
	failurePenalty  = 0.6
	feelingBonus    = 0.7
	iAmBonus        = 0.6
	slangPenalty    = 0.6
	bluePenalty     = 0.6
	repeatAmplifier = 1.2
)

var (
	feelingPattern = regexp.MustCompile(`\b(i feel|i'm feeling|im feeling)\s+([a-z]+)`)
	iAmPattern     = regexp.MustCompile(`\bi am\s+([a-z]+)`)
)

// Rules scores domain-specific emotional cues that a general-purpose lexicon
// under-weights: failure phrasing, explicit feeling statements, slang
// dismissals, and typed emphasis.
type Rules struct {
	failurePhrases []string
	positiveWords  map[string]bool
	negativeWords  map[string]bool
	slangNegative  []string
}

// DefaultRules returns the built-in cue lists.
func DefaultRules() *Rules {
	return &Rules{
		failurePhrases: []string{
			"got failed", "failed in", "i failed", "did not pass",
			"didn't pass", "could not submit", "couldn't submit",
			"missed submission", "submission failed", "failed the exam",
			"failed in submission",
		},
		positiveWords: wordSet(
			"confident", "confidence", "motivated", "strong",
			"hopeful", "optimistic", "excited", "thrilled",
			"grateful", "satisfied", "content",
		),
		negativeWords: wordSet(
			"pathetic", "trash", "useless", "disgusting", "horrendous",
			"devastated", "miserable", "hopeless", "annoyed", "irritated",
			"suicidal", "blue",
		),
		slangNegative: []string{
			"jaa yrr", "ja yrr", "get lost",
			"go away", "leave me alone", "shut up",
		},
	}
}

// Score computes the rule adjustment for text, clamped to [-1, 1].
func (r *Rules) Score(text string) float64 {
	t := strings.ToLower(text)
	score := 0.0

	if containsAny(t, r.failurePhrases) {
		score -= failurePenalty
	}

	if m := feelingPattern.FindStringSubmatch(t); m != nil {
		switch {
		case r.positiveWords[m[2]]:
			score += feelingBonus
		case r.negativeWords[m[2]]:
			score -= feelingBonus
		}
	}

	if m := iAmPattern.FindStringSubmatch(t); m != nil {
		switch {
		case r.positiveWords[m[1]]:
			score += iAmBonus
		case r.negativeWords[m[1]]:
			score -= iAmBonus
		}
	}

	if containsAny(t, r.slangNegative) {
		score -= slangPenalty
	}

	if strings.Contains(t, "feeling blue") || strings.Contains(t, "feel blue") {
		score -= bluePenalty
	}

	if hasTripleRun(t) {
		score *= repeatAmplifier
	}

	if ex := strings.Count(t, "!"); ex > 1 {
		if ex > 5 {
			ex = 5
		}
		score *= 1 + float64(ex)*0.05
	}

	return clamp(score)
}

// hasTripleRun reports whether any character repeats 3+ times consecutively.
// RE2 has no backreferences, so the run is scanned directly.
func hasTripleRun(t string) bool {
	var prev rune
	run := 0
	for _, c := range t {
		if c == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = c
			run = 1
		}
	}
	return false
}

func containsAny(t string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(t, p) {
			return true
		}
	}
	return false
}

func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < -1.0 {
		return -1.0
	}
	return v
}
