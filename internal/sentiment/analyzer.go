// Package sentiment implements the hybrid sentiment engine: a general-purpose
// lexicon score blended with rule-based emotional cue adjustments.
package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Sentiment labels.
const (
	Positive = "Positive"
	Negative = "Negative"
	Neutral  = "Neutral"
)

// Blend weights and label thresholds. Fixed, not configurable.
const (
	lexiconWeight     = 0.8
	ruleWeight        = 0.4
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Lexicon scores raw text into a compound polarity in [-1, 1].
type Lexicon interface {
	Compound(text string) float64
}

// lexiconFunc adapts a scoring function to the Lexicon interface.
type lexiconFunc func(text string) float64

func (f lexiconFunc) Compound(text string) float64 { return f(text) }

// Analyzer combines the lexicon score with rule adjustments into a single
// label and score per utterance.
type Analyzer struct {
	lexicon Lexicon
	rules   *Rules
}

// NewAnalyzer creates an analyzer backed by the VADER lexicon.
func NewAnalyzer() *Analyzer {
	sia := govader.NewSentimentIntensityAnalyzer()
	return NewAnalyzerWithLexicon(lexiconFunc(func(text string) float64 {
		return sia.PolarityScores(text).Compound
	}))
}

// NewAnalyzerWithLexicon creates an analyzer with a caller-supplied lexicon.
func NewAnalyzerWithLexicon(lexicon Lexicon) *Analyzer {
	return &Analyzer{
		lexicon: lexicon,
		rules:   DefaultRules(),
	}
}

// Analyze scores text and returns its sentiment label and combined score.
// Empty or whitespace-only text is Neutral with score 0.
func (a *Analyzer) Analyze(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return Neutral, 0.0
	}

	vs := a.lexicon.Compound(text)
	rule := a.rules.Score(text)
	score := clamp(lexiconWeight*vs + ruleWeight*rule)

	return Classify(score), score
}

// Classify maps a combined score to a label using the fixed thresholds.
func Classify(score float64) string {
	switch {
	case score > positiveThreshold:
		return Positive
	case score < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
