package memory

import (
	"regexp"
	"strings"
	"unicode"
)

// Name assignment patterns, in priority order. The bare "i am X" / "i'm X"
// forms are deliberately case-sensitive on the pronoun and require X to start
// uppercase, so feeling statements like "i am sad" never read as a name.
var (
	myNameIsPattern = regexp.MustCompile(`(?i)\bmy name is\s+([A-Za-z]+)\b`)
	callMePattern   = regexp.MustCompile(`(?i)\bcall me\s+([A-Za-z]+)\b`)
	iAmNamePattern  = regexp.MustCompile(`\bi am\s+([A-Za-z]+)\b`)
	imNamePattern   = regexp.MustCompile(`\bi'm\s+([A-Za-z]+)\b`)
)

// stateWords are feeling/state words that disqualify a name candidate.
var stateWords = wordSet(
	"upset", "sad", "angry", "tired", "depressed", "worried",
	"frustrated", "annoyed", "sick", "bad", "good", "fine",
	"confident", "happy",
)

// Tone markers. Casual takes priority when both appear.
var (
	casualMarkers = []string{"bro", "dude", "lol", "lmao", "yrr", "u ", "omg", "yaar", "babe"}
	formalMarkers = []string{"please", "kindly", "could you", "would you"}
)

// Topic keyword groups. Each matching group adds its tag; one turn can add
// several topics.
var topicGroups = []struct {
	tag      string
	keywords []string
}{
	{"study", []string{"exam", "test", "study", "assignment", "submission"}},
	{"work", []string{"job", "work", "office", "career"}},
	{"feelings", []string{
		"sad", "upset", "happy", "depressed", "angry", "worried",
		"confident", "blue", "suicidal",
	}},
	{"problems", []string{"issue", "problem", "error", "bug", "failed"}},
}

// UpdateFromText runs the three extractors on a user turn: name, tone,
// topics. All are non-destructive; a set name or tone persists until
// reassigned.
func (s *State) UpdateFromText(text string) {
	if name, ok := ExtractName(text); ok {
		s.Name = name
	}
	s.updateTone(text)
	s.updateTopics(text)
}

// ExtractName returns the first accepted name assignment in text, if any.
func ExtractName(text string) (string, bool) {
	if m := myNameIsPattern.FindStringSubmatch(text); m != nil {
		if name := m[1]; !stateWords[strings.ToLower(name)] {
			return name, true
		}
	}

	if m := callMePattern.FindStringSubmatch(text); m != nil {
		if name := m[1]; !stateWords[strings.ToLower(name)] {
			return name, true
		}
	}

	if m := iAmNamePattern.FindStringSubmatch(text); m != nil {
		if name := m[1]; startsUpper(name) && !stateWords[strings.ToLower(name)] {
			return name, true
		}
	}

	if m := imNamePattern.FindStringSubmatch(text); m != nil {
		if name := m[1]; startsUpper(name) && !stateWords[strings.ToLower(name)] {
			return name, true
		}
	}

	return "", false
}

func (s *State) updateTone(text string) {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, casualMarkers):
		s.Tone = ToneCasual
	case containsAny(t, formalMarkers):
		s.Tone = ToneFormal
	}
}

func (s *State) updateTopics(text string) {
	t := strings.ToLower(text)
	for _, group := range topicGroups {
		if containsAny(t, group.keywords) {
			s.Topics[group.tag] = true
		}
	}
}

func startsUpper(name string) bool {
	for _, c := range name {
		return unicode.IsUpper(c)
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
