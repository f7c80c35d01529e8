package memory

import (
	"testing"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"my name is Alex", "Alex", true},
		{"My Name Is Alex", "Alex", true},
		{"call me Sam", "Sam", true},
		{"i am Rita", "Rita", true},
		{"i'm Rita", "Rita", true},
		// Lowercase candidates are not names for the bare forms.
		{"i am rita", "", false},
		{"i'm tired", "", false},
		// State words never become names.
		{"I am sad", "", false},
		{"my name is Sad", "", false},
		{"call me happy", "", false},
		{"nothing here", "", false},
	}

	for _, tt := range tests {
		got, ok := ExtractName(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ExtractName(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUpdateFromText_NamePersists(t *testing.T) {
	s := DefaultState()

	s.UpdateFromText("my name is Alex")
	if s.Name != "Alex" {
		t.Fatalf("Name = %q, want Alex", s.Name)
	}

	// A turn without a name assignment leaves the stored name alone.
	s.UpdateFromText("i feel sad today")
	if s.Name != "Alex" {
		t.Errorf("Name should persist, got %q", s.Name)
	}

	// A new assignment reassigns.
	s.UpdateFromText("call me Sam")
	if s.Name != "Sam" {
		t.Errorf("Name = %q, want Sam", s.Name)
	}
}

func TestUpdateTone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hey bro", ToneCasual},
		{"could you help me", ToneFormal},
		// Casual markers win when both are present.
		{"lol could you help", ToneCasual},
		{"nothing special", ToneNeutral},
	}

	for _, tt := range tests {
		s := DefaultState()
		s.UpdateFromText(tt.text)
		if s.Tone != tt.want {
			t.Errorf("After %q tone = %s, want %s", tt.text, s.Tone, tt.want)
		}
	}
}

func TestUpdateTone_Unchanged(t *testing.T) {
	s := DefaultState()
	s.Tone = ToneFormal

	s.UpdateFromText("nothing matching any marker")
	if s.Tone != ToneFormal {
		t.Errorf("Tone should be unchanged without markers, got %s", s.Tone)
	}
}

func TestUpdateTopics(t *testing.T) {
	s := DefaultState()

	// One turn can add several topics.
	s.UpdateFromText("i failed my exam and now i am sad about my job")

	for _, topic := range []string{"study", "work", "feelings", "problems"} {
		if !s.Topics[topic] {
			t.Errorf("Expected topic %q, got %v", topic, s.Topics)
		}
	}
}

func TestUpdateTopics_Idempotent(t *testing.T) {
	s := DefaultState()

	s.UpdateFromText("thinking about my exam")
	first := len(s.Topics)

	s.UpdateFromText("thinking about my exam")
	if len(s.Topics) != first {
		t.Errorf("Topic set grew on repeat input: %v", s.Topics)
	}
	if !s.Topics["study"] || first != 1 {
		t.Errorf("Expected exactly {study}, got %v", s.Topics)
	}
}
