package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAvailable(t *testing.T) {
	c := New("", "https://api.example.com", "test-model", 0.7, 200)
	if c.Available() {
		t.Error("Client without an API key should not be available")
	}

	c = New("test-key", "https://api.example.com", "test-model", 0.7, 200)
	if !c.Available() {
		t.Error("Client with an API key should be available")
	}
}

func TestChatWithoutKey(t *testing.T) {
	c := New("", "https://api.example.com", "test-model", 0.7, 200)

	_, err := c.Chat(context.Background(), "system", "user")
	if err == nil {
		t.Error("Expected error when no API key is configured")
	}
}

func TestChatSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization header = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("Unexpected messages: %+v", req.Messages)
		}
		if req.Model != "test-model" {
			t.Errorf("Model = %q", req.Model)
		}

		resp := chatResponse{
			Choices: []struct {
				Index        int     `json:"index"`
				Message      Message `json:"message"`
				FinishReason string  `json:"finish_reason"`
			}{
				{Message: Message{Role: "assistant", Content: "  Hello there!  "}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := New("test-key", server.URL, "test-model", 0.7, 200)

	reply, err := c.Chat(context.Background(), "be brief", "hi")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Hello there!" {
		t.Errorf("Reply = %q, want trimmed content", reply)
	}
}

func TestChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	c := New("bad-key", server.URL, "test-model", 0.7, 200)

	_, err := c.Chat(context.Background(), "system", "user")
	if err == nil {
		t.Error("Expected error on non-200 response")
	}
}

func TestChatEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := New("test-key", server.URL, "test-model", 0.7, 200)

	_, err := c.Chat(context.Background(), "system", "user")
	if err == nil {
		t.Error("Expected error on empty choices")
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer server.Close()

	c := New("test-key", server.URL+"/", "test-model", 0.7, 200)

	if _, err := c.Chat(context.Background(), "system", "user"); err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if gotPath != "/v1/chat/completions" {
		t.Errorf("Request path = %q", gotPath)
	}
}
