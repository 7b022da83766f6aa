package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"caretask/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"id": "x",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "1. Rest"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 2, "total_tokens": 5}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "secret", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: "be brief",
		Prompt:            "what now",
		JSONOutput:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "1. Rest" {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("TotalTokens = %d", resp.Usage.TotalTokens)
	}

	if gotBody["model"] != qwen.DefaultModel {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs := gotBody["messages"].([]any)
	if len(msgs) != 2 || msgs[0].(map[string]any)["role"] != "system" {
		t.Errorf("messages = %v", msgs)
	}
	if rf, ok := gotBody["response_format"].(map[string]any); !ok || rf["type"] != "json_object" {
		t.Errorf("response_format = %v", gotBody["response_format"])
	}
}

func TestGenerateContent_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := qwen.New(qwen.Config{APIKey: "secret", BaseURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &qwen.Request{Prompt: "x"}); err == nil {
		t.Fatal("expected error for 429")
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := qwen.New(qwen.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
