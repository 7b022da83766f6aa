package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caretask/internal/extraction"
	"caretask/pkg/airesponse"
	"caretask/pkg/llmprovider"
	"caretask/pkg/log"
)

func TestNew_Providers(t *testing.T) {
	r, err := New(Config{Provider: ProviderNone})
	if err != nil || r != nil {
		t.Errorf("none provider = %v, %v; want nil, nil", r, err)
	}

	if _, err := New(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown provider")
	}
	if _, err := New(Config{Provider: ProviderWebhook}); err == nil {
		t.Error("expected error for webhook without URL")
	}
	if _, err := New(Config{Provider: ProviderGemini}); err == nil {
		t.Error("expected error for gemini without key")
	}

	r, err = New(Config{Provider: ProviderQwen, APIKey: "k"})
	if err != nil || r.Name() != ProviderQwen {
		t.Errorf("qwen provider = %v, %v", r, err)
	}

	r, err = New(Config{Provider: ProviderDeepSeek, APIKey: "k"})
	if err != nil || r.Name() != ProviderDeepSeek {
		t.Errorf("deepseek provider = %v, %v", r, err)
	}

	if _, err := New(Config{Provider: ProviderChain, Providers: []llmprovider.ProviderConfig{{Name: "qwen", Enabled: true, APIKey: "k"}}}); err == nil {
		t.Error("expected error for chain without logger")
	}
}

func TestChainRemote_FallsBackToSecondProvider(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"tasks\":[\"Call the pharmacy\"]}"}}]}`))
	}))
	defer working.Close()

	r, err := New(Config{
		Provider: ProviderChain,
		Providers: []llmprovider.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", BaseURL: failing.URL},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", BaseURL: working.URL},
		},
		FallbackEnabled: true,
		RetryAttempts:   1,
		Logger:          log.NewNop(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name() != ProviderChain {
		t.Errorf("Name() = %s", r.Name())
	}

	payload, err := r.Process(context.Background(), "remember to call the pharmacy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := airesponse.Adapt(payload)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Text != "Call the pharmacy" {
		t.Errorf("Candidates = %#v", res.Candidates)
	}
}

func TestWebhookRemote_Process(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["message"] == "broken" {
			w.Write([]byte("<html>oops</html>"))
			return
		}
		w.Write([]byte(`[{"output": "` + "```json\\n[\\\"" + body["message"] + "\\\"]\\n```" + `"}]`))
	}))
	defer ts.Close()

	r, err := New(Config{Provider: ProviderWebhook, WebhookURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, err := r.Process(context.Background(), "Call Anna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := airesponse.Adapt(payload)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].Text != "Call Anna" {
		t.Errorf("Candidates = %#v", res.Candidates)
	}

	if _, err := r.Process(context.Background(), "broken"); err == nil {
		t.Error("expected decode error for non-JSON body")
	}
}

func TestGeminiRemote_Process(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` +
			"```json\\n{\\\"tasks\\\":[{\\\"text\\\":\\\"Take pills\\\",\\\"priority\\\":\\\"high\\\"}],\\\"summary\\\":\\\"One task.\\\"}\\n```" +
			`"}]}}]}`))
	}))
	defer ts.Close()

	r, err := New(Config{Provider: ProviderGemini, APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, err := r.Process(context.Background(), "I must take my pills")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := airesponse.Adapt(payload)
	if err != nil {
		t.Fatalf("Adapt: %v", err)
	}
	if res.Summary != "One task." || len(res.Candidates) != 1 || res.Candidates[0].Priority != "high" {
		t.Errorf("got %#v", res)
	}
}

func TestDecodeLLMText(t *testing.T) {
	v, err := decodeLLMText("Sure! Here it is: {\"tasks\": []} Hope that helps.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Errorf("expected object, got %T", v)
	}

	v, err = decodeLLMText("1. Rest 2. Drink water")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := v.(string); !ok || !strings.HasPrefix(s, "1. Rest") {
		t.Errorf("expected prose to pass through, got %#v", v)
	}

	if _, err := decodeLLMText(""); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("walk the dog")
	if !strings.Contains(p, "walk the dog") {
		t.Errorf("prompt missing input: %q", p)
	}
	if !strings.Contains(SystemPrompt, `"tasks"`) {
		t.Error("system prompt should describe the tasks shape")
	}
}

type stubProvider struct {
	text string
}

func (s stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Text: s.text}, nil
}
func (s stubProvider) Name() string  { return "stub" }
func (s stubProvider) Model() string { return "stub-1" }

type stubWebhook struct {
	body []byte
}

func (s stubWebhook) SendMessage(ctx context.Context, message string) ([]byte, error) {
	return s.body, nil
}

func TestConstructors_ReturnRemote(t *testing.T) {
	remotes := map[string]extraction.Remote{
		"stub":          NewLLM(stubProvider{text: `{"tasks":["Walk the dog"]}`}),
		ProviderWebhook: NewWebhook(stubWebhook{body: []byte(`{"tasks":["Walk the dog"]}`)}),
	}

	for name, r := range remotes {
		t.Run(name, func(t *testing.T) {
			if r.Name() != name {
				t.Errorf("Name() = %s; want %s", r.Name(), name)
			}
			payload, err := r.Process(context.Background(), "walk the dog please")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			res, err := airesponse.Adapt(payload)
			if err != nil || len(res.Candidates) != 1 || res.Candidates[0].Text != "Walk the dog" {
				t.Errorf("Adapt = %#v, %v", res, err)
			}
		})
	}
}
