package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment.Name != "test" || cfg.HTTPServer.Port != 8080 {
		t.Errorf("server config = %+v %+v", cfg.Environment, cfg.HTTPServer)
	}
	if cfg.Extraction.Remote.Provider != "none" || cfg.Extraction.Remote.Timeout != 15*time.Second {
		t.Errorf("remote config = %+v", cfg.Extraction.Remote)
	}
	if cfg.Extraction.MaxTasks != 10 || cfg.Store.Driver != "memory" {
		t.Errorf("extraction/store = %+v %+v", cfg.Extraction, cfg.Store)
	}
	if len(cfg.Contacts) != 0 {
		t.Errorf("contacts = %+v", cfg.Contacts)
	}
}

func TestLoadFile_Full(t *testing.T) {
	t.Setenv("CARETASK_TEST_KEY", "secret")
	path := writeConfig(t, `
extraction:
  remote:
    provider: Gemini
    timeout: 5s
    api_key: ${CARETASK_TEST_KEY}
contacts:
  - name: Dr. Lee
    number: 555-0100
    type: medical
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := cfg.Extraction.Remote
	if r.Provider != "gemini" || r.Timeout != 5*time.Second || r.APIKey != "secret" {
		t.Errorf("remote = %+v", r)
	}
	if len(cfg.Contacts) != 1 || cfg.Contacts[0].Name != "Dr. Lee" {
		t.Errorf("contacts = %+v", cfg.Contacts)
	}
}

func TestLoadFile_Chain(t *testing.T) {
	t.Setenv("CARETASK_QWEN_KEY", "q-secret")
	path := writeConfig(t, `
extraction:
  remote:
    provider: chain
    retry_attempts: 3
    providers:
      - name: Qwen
        enabled: true
        priority: 1
        api_key: ${CARETASK_QWEN_KEY}
      - name: deepseek
        enabled: false
        priority: 2
        api_key: unused
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := cfg.Extraction.Remote
	if !r.FallbackEnabled || r.RetryAttempts != 3 || r.RetryDelay != 500*time.Millisecond {
		t.Errorf("chain settings = %+v", r)
	}
	if len(r.Providers) != 2 {
		t.Fatalf("providers = %+v", r.Providers)
	}
	if p := r.Providers[0]; p.Name != "qwen" || !p.Enabled || p.Priority != 1 || p.APIKey != "q-secret" {
		t.Errorf("providers[0] = %+v", p)
	}
	if r.Providers[1].Enabled {
		t.Errorf("providers[1] should be disabled")
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "unknown provider", body: "extraction:\n  remote:\n    provider: openai\n", want: "unknown provider"},
		{name: "zero timeout", body: "extraction:\n  remote:\n    timeout: 0s\n", want: "timeout"},
		{name: "webhook without url", body: "extraction:\n  remote:\n    provider: webhook\n", want: "webhook_url"},
		{name: "deepseek without key", body: "extraction:\n  remote:\n    provider: deepseek\n", want: "api_key"},
		{name: "chain without providers", body: "extraction:\n  remote:\n    provider: chain\n", want: "providers"},
		{name: "unknown driver", body: "store:\n  driver: mysql\n", want: "unknown driver"},
		{name: "postgres without dsn", body: "store:\n  driver: postgres\n", want: "store.dsn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v; want containing %q", err, tt.want)
			}
		})
	}
}
