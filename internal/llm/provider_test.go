package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// verdictJSON is a minimal graded verdict, the shape most tests queue up.
const verdictJSON = `{"total_score":85,"feedback":"Good instincts on data exposure."}`

func TestMockProviderServesQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(verdictJSON), Usage: Usage{InputTokens: 120, OutputTokens: 40, TotalTokens: 160}},
		MockResponse{Content: json.RawMessage(`{"total_score":40,"feedback":"Review the scenario again."}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "grade submission 1"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != verdictJSON {
		t.Fatalf("content = %s", first.Content)
	}
	if first.Usage.InputTokens != 120 || first.Usage.TotalTokens != 160 {
		t.Fatalf("usage = %+v", first.Usage)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "grade submission 2"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) == verdictJSON {
		t.Fatal("second call served the first response again")
	}
}

func TestMockProviderEmptyQueueIsOutage(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want ErrProviderUnavailable", err)
	}
}

func TestMockProviderRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	req := Request{
		System:   "You are an AI-literacy tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Scenario: unsourced statistics."}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != req.System {
		t.Fatalf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestMockProviderQueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T, want ErrRateLimit", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("ModelID = %q", got)
	}
}

func TestPurposeLabels(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("unlabeled context purpose = %q", p)
	}

	ctx = WithPurpose(ctx, PurposeJudge)
	if p := PurposeFrom(ctx); p != "judge" {
		t.Fatalf("purpose = %q, want judge", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAliasOrID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.input, anthropicAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
