package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the judge and a concrete LLM API.
// Callers build a Request, attach a Schema when they need structured
// output, and get validated JSON back.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON that already passed validation against it;
	// without a Schema, Content is the raw text wrapped as JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider was configured with.
	ModelID() string
}

// Request is one prompt for the model. Grading is single-turn: a system
// prompt that sets the tutor persona plus one user message carrying the
// submission.
type Request struct {
	// System sets the model's role and grading constraints.
	System string

	// Messages is the turn history, usually a single user message.
	Messages []Message

	// Schema, when set, selects the provider's structured-output mode and
	// the response is validated against it before being returned.
	Schema *Schema

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the completion must satisfy. The name doubles
// as the structured-output identifier on providers that require one
// (kebab-case, e.g. "verdict").
type Schema struct {
	Name        string
	Description string

	// Definition is the schema body as a plain map.
	Definition map[string]any
}

// Response is the model's completion plus its accounting.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text as a JSON string.
	Content json.RawMessage

	// Usage is the token accounting the provider reported.
	Usage Usage

	// Model is the model that actually served the call, which can differ
	// from the configured alias.
	Model string

	// StopReason is normalized across providers to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// aliasOrID resolves a friendly model alias to the provider's model ID.
// Names not in the alias table pass through, so exact IDs work too.
func aliasOrID(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
