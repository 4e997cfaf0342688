package llm

import "context"

// Purpose labels attached to LLM calls for the event log. The inspection
// commands filter on these.
const (
	PurposeJudge        = "judge"
	PurposeConnectivity = "connectivity"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels the context so the logging layer can attribute the
// call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, "unknown" when the caller never
// set one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
