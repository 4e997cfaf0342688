package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// gradeSchema mirrors the shape the judge asks for: a bounded score, a
// pass/fail echo and a feedback paragraph.
func gradeSchema() *Schema {
	return &Schema{
		Name:        "grade",
		Description: "A graded submission",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"total_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"outcome":     map[string]any{"type": "string", "enum": []any{"pass", "fail"}},
				"feedback":    map[string]any{"type": "string"},
			},
			"required": []any{"total_score", "feedback"},
		},
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("err = %T, want ErrInvalidResponse", err)
	}
}

func TestCheckSchemaAcceptsConformingVerdict(t *testing.T) {
	raw := json.RawMessage(`{"total_score":85,"outcome":"pass","feedback":"Solid reasoning."}`)
	if err := checkSchema(gradeSchema(), raw); err != nil {
		t.Fatalf("checkSchema: %v", err)
	}
}

func TestCheckSchemaOptionalFieldMayBeOmitted(t *testing.T) {
	raw := json.RawMessage(`{"total_score":40,"feedback":"Revisit the scenario."}`)
	if err := checkSchema(gradeSchema(), raw); err != nil {
		t.Fatalf("checkSchema: %v", err)
	}
}

func TestCheckSchemaMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"total_score":85}`)
	assertInvalid(t, checkSchema(gradeSchema(), raw))
}

func TestCheckSchemaWrongType(t *testing.T) {
	raw := json.RawMessage(`{"total_score":"eighty-five","feedback":"ok"}`)
	assertInvalid(t, checkSchema(gradeSchema(), raw))
}

func TestCheckSchemaScoreOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"total_score":140,"feedback":"generous"}`)
	assertInvalid(t, checkSchema(gradeSchema(), raw))
}

func TestCheckSchemaEnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"total_score":85,"outcome":"maybe","feedback":"ok"}`)
	assertInvalid(t, checkSchema(gradeSchema(), raw))
}

func TestCheckSchemaMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"total_score":`)
	assertInvalid(t, checkSchema(gradeSchema(), raw))
}

func TestCheckSchemaEmptyResponse(t *testing.T) {
	assertInvalid(t, checkSchema(gradeSchema(), json.RawMessage(``)))
}

func TestCheckSchemaNilSchemaAcceptsAnything(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := checkSchema(nil, raw); err != nil {
		t.Fatalf("checkSchema(nil): %v", err)
	}
}

func TestCheckSchemaNestedCriteria(t *testing.T) {
	schema := &Schema{
		Name:        "grade-with-criteria",
		Description: "Graded submission with per-criterion breakdown",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"criteria_scores": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"accuracy": map[string]any{"type": "number"},
						"safety":   map[string]any{"type": "number"},
					},
					"required": []any{"accuracy"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"criteria_scores", "strengths"},
		},
	}

	valid := json.RawMessage(`{"criteria_scores":{"accuracy":90,"safety":80},"strengths":["spotted the leak"]}`)
	if err := checkSchema(schema, valid); err != nil {
		t.Fatalf("checkSchema: %v", err)
	}

	invalid := json.RawMessage(`{"criteria_scores":{"accuracy":90},"strengths":[90,80]}`)
	assertInvalid(t, checkSchema(schema, invalid))
}
