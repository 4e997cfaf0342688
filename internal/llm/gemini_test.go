package llm

import "testing"

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.input, geminiAliases); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaFromVerdictDefinition(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_score": map[string]any{"type": "number"},
			"outcome":     map[string]any{"type": "string", "enum": []any{"pass", "fail"}},
			"feedback":    map[string]any{"type": "string"},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"total_score", "feedback"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["total_score"].Type != "NUMBER" {
		t.Fatalf("total_score type = %s", schema.Properties["total_score"].Type)
	}
	if len(schema.Properties["outcome"].Enum) != 2 {
		t.Fatalf("outcome enum = %v", schema.Properties["outcome"].Enum)
	}
	if schema.Properties["strengths"].Type != "ARRAY" {
		t.Fatalf("strengths type = %s", schema.Properties["strengths"].Type)
	}
	if schema.Properties["strengths"].Items.Type != "STRING" {
		t.Fatalf("strengths items type = %s", schema.Properties["strengths"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("required = %v, want 2 entries", schema.Required)
	}
}
