package judge

import "github.com/haneul/aiquest/internal/llm"

// VerdictSchema defines the JSON schema for LLM judging responses.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Scored assessment of a learner's answers to a scenario question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_score": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     100.0,
				"description": "Overall score for the submission",
			},
			"criteria_scores": map[string]any{
				"type":        "object",
				"description": "Per-criterion scores, e.g. accuracy, judgment, safety",
				"additionalProperties": map[string]any{
					"type":    "number",
					"minimum": 0.0,
					"maximum": 100.0,
				},
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the learner did well, one short phrase each",
			},
			"improvements": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What to work on next, one short phrase each",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One-paragraph summary addressed to the learner",
			},
		},
		"required":             []any{"total_score", "criteria_scores", "strengths", "improvements", "feedback"},
		"additionalProperties": false,
	},
}
