package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OptionRecord is one selectable answer within a step, stored as JSON.
type OptionRecord struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	Feedback string  `json:"feedback,omitempty"`
}

// StepRecord is one decision point of a question, stored as JSON.
type StepRecord struct {
	Title   string         `json:"title,omitempty"`
	Text    string         `json:"text"`
	Options []OptionRecord `json:"options"`
}

// Question is a stored scenario question with its ordered steps.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			NotEmpty().
			Unique().
			Comment("Stable question identifier from the content pack"),
		field.String("difficulty").
			NotEmpty().
			Comment("very_easy, easy, normal, hard, very_hard"),
		field.String("qtype").
			NotEmpty().
			Comment("practice or exam"),
		field.Text("scenario").
			NotEmpty().
			Comment("Scenario text shown before the steps"),
		field.JSON("steps", []StepRecord{}).
			Comment("Ordered decision steps with their options"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty", "qtype"),
	}
}
