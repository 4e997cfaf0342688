package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single graded answer submission.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_name").
			NotEmpty().
			Comment("Links to User.name"),
		field.String("question_id").
			NotEmpty().
			Comment("Question.qid that was answered"),
		field.String("difficulty").
			NotEmpty(),
		field.String("question_type").
			NotEmpty().
			Comment("practice or exam"),
		field.Bool("passed").
			Comment("Answer-key verdict"),
		field.Float("score").
			Default(0).
			Comment("Judge total score, 0-100"),
		field.Int("xp_earned").
			Default(0),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds from serve to submit"),
		field.Int("tokens_used").
			Default(0).
			Comment("Judge token consumption attributed to this attempt"),
		field.Bool("simulated").
			Default(false).
			Comment("Whether the verdict came from the offline judge"),
		field.Text("feedback").
			Default("").
			Comment("Judge feedback shown to the learner"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_name"),
		index.Fields("question_id"),
		index.Fields("passed"),
	}
}
