package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records the outcome of one promotion exam.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Comment("UUID for this exam sitting"),
		field.String("user_name").
			NotEmpty().
			Comment("Links to User.name"),
		field.Int("target_level").
			Comment("Level the exam would promote to"),
		field.Bool("passed"),
		field.Float("pass_ratio").
			Comment("Fraction of exam questions passed"),
		field.Int("questions_total"),
		field.Int("questions_passed"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP from exam questions plus the level-up bonus"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_name"),
		index.Fields("target_level"),
		index.Fields("passed"),
	}
}
