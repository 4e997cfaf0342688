package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds a learner's live progression state. Events record history;
// this row is the current standing used for gating and the leaderboard.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, also the lookup key"),
		field.Int("level").
			Default(1).
			Comment("Current level, 1 through 5"),
		field.Int("xp").
			Default(0).
			Comment("Lifetime XP, never decreases"),
		field.Int("total_attempted").
			Default(0).
			Comment("Questions attempted"),
		field.Int("total_correct").
			Default(0).
			Comment("Questions passed"),
		field.Int("current_streak").
			Default(0).
			Comment("Consecutive passes, reset on fail"),
		field.Int("best_streak").
			Default(0).
			Comment("Highest streak ever reached"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "xp"),
	}
}
