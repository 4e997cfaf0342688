package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement unlock. A given achievement is
// granted at most once per user; the store enforces this on append.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_name").
			NotEmpty().
			Comment("Links to User.name"),
		field.String("achievement_id").
			NotEmpty().
			Comment("Stable identifier, e.g. streak_5, speed_demon"),
		field.Int("bonus_xp").
			Default(0).
			Comment("XP granted with the unlock"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_name", "achievement_id").Unique(),
	}
}
