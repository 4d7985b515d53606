package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records practice round lifecycle events (start/end).
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("UUID grouping events in a round"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("language").
			Default("").
			Comment("Language filter of the round"),
		field.String("category").
			Default("").
			Comment("Category filter of the round"),
		field.JSON("prompt_list", []string{}).
			Optional().
			Comment("Sampled prompts (on start only)"),
		field.Int("prompts_served").
			Default(0).
			Comment("Prompts attempted (on end only)"),
		field.Int("excellent_count").
			Default(0).
			Comment("Excellent attempts (on end only)"),
		field.Int("close_count").
			Default(0).
			Comment("Close attempts (on end only)"),
		field.Int("retry_count").
			Default(0).
			Comment("Retry attempts (on end only)"),
		field.Int("unscored_count").
			Default(0).
			Comment("Cancelled or failed attempts (on end only)"),
		field.Int("score_gained").
			Default(0).
			Comment("Net score change over the round (on end only)"),
		field.Int("total_score").
			Default(0).
			Comment("Running total after the round (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Round duration in seconds (on end only)"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("action"),
	}
}
