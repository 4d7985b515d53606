package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one spoken attempt at a prompt within a round.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("Links to RoundEvent"),
		field.String("session_id").
			NotEmpty().
			Comment("Recording session that produced the attempt"),
		field.String("prompt_id").
			NotEmpty().
			Comment("Prompt the learner repeated"),
		field.String("language").
			Comment("BCP-47 tag of the prompt"),
		field.String("category").
			Default("").
			Comment("Prompt category"),
		field.String("expected_text").
			NotEmpty().
			Comment("Reference sentence"),
		field.String("transcript").
			Default("").
			Comment("What the recognizer heard"),
		field.String("outcome").
			NotEmpty().
			Comment("scored, cancelled or failed"),
		field.String("tier").
			Default("").
			Comment("excellent, close or retry (scored only)"),
		field.Float("similarity").
			Default(0).
			Comment("Normalized edit-distance similarity in [0,1]"),
		field.Int("score_delta").
			Default(0).
			Comment("Applied change to the running score"),
		field.Int64("listened_ms").
			Default(0).
			Comment("Time spent listening"),
		field.String("error_message").
			Default("").
			Comment("Failure reason for cancelled or failed attempts"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("prompt_id"),
		index.Fields("outcome"),
	}
}
