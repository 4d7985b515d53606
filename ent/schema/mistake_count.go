package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// MistakeCount is the miss counter for one prompt. Rows are created on the
// first miss and only ever incremented.
type MistakeCount struct {
	ent.Schema
}

func (MistakeCount) Fields() []ent.Field {
	return []ent.Field{
		field.String("prompt_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("misses").
			NonNegative().
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
