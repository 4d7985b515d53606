// Code generated by ent, DO NOT EDIT.

package mistakecount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/echoz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLTE(FieldID, id))
}

// PromptID applies equality check predicate on the "prompt_id" field. It's identical to PromptIDEQ.
func PromptID(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldPromptID, v))
}

// Misses applies equality check predicate on the "misses" field. It's identical to MissesEQ.
func Misses(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldMisses, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldUpdatedAt, v))
}

// PromptIDEQ applies the EQ predicate on the "prompt_id" field.
func PromptIDEQ(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldPromptID, v))
}

// PromptIDNEQ applies the NEQ predicate on the "prompt_id" field.
func PromptIDNEQ(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNEQ(FieldPromptID, v))
}

// PromptIDIn applies the In predicate on the "prompt_id" field.
func PromptIDIn(vs ...string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldIn(FieldPromptID, vs...))
}

// PromptIDNotIn applies the NotIn predicate on the "prompt_id" field.
func PromptIDNotIn(vs ...string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNotIn(FieldPromptID, vs...))
}

// PromptIDGT applies the GT predicate on the "prompt_id" field.
func PromptIDGT(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGT(FieldPromptID, v))
}

// PromptIDGTE applies the GTE predicate on the "prompt_id" field.
func PromptIDGTE(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGTE(FieldPromptID, v))
}

// PromptIDLT applies the LT predicate on the "prompt_id" field.
func PromptIDLT(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLT(FieldPromptID, v))
}

// PromptIDLTE applies the LTE predicate on the "prompt_id" field.
func PromptIDLTE(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLTE(FieldPromptID, v))
}

// PromptIDContains applies the Contains predicate on the "prompt_id" field.
func PromptIDContains(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldContains(FieldPromptID, v))
}

// PromptIDHasPrefix applies the HasPrefix predicate on the "prompt_id" field.
func PromptIDHasPrefix(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldHasPrefix(FieldPromptID, v))
}

// PromptIDHasSuffix applies the HasSuffix predicate on the "prompt_id" field.
func PromptIDHasSuffix(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldHasSuffix(FieldPromptID, v))
}

// PromptIDEqualFold applies the EqualFold predicate on the "prompt_id" field.
func PromptIDEqualFold(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEqualFold(FieldPromptID, v))
}

// PromptIDContainsFold applies the ContainsFold predicate on the "prompt_id" field.
func PromptIDContainsFold(v string) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldContainsFold(FieldPromptID, v))
}

// MissesEQ applies the EQ predicate on the "misses" field.
func MissesEQ(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldMisses, v))
}

// MissesNEQ applies the NEQ predicate on the "misses" field.
func MissesNEQ(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNEQ(FieldMisses, v))
}

// MissesIn applies the In predicate on the "misses" field.
func MissesIn(vs ...int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldIn(FieldMisses, vs...))
}

// MissesNotIn applies the NotIn predicate on the "misses" field.
func MissesNotIn(vs ...int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNotIn(FieldMisses, vs...))
}

// MissesGT applies the GT predicate on the "misses" field.
func MissesGT(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGT(FieldMisses, v))
}

// MissesGTE applies the GTE predicate on the "misses" field.
func MissesGTE(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGTE(FieldMisses, v))
}

// MissesLT applies the LT predicate on the "misses" field.
func MissesLT(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLT(FieldMisses, v))
}

// MissesLTE applies the LTE predicate on the "misses" field.
func MissesLTE(v int) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLTE(FieldMisses, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MistakeCount {
	return predicate.MistakeCount(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MistakeCount) predicate.MistakeCount {
	return predicate.MistakeCount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MistakeCount) predicate.MistakeCount {
	return predicate.MistakeCount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MistakeCount) predicate.MistakeCount {
	return predicate.MistakeCount(sql.NotPredicates(p))
}
