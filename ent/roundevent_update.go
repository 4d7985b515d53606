// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/echoz/ent/predicate"
	"github.com/abhisek/echoz/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdate) SetRoundID(v string) *RoundEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRoundID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RoundEventUpdate) SetAction(v string) *RoundEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableAction(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RoundEventUpdate) SetLanguage(v string) *RoundEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableLanguage(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RoundEventUpdate) SetCategory(v string) *RoundEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableCategory(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPromptList sets the "prompt_list" field.
func (_u *RoundEventUpdate) SetPromptList(v []string) *RoundEventUpdate {
	_u.mutation.SetPromptList(v)
	return _u
}

// AppendPromptList appends value to the "prompt_list" field.
func (_u *RoundEventUpdate) AppendPromptList(v []string) *RoundEventUpdate {
	_u.mutation.AppendPromptList(v)
	return _u
}

// ClearPromptList clears the value of the "prompt_list" field.
func (_u *RoundEventUpdate) ClearPromptList() *RoundEventUpdate {
	_u.mutation.ClearPromptList()
	return _u
}

// SetPromptsServed sets the "prompts_served" field.
func (_u *RoundEventUpdate) SetPromptsServed(v int) *RoundEventUpdate {
	_u.mutation.ResetPromptsServed()
	_u.mutation.SetPromptsServed(v)
	return _u
}

// SetNillablePromptsServed sets the "prompts_served" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillablePromptsServed(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetPromptsServed(*v)
	}
	return _u
}

// AddPromptsServed adds value to the "prompts_served" field.
func (_u *RoundEventUpdate) AddPromptsServed(v int) *RoundEventUpdate {
	_u.mutation.AddPromptsServed(v)
	return _u
}

// SetExcellentCount sets the "excellent_count" field.
func (_u *RoundEventUpdate) SetExcellentCount(v int) *RoundEventUpdate {
	_u.mutation.ResetExcellentCount()
	_u.mutation.SetExcellentCount(v)
	return _u
}

// SetNillableExcellentCount sets the "excellent_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableExcellentCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetExcellentCount(*v)
	}
	return _u
}

// AddExcellentCount adds value to the "excellent_count" field.
func (_u *RoundEventUpdate) AddExcellentCount(v int) *RoundEventUpdate {
	_u.mutation.AddExcellentCount(v)
	return _u
}

// SetCloseCount sets the "close_count" field.
func (_u *RoundEventUpdate) SetCloseCount(v int) *RoundEventUpdate {
	_u.mutation.ResetCloseCount()
	_u.mutation.SetCloseCount(v)
	return _u
}

// SetNillableCloseCount sets the "close_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableCloseCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetCloseCount(*v)
	}
	return _u
}

// AddCloseCount adds value to the "close_count" field.
func (_u *RoundEventUpdate) AddCloseCount(v int) *RoundEventUpdate {
	_u.mutation.AddCloseCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RoundEventUpdate) SetRetryCount(v int) *RoundEventUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRetryCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RoundEventUpdate) AddRetryCount(v int) *RoundEventUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUnscoredCount sets the "unscored_count" field.
func (_u *RoundEventUpdate) SetUnscoredCount(v int) *RoundEventUpdate {
	_u.mutation.ResetUnscoredCount()
	_u.mutation.SetUnscoredCount(v)
	return _u
}

// SetNillableUnscoredCount sets the "unscored_count" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableUnscoredCount(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetUnscoredCount(*v)
	}
	return _u
}

// AddUnscoredCount adds value to the "unscored_count" field.
func (_u *RoundEventUpdate) AddUnscoredCount(v int) *RoundEventUpdate {
	_u.mutation.AddUnscoredCount(v)
	return _u
}

// SetScoreGained sets the "score_gained" field.
func (_u *RoundEventUpdate) SetScoreGained(v int) *RoundEventUpdate {
	_u.mutation.ResetScoreGained()
	_u.mutation.SetScoreGained(v)
	return _u
}

// SetNillableScoreGained sets the "score_gained" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableScoreGained(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetScoreGained(*v)
	}
	return _u
}

// AddScoreGained adds value to the "score_gained" field.
func (_u *RoundEventUpdate) AddScoreGained(v int) *RoundEventUpdate {
	_u.mutation.AddScoreGained(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *RoundEventUpdate) SetTotalScore(v int) *RoundEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTotalScore(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *RoundEventUpdate) AddTotalScore(v int) *RoundEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RoundEventUpdate) SetDurationSecs(v int) *RoundEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableDurationSecs(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RoundEventUpdate) AddDurationSecs(v int) *RoundEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := roundevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(roundevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(roundevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(roundevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptList(); ok {
		_spec.SetField(roundevent.FieldPromptList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPromptList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldPromptList, value)
		})
	}
	if _u.mutation.PromptListCleared() {
		_spec.ClearField(roundevent.FieldPromptList, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptsServed(); ok {
		_spec.SetField(roundevent.FieldPromptsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptsServed(); ok {
		_spec.AddField(roundevent.FieldPromptsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcellentCount(); ok {
		_spec.SetField(roundevent.FieldExcellentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcellentCount(); ok {
		_spec.AddField(roundevent.FieldExcellentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CloseCount(); ok {
		_spec.SetField(roundevent.FieldCloseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCloseCount(); ok {
		_spec.AddField(roundevent.FieldCloseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(roundevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(roundevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnscoredCount(); ok {
		_spec.SetField(roundevent.FieldUnscoredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnscoredCount(); ok {
		_spec.AddField(roundevent.FieldUnscoredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreGained(); ok {
		_spec.SetField(roundevent.FieldScoreGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreGained(); ok {
		_spec.AddField(roundevent.FieldScoreGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(roundevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(roundevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(roundevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(roundevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *RoundEventUpdateOne) SetRoundID(v string) *RoundEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRoundID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RoundEventUpdateOne) SetAction(v string) *RoundEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableAction(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *RoundEventUpdateOne) SetLanguage(v string) *RoundEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableLanguage(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *RoundEventUpdateOne) SetCategory(v string) *RoundEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableCategory(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPromptList sets the "prompt_list" field.
func (_u *RoundEventUpdateOne) SetPromptList(v []string) *RoundEventUpdateOne {
	_u.mutation.SetPromptList(v)
	return _u
}

// AppendPromptList appends value to the "prompt_list" field.
func (_u *RoundEventUpdateOne) AppendPromptList(v []string) *RoundEventUpdateOne {
	_u.mutation.AppendPromptList(v)
	return _u
}

// ClearPromptList clears the value of the "prompt_list" field.
func (_u *RoundEventUpdateOne) ClearPromptList() *RoundEventUpdateOne {
	_u.mutation.ClearPromptList()
	return _u
}

// SetPromptsServed sets the "prompts_served" field.
func (_u *RoundEventUpdateOne) SetPromptsServed(v int) *RoundEventUpdateOne {
	_u.mutation.ResetPromptsServed()
	_u.mutation.SetPromptsServed(v)
	return _u
}

// SetNillablePromptsServed sets the "prompts_served" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillablePromptsServed(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetPromptsServed(*v)
	}
	return _u
}

// AddPromptsServed adds value to the "prompts_served" field.
func (_u *RoundEventUpdateOne) AddPromptsServed(v int) *RoundEventUpdateOne {
	_u.mutation.AddPromptsServed(v)
	return _u
}

// SetExcellentCount sets the "excellent_count" field.
func (_u *RoundEventUpdateOne) SetExcellentCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetExcellentCount()
	_u.mutation.SetExcellentCount(v)
	return _u
}

// SetNillableExcellentCount sets the "excellent_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableExcellentCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetExcellentCount(*v)
	}
	return _u
}

// AddExcellentCount adds value to the "excellent_count" field.
func (_u *RoundEventUpdateOne) AddExcellentCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddExcellentCount(v)
	return _u
}

// SetCloseCount sets the "close_count" field.
func (_u *RoundEventUpdateOne) SetCloseCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetCloseCount()
	_u.mutation.SetCloseCount(v)
	return _u
}

// SetNillableCloseCount sets the "close_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableCloseCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetCloseCount(*v)
	}
	return _u
}

// AddCloseCount adds value to the "close_count" field.
func (_u *RoundEventUpdateOne) AddCloseCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddCloseCount(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *RoundEventUpdateOne) SetRetryCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRetryCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *RoundEventUpdateOne) AddRetryCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUnscoredCount sets the "unscored_count" field.
func (_u *RoundEventUpdateOne) SetUnscoredCount(v int) *RoundEventUpdateOne {
	_u.mutation.ResetUnscoredCount()
	_u.mutation.SetUnscoredCount(v)
	return _u
}

// SetNillableUnscoredCount sets the "unscored_count" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableUnscoredCount(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetUnscoredCount(*v)
	}
	return _u
}

// AddUnscoredCount adds value to the "unscored_count" field.
func (_u *RoundEventUpdateOne) AddUnscoredCount(v int) *RoundEventUpdateOne {
	_u.mutation.AddUnscoredCount(v)
	return _u
}

// SetScoreGained sets the "score_gained" field.
func (_u *RoundEventUpdateOne) SetScoreGained(v int) *RoundEventUpdateOne {
	_u.mutation.ResetScoreGained()
	_u.mutation.SetScoreGained(v)
	return _u
}

// SetNillableScoreGained sets the "score_gained" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableScoreGained(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetScoreGained(*v)
	}
	return _u
}

// AddScoreGained adds value to the "score_gained" field.
func (_u *RoundEventUpdateOne) AddScoreGained(v int) *RoundEventUpdateOne {
	_u.mutation.AddScoreGained(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *RoundEventUpdateOne) SetTotalScore(v int) *RoundEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTotalScore(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *RoundEventUpdateOne) AddTotalScore(v int) *RoundEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *RoundEventUpdateOne) SetDurationSecs(v int) *RoundEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableDurationSecs(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *RoundEventUpdateOne) AddDurationSecs(v int) *RoundEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := roundevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(roundevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(roundevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(roundevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptList(); ok {
		_spec.SetField(roundevent.FieldPromptList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPromptList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldPromptList, value)
		})
	}
	if _u.mutation.PromptListCleared() {
		_spec.ClearField(roundevent.FieldPromptList, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptsServed(); ok {
		_spec.SetField(roundevent.FieldPromptsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptsServed(); ok {
		_spec.AddField(roundevent.FieldPromptsServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExcellentCount(); ok {
		_spec.SetField(roundevent.FieldExcellentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExcellentCount(); ok {
		_spec.AddField(roundevent.FieldExcellentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CloseCount(); ok {
		_spec.SetField(roundevent.FieldCloseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCloseCount(); ok {
		_spec.AddField(roundevent.FieldCloseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(roundevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(roundevent.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnscoredCount(); ok {
		_spec.SetField(roundevent.FieldUnscoredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnscoredCount(); ok {
		_spec.AddField(roundevent.FieldUnscoredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreGained(); ok {
		_spec.SetField(roundevent.FieldScoreGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreGained(); ok {
		_spec.AddField(roundevent.FieldScoreGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(roundevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(roundevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(roundevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(roundevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
