// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/echoz/ent/attemptevent"
	"github.com/abhisek/echoz/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *AttemptEventUpdate) SetRoundID(v string) *AttemptEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableRoundID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *AttemptEventUpdate) SetPromptID(v string) *AttemptEventUpdate {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePromptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AttemptEventUpdate) SetLanguage(v string) *AttemptEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLanguage(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AttemptEventUpdate) SetCategory(v string) *AttemptEventUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCategory(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExpectedText sets the "expected_text" field.
func (_u *AttemptEventUpdate) SetExpectedText(v string) *AttemptEventUpdate {
	_u.mutation.SetExpectedText(v)
	return _u
}

// SetNillableExpectedText sets the "expected_text" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableExpectedText(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetExpectedText(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AttemptEventUpdate) SetTranscript(v string) *AttemptEventUpdate {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTranscript(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AttemptEventUpdate) SetOutcome(v string) *AttemptEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOutcome(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AttemptEventUpdate) SetTier(v string) *AttemptEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTier(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *AttemptEventUpdate) SetSimilarity(v float64) *AttemptEventUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSimilarity(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *AttemptEventUpdate) AddSimilarity(v float64) *AttemptEventUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetScoreDelta sets the "score_delta" field.
func (_u *AttemptEventUpdate) SetScoreDelta(v int) *AttemptEventUpdate {
	_u.mutation.ResetScoreDelta()
	_u.mutation.SetScoreDelta(v)
	return _u
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScoreDelta(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScoreDelta(*v)
	}
	return _u
}

// AddScoreDelta adds value to the "score_delta" field.
func (_u *AttemptEventUpdate) AddScoreDelta(v int) *AttemptEventUpdate {
	_u.mutation.AddScoreDelta(v)
	return _u
}

// SetListenedMs sets the "listened_ms" field.
func (_u *AttemptEventUpdate) SetListenedMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetListenedMs()
	_u.mutation.SetListenedMs(v)
	return _u
}

// SetNillableListenedMs sets the "listened_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableListenedMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetListenedMs(*v)
	}
	return _u
}

// AddListenedMs adds value to the "listened_ms" field.
func (_u *AttemptEventUpdate) AddListenedMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddListenedMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AttemptEventUpdate) SetErrorMessage(v string) *AttemptEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableErrorMessage(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptID(); ok {
		if err := attemptevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.prompt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedText(); ok {
		if err := attemptevent.ExpectedTextValidator(v); err != nil {
			return &ValidationError{Name: "expected_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(attemptevent.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(attemptevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(attemptevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedText(); ok {
		_spec.SetField(attemptevent.FieldExpectedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(attemptevent.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(attemptevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(attemptevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreDelta(); ok {
		_spec.SetField(attemptevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreDelta(); ok {
		_spec.AddField(attemptevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListenedMs(); ok {
		_spec.SetField(attemptevent.FieldListenedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedListenedMs(); ok {
		_spec.AddField(attemptevent.FieldListenedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(attemptevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *AttemptEventUpdateOne) SetRoundID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableRoundID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPromptID sets the "prompt_id" field.
func (_u *AttemptEventUpdateOne) SetPromptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPromptID(v)
	return _u
}

// SetNillablePromptID sets the "prompt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePromptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPromptID(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AttemptEventUpdateOne) SetLanguage(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLanguage(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AttemptEventUpdateOne) SetCategory(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCategory(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExpectedText sets the "expected_text" field.
func (_u *AttemptEventUpdateOne) SetExpectedText(v string) *AttemptEventUpdateOne {
	_u.mutation.SetExpectedText(v)
	return _u
}

// SetNillableExpectedText sets the "expected_text" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableExpectedText(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetExpectedText(*v)
	}
	return _u
}

// SetTranscript sets the "transcript" field.
func (_u *AttemptEventUpdateOne) SetTranscript(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTranscript(v)
	return _u
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTranscript(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTranscript(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *AttemptEventUpdateOne) SetOutcome(v string) *AttemptEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOutcome(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AttemptEventUpdateOne) SetTier(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTier(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *AttemptEventUpdateOne) SetSimilarity(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSimilarity(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *AttemptEventUpdateOne) AddSimilarity(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// SetScoreDelta sets the "score_delta" field.
func (_u *AttemptEventUpdateOne) SetScoreDelta(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScoreDelta()
	_u.mutation.SetScoreDelta(v)
	return _u
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScoreDelta(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScoreDelta(*v)
	}
	return _u
}

// AddScoreDelta adds value to the "score_delta" field.
func (_u *AttemptEventUpdateOne) AddScoreDelta(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScoreDelta(v)
	return _u
}

// SetListenedMs sets the "listened_ms" field.
func (_u *AttemptEventUpdateOne) SetListenedMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetListenedMs()
	_u.mutation.SetListenedMs(v)
	return _u
}

// SetNillableListenedMs sets the "listened_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableListenedMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetListenedMs(*v)
	}
	return _u
}

// AddListenedMs adds value to the "listened_ms" field.
func (_u *AttemptEventUpdateOne) AddListenedMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddListenedMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AttemptEventUpdateOne) SetErrorMessage(v string) *AttemptEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableErrorMessage(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptID(); ok {
		if err := attemptevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.prompt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedText(); ok {
		if err := attemptevent.ExpectedTextValidator(v); err != nil {
			return &ValidationError{Name: "expected_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptID(); ok {
		_spec.SetField(attemptevent.FieldPromptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(attemptevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(attemptevent.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedText(); ok {
		_spec.SetField(attemptevent.FieldExpectedText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Transcript(); ok {
		_spec.SetField(attemptevent.FieldTranscript, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(attemptevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(attemptevent.FieldSimilarity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreDelta(); ok {
		_spec.SetField(attemptevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreDelta(); ok {
		_spec.AddField(attemptevent.FieldScoreDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ListenedMs(); ok {
		_spec.SetField(attemptevent.FieldListenedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedListenedMs(); ok {
		_spec.AddField(attemptevent.FieldListenedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(attemptevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
