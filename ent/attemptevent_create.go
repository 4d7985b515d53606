// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/echoz/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *AttemptEventCreate) SetRoundID(v string) *AttemptEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetPromptID sets the "prompt_id" field.
func (_c *AttemptEventCreate) SetPromptID(v string) *AttemptEventCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *AttemptEventCreate) SetLanguage(v string) *AttemptEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AttemptEventCreate) SetCategory(v string) *AttemptEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableCategory(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetExpectedText sets the "expected_text" field.
func (_c *AttemptEventCreate) SetExpectedText(v string) *AttemptEventCreate {
	_c.mutation.SetExpectedText(v)
	return _c
}

// SetTranscript sets the "transcript" field.
func (_c *AttemptEventCreate) SetTranscript(v string) *AttemptEventCreate {
	_c.mutation.SetTranscript(v)
	return _c
}

// SetNillableTranscript sets the "transcript" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTranscript(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetTranscript(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *AttemptEventCreate) SetOutcome(v string) *AttemptEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AttemptEventCreate) SetTier(v string) *AttemptEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTier(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetSimilarity sets the "similarity" field.
func (_c *AttemptEventCreate) SetSimilarity(v float64) *AttemptEventCreate {
	_c.mutation.SetSimilarity(v)
	return _c
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSimilarity(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetSimilarity(*v)
	}
	return _c
}

// SetScoreDelta sets the "score_delta" field.
func (_c *AttemptEventCreate) SetScoreDelta(v int) *AttemptEventCreate {
	_c.mutation.SetScoreDelta(v)
	return _c
}

// SetNillableScoreDelta sets the "score_delta" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableScoreDelta(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetScoreDelta(*v)
	}
	return _c
}

// SetListenedMs sets the "listened_ms" field.
func (_c *AttemptEventCreate) SetListenedMs(v int64) *AttemptEventCreate {
	_c.mutation.SetListenedMs(v)
	return _c
}

// SetNillableListenedMs sets the "listened_ms" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableListenedMs(v *int64) *AttemptEventCreate {
	if v != nil {
		_c.SetListenedMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AttemptEventCreate) SetErrorMessage(v string) *AttemptEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableErrorMessage(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := attemptevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		v := attemptevent.DefaultTranscript
		_c.mutation.SetTranscript(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := attemptevent.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		v := attemptevent.DefaultSimilarity
		_c.mutation.SetSimilarity(v)
	}
	if _, ok := _c.mutation.ScoreDelta(); !ok {
		v := attemptevent.DefaultScoreDelta
		_c.mutation.SetScoreDelta(v)
	}
	if _, ok := _c.mutation.ListenedMs(); !ok {
		v := attemptevent.DefaultListenedMs
		_c.mutation.SetListenedMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := attemptevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "AttemptEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := attemptevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "AttemptEvent.prompt_id"`)}
	}
	if v, ok := _c.mutation.PromptID(); ok {
		if err := attemptevent.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.prompt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "AttemptEvent.language"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AttemptEvent.category"`)}
	}
	if _, ok := _c.mutation.ExpectedText(); !ok {
		return &ValidationError{Name: "expected_text", err: errors.New(`ent: missing required field "AttemptEvent.expected_text"`)}
	}
	if v, ok := _c.mutation.ExpectedText(); ok {
		if err := attemptevent.ExpectedTextValidator(v); err != nil {
			return &ValidationError{Name: "expected_text", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.expected_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Transcript(); !ok {
		return &ValidationError{Name: "transcript", err: errors.New(`ent: missing required field "AttemptEvent.transcript"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "AttemptEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := attemptevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AttemptEvent.tier"`)}
	}
	if _, ok := _c.mutation.Similarity(); !ok {
		return &ValidationError{Name: "similarity", err: errors.New(`ent: missing required field "AttemptEvent.similarity"`)}
	}
	if _, ok := _c.mutation.ScoreDelta(); !ok {
		return &ValidationError{Name: "score_delta", err: errors.New(`ent: missing required field "AttemptEvent.score_delta"`)}
	}
	if _, ok := _c.mutation.ListenedMs(); !ok {
		return &ValidationError{Name: "listened_ms", err: errors.New(`ent: missing required field "AttemptEvent.listened_ms"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AttemptEvent.error_message"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(attemptevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(attemptevent.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(attemptevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(attemptevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ExpectedText(); ok {
		_spec.SetField(attemptevent.FieldExpectedText, field.TypeString, value)
		_node.ExpectedText = value
	}
	if value, ok := _c.mutation.Transcript(); ok {
		_spec.SetField(attemptevent.FieldTranscript, field.TypeString, value)
		_node.Transcript = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(attemptevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(attemptevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Similarity(); ok {
		_spec.SetField(attemptevent.FieldSimilarity, field.TypeFloat64, value)
		_node.Similarity = value
	}
	if value, ok := _c.mutation.ScoreDelta(); ok {
		_spec.SetField(attemptevent.FieldScoreDelta, field.TypeInt, value)
		_node.ScoreDelta = value
	}
	if value, ok := _c.mutation.ListenedMs(); ok {
		_spec.SetField(attemptevent.FieldListenedMs, field.TypeInt64, value)
		_node.ListenedMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(attemptevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	_c.conflict = opts
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: _c,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsert) SetRoundID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldRoundID, v)
	return u
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateRoundID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldRoundID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsert) SetSessionID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSessionID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSessionID)
	return u
}

// SetPromptID sets the "prompt_id" field.
func (u *AttemptEventUpsert) SetPromptID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldPromptID, v)
	return u
}

// UpdatePromptID sets the "prompt_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdatePromptID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldPromptID)
	return u
}

// SetLanguage sets the "language" field.
func (u *AttemptEventUpsert) SetLanguage(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateLanguage() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldLanguage)
	return u
}

// SetCategory sets the "category" field.
func (u *AttemptEventUpsert) SetCategory(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCategory() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCategory)
	return u
}

// SetExpectedText sets the "expected_text" field.
func (u *AttemptEventUpsert) SetExpectedText(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldExpectedText, v)
	return u
}

// UpdateExpectedText sets the "expected_text" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateExpectedText() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldExpectedText)
	return u
}

// SetTranscript sets the "transcript" field.
func (u *AttemptEventUpsert) SetTranscript(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTranscript, v)
	return u
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTranscript() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTranscript)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *AttemptEventUpsert) SetOutcome(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateOutcome() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldOutcome)
	return u
}

// SetTier sets the "tier" field.
func (u *AttemptEventUpsert) SetTier(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTier() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTier)
	return u
}

// SetSimilarity sets the "similarity" field.
func (u *AttemptEventUpsert) SetSimilarity(v float64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSimilarity, v)
	return u
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSimilarity() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSimilarity)
	return u
}

// AddSimilarity adds v to the "similarity" field.
func (u *AttemptEventUpsert) AddSimilarity(v float64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldSimilarity, v)
	return u
}

// SetScoreDelta sets the "score_delta" field.
func (u *AttemptEventUpsert) SetScoreDelta(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldScoreDelta, v)
	return u
}

// UpdateScoreDelta sets the "score_delta" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateScoreDelta() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldScoreDelta)
	return u
}

// AddScoreDelta adds v to the "score_delta" field.
func (u *AttemptEventUpsert) AddScoreDelta(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldScoreDelta, v)
	return u
}

// SetListenedMs sets the "listened_ms" field.
func (u *AttemptEventUpsert) SetListenedMs(v int64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldListenedMs, v)
	return u
}

// UpdateListenedMs sets the "listened_ms" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateListenedMs() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldListenedMs)
	return u
}

// AddListenedMs adds v to the "listened_ms" field.
func (u *AttemptEventUpsert) AddListenedMs(v int64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldListenedMs, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AttemptEventUpsert) SetErrorMessage(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateErrorMessage() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsertOne) SetRoundID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateRoundID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertOne) SetSessionID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSessionID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetPromptID sets the "prompt_id" field.
func (u *AttemptEventUpsertOne) SetPromptID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPromptID(v)
	})
}

// UpdatePromptID sets the "prompt_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdatePromptID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePromptID()
	})
}

// SetLanguage sets the "language" field.
func (u *AttemptEventUpsertOne) SetLanguage(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateLanguage() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLanguage()
	})
}

// SetCategory sets the "category" field.
func (u *AttemptEventUpsertOne) SetCategory(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCategory() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCategory()
	})
}

// SetExpectedText sets the "expected_text" field.
func (u *AttemptEventUpsertOne) SetExpectedText(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExpectedText(v)
	})
}

// UpdateExpectedText sets the "expected_text" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateExpectedText() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExpectedText()
	})
}

// SetTranscript sets the "transcript" field.
func (u *AttemptEventUpsertOne) SetTranscript(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTranscript() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTranscript()
	})
}

// SetOutcome sets the "outcome" field.
func (u *AttemptEventUpsertOne) SetOutcome(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateOutcome() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateOutcome()
	})
}

// SetTier sets the "tier" field.
func (u *AttemptEventUpsertOne) SetTier(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTier() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTier()
	})
}

// SetSimilarity sets the "similarity" field.
func (u *AttemptEventUpsertOne) SetSimilarity(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSimilarity(v)
	})
}

// AddSimilarity adds v to the "similarity" field.
func (u *AttemptEventUpsertOne) AddSimilarity(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddSimilarity(v)
	})
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSimilarity() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSimilarity()
	})
}

// SetScoreDelta sets the "score_delta" field.
func (u *AttemptEventUpsertOne) SetScoreDelta(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetScoreDelta(v)
	})
}

// AddScoreDelta adds v to the "score_delta" field.
func (u *AttemptEventUpsertOne) AddScoreDelta(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddScoreDelta(v)
	})
}

// UpdateScoreDelta sets the "score_delta" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateScoreDelta() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateScoreDelta()
	})
}

// SetListenedMs sets the "listened_ms" field.
func (u *AttemptEventUpsertOne) SetListenedMs(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetListenedMs(v)
	})
}

// AddListenedMs adds v to the "listened_ms" field.
func (u *AttemptEventUpsertOne) AddListenedMs(v int64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddListenedMs(v)
	})
}

// UpdateListenedMs sets the "listened_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateListenedMs() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateListenedMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AttemptEventUpsertOne) SetErrorMessage(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateErrorMessage() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	_c.conflict = opts
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: _c,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundID sets the "round_id" field.
func (u *AttemptEventUpsertBulk) SetRoundID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateRoundID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *AttemptEventUpsertBulk) SetSessionID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSessionID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetPromptID sets the "prompt_id" field.
func (u *AttemptEventUpsertBulk) SetPromptID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetPromptID(v)
	})
}

// UpdatePromptID sets the "prompt_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdatePromptID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdatePromptID()
	})
}

// SetLanguage sets the "language" field.
func (u *AttemptEventUpsertBulk) SetLanguage(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateLanguage() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLanguage()
	})
}

// SetCategory sets the "category" field.
func (u *AttemptEventUpsertBulk) SetCategory(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCategory() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCategory()
	})
}

// SetExpectedText sets the "expected_text" field.
func (u *AttemptEventUpsertBulk) SetExpectedText(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetExpectedText(v)
	})
}

// UpdateExpectedText sets the "expected_text" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateExpectedText() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateExpectedText()
	})
}

// SetTranscript sets the "transcript" field.
func (u *AttemptEventUpsertBulk) SetTranscript(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTranscript(v)
	})
}

// UpdateTranscript sets the "transcript" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTranscript() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTranscript()
	})
}

// SetOutcome sets the "outcome" field.
func (u *AttemptEventUpsertBulk) SetOutcome(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateOutcome() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateOutcome()
	})
}

// SetTier sets the "tier" field.
func (u *AttemptEventUpsertBulk) SetTier(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTier() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTier()
	})
}

// SetSimilarity sets the "similarity" field.
func (u *AttemptEventUpsertBulk) SetSimilarity(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSimilarity(v)
	})
}

// AddSimilarity adds v to the "similarity" field.
func (u *AttemptEventUpsertBulk) AddSimilarity(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddSimilarity(v)
	})
}

// UpdateSimilarity sets the "similarity" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSimilarity() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSimilarity()
	})
}

// SetScoreDelta sets the "score_delta" field.
func (u *AttemptEventUpsertBulk) SetScoreDelta(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetScoreDelta(v)
	})
}

// AddScoreDelta adds v to the "score_delta" field.
func (u *AttemptEventUpsertBulk) AddScoreDelta(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddScoreDelta(v)
	})
}

// UpdateScoreDelta sets the "score_delta" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateScoreDelta() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateScoreDelta()
	})
}

// SetListenedMs sets the "listened_ms" field.
func (u *AttemptEventUpsertBulk) SetListenedMs(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetListenedMs(v)
	})
}

// AddListenedMs adds v to the "listened_ms" field.
func (u *AttemptEventUpsertBulk) AddListenedMs(v int64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddListenedMs(v)
	})
}

// UpdateListenedMs sets the "listened_ms" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateListenedMs() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateListenedMs()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AttemptEventUpsertBulk) SetErrorMessage(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateErrorMessage() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
