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
	"github.com/abhisek/echoz/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRoundID sets the "round_id" field.
func (_c *RoundEventCreate) SetRoundID(v string) *RoundEventCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *RoundEventCreate) SetAction(v string) *RoundEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *RoundEventCreate) SetLanguage(v string) *RoundEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableLanguage(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *RoundEventCreate) SetCategory(v string) *RoundEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableCategory(v *string) *RoundEventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPromptList sets the "prompt_list" field.
func (_c *RoundEventCreate) SetPromptList(v []string) *RoundEventCreate {
	_c.mutation.SetPromptList(v)
	return _c
}

// SetPromptsServed sets the "prompts_served" field.
func (_c *RoundEventCreate) SetPromptsServed(v int) *RoundEventCreate {
	_c.mutation.SetPromptsServed(v)
	return _c
}

// SetNillablePromptsServed sets the "prompts_served" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillablePromptsServed(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetPromptsServed(*v)
	}
	return _c
}

// SetExcellentCount sets the "excellent_count" field.
func (_c *RoundEventCreate) SetExcellentCount(v int) *RoundEventCreate {
	_c.mutation.SetExcellentCount(v)
	return _c
}

// SetNillableExcellentCount sets the "excellent_count" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableExcellentCount(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetExcellentCount(*v)
	}
	return _c
}

// SetCloseCount sets the "close_count" field.
func (_c *RoundEventCreate) SetCloseCount(v int) *RoundEventCreate {
	_c.mutation.SetCloseCount(v)
	return _c
}

// SetNillableCloseCount sets the "close_count" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableCloseCount(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetCloseCount(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *RoundEventCreate) SetRetryCount(v int) *RoundEventCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableRetryCount(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetUnscoredCount sets the "unscored_count" field.
func (_c *RoundEventCreate) SetUnscoredCount(v int) *RoundEventCreate {
	_c.mutation.SetUnscoredCount(v)
	return _c
}

// SetNillableUnscoredCount sets the "unscored_count" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableUnscoredCount(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetUnscoredCount(*v)
	}
	return _c
}

// SetScoreGained sets the "score_gained" field.
func (_c *RoundEventCreate) SetScoreGained(v int) *RoundEventCreate {
	_c.mutation.SetScoreGained(v)
	return _c
}

// SetNillableScoreGained sets the "score_gained" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableScoreGained(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetScoreGained(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *RoundEventCreate) SetTotalScore(v int) *RoundEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTotalScore(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *RoundEventCreate) SetDurationSecs(v int) *RoundEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableDurationSecs(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := roundevent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := roundevent.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.PromptsServed(); !ok {
		v := roundevent.DefaultPromptsServed
		_c.mutation.SetPromptsServed(v)
	}
	if _, ok := _c.mutation.ExcellentCount(); !ok {
		v := roundevent.DefaultExcellentCount
		_c.mutation.SetExcellentCount(v)
	}
	if _, ok := _c.mutation.CloseCount(); !ok {
		v := roundevent.DefaultCloseCount
		_c.mutation.SetCloseCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := roundevent.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.UnscoredCount(); !ok {
		v := roundevent.DefaultUnscoredCount
		_c.mutation.SetUnscoredCount(v)
	}
	if _, ok := _c.mutation.ScoreGained(); !ok {
		v := roundevent.DefaultScoreGained
		_c.mutation.SetScoreGained(v)
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		v := roundevent.DefaultTotalScore
		_c.mutation.SetTotalScore(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := roundevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "RoundEvent.round_id"`)}
	}
	if v, ok := _c.mutation.RoundID(); ok {
		if err := roundevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.round_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "RoundEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := roundevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "RoundEvent.language"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "RoundEvent.category"`)}
	}
	if _, ok := _c.mutation.PromptsServed(); !ok {
		return &ValidationError{Name: "prompts_served", err: errors.New(`ent: missing required field "RoundEvent.prompts_served"`)}
	}
	if _, ok := _c.mutation.ExcellentCount(); !ok {
		return &ValidationError{Name: "excellent_count", err: errors.New(`ent: missing required field "RoundEvent.excellent_count"`)}
	}
	if _, ok := _c.mutation.CloseCount(); !ok {
		return &ValidationError{Name: "close_count", err: errors.New(`ent: missing required field "RoundEvent.close_count"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "RoundEvent.retry_count"`)}
	}
	if _, ok := _c.mutation.UnscoredCount(); !ok {
		return &ValidationError{Name: "unscored_count", err: errors.New(`ent: missing required field "RoundEvent.unscored_count"`)}
	}
	if _, ok := _c.mutation.ScoreGained(); !ok {
		return &ValidationError{Name: "score_gained", err: errors.New(`ent: missing required field "RoundEvent.score_gained"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "RoundEvent.total_score"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "RoundEvent.duration_secs"`)}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
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

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RoundID(); ok {
		_spec.SetField(roundevent.FieldRoundID, field.TypeString, value)
		_node.RoundID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(roundevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(roundevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(roundevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.PromptList(); ok {
		_spec.SetField(roundevent.FieldPromptList, field.TypeJSON, value)
		_node.PromptList = value
	}
	if value, ok := _c.mutation.PromptsServed(); ok {
		_spec.SetField(roundevent.FieldPromptsServed, field.TypeInt, value)
		_node.PromptsServed = value
	}
	if value, ok := _c.mutation.ExcellentCount(); ok {
		_spec.SetField(roundevent.FieldExcellentCount, field.TypeInt, value)
		_node.ExcellentCount = value
	}
	if value, ok := _c.mutation.CloseCount(); ok {
		_spec.SetField(roundevent.FieldCloseCount, field.TypeInt, value)
		_node.CloseCount = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(roundevent.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.UnscoredCount(); ok {
		_spec.SetField(roundevent.FieldUnscoredCount, field.TypeInt, value)
		_node.UnscoredCount = value
	}
	if value, ok := _c.mutation.ScoreGained(); ok {
		_spec.SetField(roundevent.FieldScoreGained, field.TypeInt, value)
		_node.ScoreGained = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(roundevent.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(roundevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoundEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoundEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RoundEventCreate) OnConflict(opts ...sql.ConflictOption) *RoundEventUpsertOne {
	_c.conflict = opts
	return &RoundEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoundEventCreate) OnConflictColumns(columns ...string) *RoundEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoundEventUpsertOne{
		create: _c,
	}
}

type (
	// RoundEventUpsertOne is the builder for "upsert"-ing
	//  one RoundEvent node.
	RoundEventUpsertOne struct {
		create *RoundEventCreate
	}

	// RoundEventUpsert is the "OnConflict" setter.
	RoundEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetRoundID sets the "round_id" field.
func (u *RoundEventUpsert) SetRoundID(v string) *RoundEventUpsert {
	u.Set(roundevent.FieldRoundID, v)
	return u
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateRoundID() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldRoundID)
	return u
}

// SetAction sets the "action" field.
func (u *RoundEventUpsert) SetAction(v string) *RoundEventUpsert {
	u.Set(roundevent.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateAction() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldAction)
	return u
}

// SetLanguage sets the "language" field.
func (u *RoundEventUpsert) SetLanguage(v string) *RoundEventUpsert {
	u.Set(roundevent.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateLanguage() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldLanguage)
	return u
}

// SetCategory sets the "category" field.
func (u *RoundEventUpsert) SetCategory(v string) *RoundEventUpsert {
	u.Set(roundevent.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateCategory() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldCategory)
	return u
}

// SetPromptList sets the "prompt_list" field.
func (u *RoundEventUpsert) SetPromptList(v []string) *RoundEventUpsert {
	u.Set(roundevent.FieldPromptList, v)
	return u
}

// UpdatePromptList sets the "prompt_list" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdatePromptList() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldPromptList)
	return u
}

// ClearPromptList clears the value of the "prompt_list" field.
func (u *RoundEventUpsert) ClearPromptList() *RoundEventUpsert {
	u.SetNull(roundevent.FieldPromptList)
	return u
}

// SetPromptsServed sets the "prompts_served" field.
func (u *RoundEventUpsert) SetPromptsServed(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldPromptsServed, v)
	return u
}

// UpdatePromptsServed sets the "prompts_served" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdatePromptsServed() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldPromptsServed)
	return u
}

// AddPromptsServed adds v to the "prompts_served" field.
func (u *RoundEventUpsert) AddPromptsServed(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldPromptsServed, v)
	return u
}

// SetExcellentCount sets the "excellent_count" field.
func (u *RoundEventUpsert) SetExcellentCount(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldExcellentCount, v)
	return u
}

// UpdateExcellentCount sets the "excellent_count" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateExcellentCount() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldExcellentCount)
	return u
}

// AddExcellentCount adds v to the "excellent_count" field.
func (u *RoundEventUpsert) AddExcellentCount(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldExcellentCount, v)
	return u
}

// SetCloseCount sets the "close_count" field.
func (u *RoundEventUpsert) SetCloseCount(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldCloseCount, v)
	return u
}

// UpdateCloseCount sets the "close_count" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateCloseCount() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldCloseCount)
	return u
}

// AddCloseCount adds v to the "close_count" field.
func (u *RoundEventUpsert) AddCloseCount(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldCloseCount, v)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *RoundEventUpsert) SetRetryCount(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateRetryCount() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RoundEventUpsert) AddRetryCount(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldRetryCount, v)
	return u
}

// SetUnscoredCount sets the "unscored_count" field.
func (u *RoundEventUpsert) SetUnscoredCount(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldUnscoredCount, v)
	return u
}

// UpdateUnscoredCount sets the "unscored_count" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateUnscoredCount() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldUnscoredCount)
	return u
}

// AddUnscoredCount adds v to the "unscored_count" field.
func (u *RoundEventUpsert) AddUnscoredCount(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldUnscoredCount, v)
	return u
}

// SetScoreGained sets the "score_gained" field.
func (u *RoundEventUpsert) SetScoreGained(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldScoreGained, v)
	return u
}

// UpdateScoreGained sets the "score_gained" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateScoreGained() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldScoreGained)
	return u
}

// AddScoreGained adds v to the "score_gained" field.
func (u *RoundEventUpsert) AddScoreGained(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldScoreGained, v)
	return u
}

// SetTotalScore sets the "total_score" field.
func (u *RoundEventUpsert) SetTotalScore(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldTotalScore, v)
	return u
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateTotalScore() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldTotalScore)
	return u
}

// AddTotalScore adds v to the "total_score" field.
func (u *RoundEventUpsert) AddTotalScore(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldTotalScore, v)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RoundEventUpsert) SetDurationSecs(v int) *RoundEventUpsert {
	u.Set(roundevent.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RoundEventUpsert) UpdateDurationSecs() *RoundEventUpsert {
	u.SetExcluded(roundevent.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RoundEventUpsert) AddDurationSecs(v int) *RoundEventUpsert {
	u.Add(roundevent.FieldDurationSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RoundEventUpsertOne) UpdateNewValues() *RoundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(roundevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(roundevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoundEventUpsertOne) Ignore() *RoundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoundEventUpsertOne) DoNothing() *RoundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoundEventCreate.OnConflict
// documentation for more info.
func (u *RoundEventUpsertOne) Update(set func(*RoundEventUpsert)) *RoundEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoundEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundID sets the "round_id" field.
func (u *RoundEventUpsertOne) SetRoundID(v string) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateRoundID() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetAction sets the "action" field.
func (u *RoundEventUpsertOne) SetAction(v string) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateAction() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateAction()
	})
}

// SetLanguage sets the "language" field.
func (u *RoundEventUpsertOne) SetLanguage(v string) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateLanguage() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateLanguage()
	})
}

// SetCategory sets the "category" field.
func (u *RoundEventUpsertOne) SetCategory(v string) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateCategory() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateCategory()
	})
}

// SetPromptList sets the "prompt_list" field.
func (u *RoundEventUpsertOne) SetPromptList(v []string) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetPromptList(v)
	})
}

// UpdatePromptList sets the "prompt_list" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdatePromptList() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdatePromptList()
	})
}

// ClearPromptList clears the value of the "prompt_list" field.
func (u *RoundEventUpsertOne) ClearPromptList() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.ClearPromptList()
	})
}

// SetPromptsServed sets the "prompts_served" field.
func (u *RoundEventUpsertOne) SetPromptsServed(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetPromptsServed(v)
	})
}

// AddPromptsServed adds v to the "prompts_served" field.
func (u *RoundEventUpsertOne) AddPromptsServed(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddPromptsServed(v)
	})
}

// UpdatePromptsServed sets the "prompts_served" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdatePromptsServed() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdatePromptsServed()
	})
}

// SetExcellentCount sets the "excellent_count" field.
func (u *RoundEventUpsertOne) SetExcellentCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetExcellentCount(v)
	})
}

// AddExcellentCount adds v to the "excellent_count" field.
func (u *RoundEventUpsertOne) AddExcellentCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddExcellentCount(v)
	})
}

// UpdateExcellentCount sets the "excellent_count" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateExcellentCount() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateExcellentCount()
	})
}

// SetCloseCount sets the "close_count" field.
func (u *RoundEventUpsertOne) SetCloseCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetCloseCount(v)
	})
}

// AddCloseCount adds v to the "close_count" field.
func (u *RoundEventUpsertOne) AddCloseCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddCloseCount(v)
	})
}

// UpdateCloseCount sets the "close_count" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateCloseCount() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateCloseCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RoundEventUpsertOne) SetRetryCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RoundEventUpsertOne) AddRetryCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateRetryCount() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetUnscoredCount sets the "unscored_count" field.
func (u *RoundEventUpsertOne) SetUnscoredCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetUnscoredCount(v)
	})
}

// AddUnscoredCount adds v to the "unscored_count" field.
func (u *RoundEventUpsertOne) AddUnscoredCount(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddUnscoredCount(v)
	})
}

// UpdateUnscoredCount sets the "unscored_count" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateUnscoredCount() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateUnscoredCount()
	})
}

// SetScoreGained sets the "score_gained" field.
func (u *RoundEventUpsertOne) SetScoreGained(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetScoreGained(v)
	})
}

// AddScoreGained adds v to the "score_gained" field.
func (u *RoundEventUpsertOne) AddScoreGained(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddScoreGained(v)
	})
}

// UpdateScoreGained sets the "score_gained" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateScoreGained() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateScoreGained()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *RoundEventUpsertOne) SetTotalScore(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *RoundEventUpsertOne) AddTotalScore(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateTotalScore() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateTotalScore()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RoundEventUpsertOne) SetDurationSecs(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RoundEventUpsertOne) AddDurationSecs(v int) *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RoundEventUpsertOne) UpdateDurationSecs() *RoundEventUpsertOne {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *RoundEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoundEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoundEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoundEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoundEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
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
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoundEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoundEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *RoundEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoundEventUpsertBulk {
	_c.conflict = opts
	return &RoundEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoundEventCreateBulk) OnConflictColumns(columns ...string) *RoundEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoundEventUpsertBulk{
		create: _c,
	}
}

// RoundEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RoundEvent nodes.
type RoundEventUpsertBulk struct {
	create *RoundEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RoundEventUpsertBulk) UpdateNewValues() *RoundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(roundevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(roundevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoundEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoundEventUpsertBulk) Ignore() *RoundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoundEventUpsertBulk) DoNothing() *RoundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoundEventCreateBulk.OnConflict
// documentation for more info.
func (u *RoundEventUpsertBulk) Update(set func(*RoundEventUpsert)) *RoundEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoundEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetRoundID sets the "round_id" field.
func (u *RoundEventUpsertBulk) SetRoundID(v string) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetRoundID(v)
	})
}

// UpdateRoundID sets the "round_id" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateRoundID() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateRoundID()
	})
}

// SetAction sets the "action" field.
func (u *RoundEventUpsertBulk) SetAction(v string) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateAction() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateAction()
	})
}

// SetLanguage sets the "language" field.
func (u *RoundEventUpsertBulk) SetLanguage(v string) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateLanguage() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateLanguage()
	})
}

// SetCategory sets the "category" field.
func (u *RoundEventUpsertBulk) SetCategory(v string) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateCategory() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateCategory()
	})
}

// SetPromptList sets the "prompt_list" field.
func (u *RoundEventUpsertBulk) SetPromptList(v []string) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetPromptList(v)
	})
}

// UpdatePromptList sets the "prompt_list" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdatePromptList() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdatePromptList()
	})
}

// ClearPromptList clears the value of the "prompt_list" field.
func (u *RoundEventUpsertBulk) ClearPromptList() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.ClearPromptList()
	})
}

// SetPromptsServed sets the "prompts_served" field.
func (u *RoundEventUpsertBulk) SetPromptsServed(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetPromptsServed(v)
	})
}

// AddPromptsServed adds v to the "prompts_served" field.
func (u *RoundEventUpsertBulk) AddPromptsServed(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddPromptsServed(v)
	})
}

// UpdatePromptsServed sets the "prompts_served" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdatePromptsServed() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdatePromptsServed()
	})
}

// SetExcellentCount sets the "excellent_count" field.
func (u *RoundEventUpsertBulk) SetExcellentCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetExcellentCount(v)
	})
}

// AddExcellentCount adds v to the "excellent_count" field.
func (u *RoundEventUpsertBulk) AddExcellentCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddExcellentCount(v)
	})
}

// UpdateExcellentCount sets the "excellent_count" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateExcellentCount() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateExcellentCount()
	})
}

// SetCloseCount sets the "close_count" field.
func (u *RoundEventUpsertBulk) SetCloseCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetCloseCount(v)
	})
}

// AddCloseCount adds v to the "close_count" field.
func (u *RoundEventUpsertBulk) AddCloseCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddCloseCount(v)
	})
}

// UpdateCloseCount sets the "close_count" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateCloseCount() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateCloseCount()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *RoundEventUpsertBulk) SetRetryCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *RoundEventUpsertBulk) AddRetryCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateRetryCount() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateRetryCount()
	})
}

// SetUnscoredCount sets the "unscored_count" field.
func (u *RoundEventUpsertBulk) SetUnscoredCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetUnscoredCount(v)
	})
}

// AddUnscoredCount adds v to the "unscored_count" field.
func (u *RoundEventUpsertBulk) AddUnscoredCount(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddUnscoredCount(v)
	})
}

// UpdateUnscoredCount sets the "unscored_count" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateUnscoredCount() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateUnscoredCount()
	})
}

// SetScoreGained sets the "score_gained" field.
func (u *RoundEventUpsertBulk) SetScoreGained(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetScoreGained(v)
	})
}

// AddScoreGained adds v to the "score_gained" field.
func (u *RoundEventUpsertBulk) AddScoreGained(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddScoreGained(v)
	})
}

// UpdateScoreGained sets the "score_gained" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateScoreGained() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateScoreGained()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *RoundEventUpsertBulk) SetTotalScore(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *RoundEventUpsertBulk) AddTotalScore(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateTotalScore() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateTotalScore()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *RoundEventUpsertBulk) SetDurationSecs(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *RoundEventUpsertBulk) AddDurationSecs(v int) *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *RoundEventUpsertBulk) UpdateDurationSecs() *RoundEventUpsertBulk {
	return u.Update(func(s *RoundEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *RoundEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoundEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoundEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoundEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
