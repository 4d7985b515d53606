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
	"github.com/abhisek/echoz/ent/mistakecount"
)

// MistakeCountCreate is the builder for creating a MistakeCount entity.
type MistakeCountCreate struct {
	config
	mutation *MistakeCountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPromptID sets the "prompt_id" field.
func (_c *MistakeCountCreate) SetPromptID(v string) *MistakeCountCreate {
	_c.mutation.SetPromptID(v)
	return _c
}

// SetMisses sets the "misses" field.
func (_c *MistakeCountCreate) SetMisses(v int) *MistakeCountCreate {
	_c.mutation.SetMisses(v)
	return _c
}

// SetNillableMisses sets the "misses" field if the given value is not nil.
func (_c *MistakeCountCreate) SetNillableMisses(v *int) *MistakeCountCreate {
	if v != nil {
		_c.SetMisses(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MistakeCountCreate) SetUpdatedAt(v time.Time) *MistakeCountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MistakeCountCreate) SetNillableUpdatedAt(v *time.Time) *MistakeCountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the MistakeCountMutation object of the builder.
func (_c *MistakeCountCreate) Mutation() *MistakeCountMutation {
	return _c.mutation
}

// Save creates the MistakeCount in the database.
func (_c *MistakeCountCreate) Save(ctx context.Context) (*MistakeCount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeCountCreate) SaveX(ctx context.Context) *MistakeCount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeCountCreate) defaults() {
	if _, ok := _c.mutation.Misses(); !ok {
		v := mistakecount.DefaultMisses
		_c.mutation.SetMisses(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mistakecount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeCountCreate) check() error {
	if _, ok := _c.mutation.PromptID(); !ok {
		return &ValidationError{Name: "prompt_id", err: errors.New(`ent: missing required field "MistakeCount.prompt_id"`)}
	}
	if v, ok := _c.mutation.PromptID(); ok {
		if err := mistakecount.PromptIDValidator(v); err != nil {
			return &ValidationError{Name: "prompt_id", err: fmt.Errorf(`ent: validator failed for field "MistakeCount.prompt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Misses(); !ok {
		return &ValidationError{Name: "misses", err: errors.New(`ent: missing required field "MistakeCount.misses"`)}
	}
	if v, ok := _c.mutation.Misses(); ok {
		if err := mistakecount.MissesValidator(v); err != nil {
			return &ValidationError{Name: "misses", err: fmt.Errorf(`ent: validator failed for field "MistakeCount.misses": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MistakeCount.updated_at"`)}
	}
	return nil
}

func (_c *MistakeCountCreate) sqlSave(ctx context.Context) (*MistakeCount, error) {
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

func (_c *MistakeCountCreate) createSpec() (*MistakeCount, *sqlgraph.CreateSpec) {
	var (
		_node = &MistakeCount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistakecount.Table, sqlgraph.NewFieldSpec(mistakecount.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PromptID(); ok {
		_spec.SetField(mistakecount.FieldPromptID, field.TypeString, value)
		_node.PromptID = value
	}
	if value, ok := _c.mutation.Misses(); ok {
		_spec.SetField(mistakecount.FieldMisses, field.TypeInt, value)
		_node.Misses = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mistakecount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MistakeCount.Create().
//		SetPromptID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MistakeCountUpsert) {
//			SetPromptID(v+v).
//		}).
//		Exec(ctx)
func (_c *MistakeCountCreate) OnConflict(opts ...sql.ConflictOption) *MistakeCountUpsertOne {
	_c.conflict = opts
	return &MistakeCountUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MistakeCountCreate) OnConflictColumns(columns ...string) *MistakeCountUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MistakeCountUpsertOne{
		create: _c,
	}
}

type (
	// MistakeCountUpsertOne is the builder for "upsert"-ing
	//  one MistakeCount node.
	MistakeCountUpsertOne struct {
		create *MistakeCountCreate
	}

	// MistakeCountUpsert is the "OnConflict" setter.
	MistakeCountUpsert struct {
		*sql.UpdateSet
	}
)

// SetMisses sets the "misses" field.
func (u *MistakeCountUpsert) SetMisses(v int) *MistakeCountUpsert {
	u.Set(mistakecount.FieldMisses, v)
	return u
}

// UpdateMisses sets the "misses" field to the value that was provided on create.
func (u *MistakeCountUpsert) UpdateMisses() *MistakeCountUpsert {
	u.SetExcluded(mistakecount.FieldMisses)
	return u
}

// AddMisses adds v to the "misses" field.
func (u *MistakeCountUpsert) AddMisses(v int) *MistakeCountUpsert {
	u.Add(mistakecount.FieldMisses, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MistakeCountUpsert) SetUpdatedAt(v time.Time) *MistakeCountUpsert {
	u.Set(mistakecount.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MistakeCountUpsert) UpdateUpdatedAt() *MistakeCountUpsert {
	u.SetExcluded(mistakecount.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MistakeCountUpsertOne) UpdateNewValues() *MistakeCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.PromptID(); exists {
			s.SetIgnore(mistakecount.FieldPromptID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MistakeCountUpsertOne) Ignore() *MistakeCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MistakeCountUpsertOne) DoNothing() *MistakeCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MistakeCountCreate.OnConflict
// documentation for more info.
func (u *MistakeCountUpsertOne) Update(set func(*MistakeCountUpsert)) *MistakeCountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MistakeCountUpsert{UpdateSet: update})
	}))
	return u
}

// SetMisses sets the "misses" field.
func (u *MistakeCountUpsertOne) SetMisses(v int) *MistakeCountUpsertOne {
	return u.Update(func(s *MistakeCountUpsert) {
		s.SetMisses(v)
	})
}

// AddMisses adds v to the "misses" field.
func (u *MistakeCountUpsertOne) AddMisses(v int) *MistakeCountUpsertOne {
	return u.Update(func(s *MistakeCountUpsert) {
		s.AddMisses(v)
	})
}

// UpdateMisses sets the "misses" field to the value that was provided on create.
func (u *MistakeCountUpsertOne) UpdateMisses() *MistakeCountUpsertOne {
	return u.Update(func(s *MistakeCountUpsert) {
		s.UpdateMisses()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MistakeCountUpsertOne) SetUpdatedAt(v time.Time) *MistakeCountUpsertOne {
	return u.Update(func(s *MistakeCountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MistakeCountUpsertOne) UpdateUpdatedAt() *MistakeCountUpsertOne {
	return u.Update(func(s *MistakeCountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MistakeCountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MistakeCountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MistakeCountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MistakeCountUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MistakeCountUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MistakeCountCreateBulk is the builder for creating many MistakeCount entities in bulk.
type MistakeCountCreateBulk struct {
	config
	err      error
	builders []*MistakeCountCreate
	conflict []sql.ConflictOption
}

// Save creates the MistakeCount entities in the database.
func (_c *MistakeCountCreateBulk) Save(ctx context.Context) ([]*MistakeCount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MistakeCount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeCountMutation)
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
func (_c *MistakeCountCreateBulk) SaveX(ctx context.Context) []*MistakeCount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MistakeCount.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MistakeCountUpsert) {
//			SetPromptID(v+v).
//		}).
//		Exec(ctx)
func (_c *MistakeCountCreateBulk) OnConflict(opts ...sql.ConflictOption) *MistakeCountUpsertBulk {
	_c.conflict = opts
	return &MistakeCountUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MistakeCountCreateBulk) OnConflictColumns(columns ...string) *MistakeCountUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MistakeCountUpsertBulk{
		create: _c,
	}
}

// MistakeCountUpsertBulk is the builder for "upsert"-ing
// a bulk of MistakeCount nodes.
type MistakeCountUpsertBulk struct {
	create *MistakeCountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MistakeCountUpsertBulk) UpdateNewValues() *MistakeCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.PromptID(); exists {
				s.SetIgnore(mistakecount.FieldPromptID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MistakeCount.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MistakeCountUpsertBulk) Ignore() *MistakeCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MistakeCountUpsertBulk) DoNothing() *MistakeCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MistakeCountCreateBulk.OnConflict
// documentation for more info.
func (u *MistakeCountUpsertBulk) Update(set func(*MistakeCountUpsert)) *MistakeCountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MistakeCountUpsert{UpdateSet: update})
	}))
	return u
}

// SetMisses sets the "misses" field.
func (u *MistakeCountUpsertBulk) SetMisses(v int) *MistakeCountUpsertBulk {
	return u.Update(func(s *MistakeCountUpsert) {
		s.SetMisses(v)
	})
}

// AddMisses adds v to the "misses" field.
func (u *MistakeCountUpsertBulk) AddMisses(v int) *MistakeCountUpsertBulk {
	return u.Update(func(s *MistakeCountUpsert) {
		s.AddMisses(v)
	})
}

// UpdateMisses sets the "misses" field to the value that was provided on create.
func (u *MistakeCountUpsertBulk) UpdateMisses() *MistakeCountUpsertBulk {
	return u.Update(func(s *MistakeCountUpsert) {
		s.UpdateMisses()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MistakeCountUpsertBulk) SetUpdatedAt(v time.Time) *MistakeCountUpsertBulk {
	return u.Update(func(s *MistakeCountUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MistakeCountUpsertBulk) UpdateUpdatedAt() *MistakeCountUpsertBulk {
	return u.Update(func(s *MistakeCountUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MistakeCountUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MistakeCountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MistakeCountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MistakeCountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
