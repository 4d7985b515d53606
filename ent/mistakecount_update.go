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
	"github.com/abhisek/echoz/ent/predicate"
)

// MistakeCountUpdate is the builder for updating MistakeCount entities.
type MistakeCountUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeCountMutation
}

// Where appends a list predicates to the MistakeCountUpdate builder.
func (_u *MistakeCountUpdate) Where(ps ...predicate.MistakeCount) *MistakeCountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMisses sets the "misses" field.
func (_u *MistakeCountUpdate) SetMisses(v int) *MistakeCountUpdate {
	_u.mutation.ResetMisses()
	_u.mutation.SetMisses(v)
	return _u
}

// SetNillableMisses sets the "misses" field if the given value is not nil.
func (_u *MistakeCountUpdate) SetNillableMisses(v *int) *MistakeCountUpdate {
	if v != nil {
		_u.SetMisses(*v)
	}
	return _u
}

// AddMisses adds value to the "misses" field.
func (_u *MistakeCountUpdate) AddMisses(v int) *MistakeCountUpdate {
	_u.mutation.AddMisses(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MistakeCountUpdate) SetUpdatedAt(v time.Time) *MistakeCountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MistakeCountMutation object of the builder.
func (_u *MistakeCountUpdate) Mutation() *MistakeCountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeCountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeCountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeCountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeCountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MistakeCountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mistakecount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeCountUpdate) check() error {
	if v, ok := _u.mutation.Misses(); ok {
		if err := mistakecount.MissesValidator(v); err != nil {
			return &ValidationError{Name: "misses", err: fmt.Errorf(`ent: validator failed for field "MistakeCount.misses": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeCountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakecount.Table, mistakecount.Columns, sqlgraph.NewFieldSpec(mistakecount.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Misses(); ok {
		_spec.SetField(mistakecount.FieldMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMisses(); ok {
		_spec.AddField(mistakecount.FieldMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mistakecount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakecount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeCountUpdateOne is the builder for updating a single MistakeCount entity.
type MistakeCountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeCountMutation
}

// SetMisses sets the "misses" field.
func (_u *MistakeCountUpdateOne) SetMisses(v int) *MistakeCountUpdateOne {
	_u.mutation.ResetMisses()
	_u.mutation.SetMisses(v)
	return _u
}

// SetNillableMisses sets the "misses" field if the given value is not nil.
func (_u *MistakeCountUpdateOne) SetNillableMisses(v *int) *MistakeCountUpdateOne {
	if v != nil {
		_u.SetMisses(*v)
	}
	return _u
}

// AddMisses adds value to the "misses" field.
func (_u *MistakeCountUpdateOne) AddMisses(v int) *MistakeCountUpdateOne {
	_u.mutation.AddMisses(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MistakeCountUpdateOne) SetUpdatedAt(v time.Time) *MistakeCountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MistakeCountMutation object of the builder.
func (_u *MistakeCountUpdateOne) Mutation() *MistakeCountMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeCountUpdate builder.
func (_u *MistakeCountUpdateOne) Where(ps ...predicate.MistakeCount) *MistakeCountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeCountUpdateOne) Select(field string, fields ...string) *MistakeCountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MistakeCount entity.
func (_u *MistakeCountUpdateOne) Save(ctx context.Context) (*MistakeCount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeCountUpdateOne) SaveX(ctx context.Context) *MistakeCount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeCountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeCountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MistakeCountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mistakecount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeCountUpdateOne) check() error {
	if v, ok := _u.mutation.Misses(); ok {
		if err := mistakecount.MissesValidator(v); err != nil {
			return &ValidationError{Name: "misses", err: fmt.Errorf(`ent: validator failed for field "MistakeCount.misses": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeCountUpdateOne) sqlSave(ctx context.Context) (_node *MistakeCount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakecount.Table, mistakecount.Columns, sqlgraph.NewFieldSpec(mistakecount.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MistakeCount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistakecount.FieldID)
		for _, f := range fields {
			if !mistakecount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistakecount.FieldID {
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
	if value, ok := _u.mutation.Misses(); ok {
		_spec.SetField(mistakecount.FieldMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMisses(); ok {
		_spec.AddField(mistakecount.FieldMisses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mistakecount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MistakeCount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakecount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
