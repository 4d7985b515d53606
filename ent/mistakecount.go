// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/echoz/ent/mistakecount"
)

// MistakeCount is the model entity for the MistakeCount schema.
type MistakeCount struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PromptID holds the value of the "prompt_id" field.
	PromptID string `json:"prompt_id,omitempty"`
	// Misses holds the value of the "misses" field.
	Misses int `json:"misses,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MistakeCount) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mistakecount.FieldID, mistakecount.FieldMisses:
			values[i] = new(sql.NullInt64)
		case mistakecount.FieldPromptID:
			values[i] = new(sql.NullString)
		case mistakecount.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MistakeCount fields.
func (_m *MistakeCount) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mistakecount.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mistakecount.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = value.String
			}
		case mistakecount.FieldMisses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field misses", values[i])
			} else if value.Valid {
				_m.Misses = int(value.Int64)
			}
		case mistakecount.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MistakeCount.
// This includes values selected through modifiers, order, etc.
func (_m *MistakeCount) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MistakeCount.
// Note that you need to call MistakeCount.Unwrap() before calling this method if this MistakeCount
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MistakeCount) Update() *MistakeCountUpdateOne {
	return NewMistakeCountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MistakeCount entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MistakeCount) Unwrap() *MistakeCount {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MistakeCount is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MistakeCount) String() string {
	var builder strings.Builder
	builder.WriteString("MistakeCount(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("prompt_id=")
	builder.WriteString(_m.PromptID)
	builder.WriteString(", ")
	builder.WriteString("misses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Misses))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MistakeCounts is a parsable slice of MistakeCount.
type MistakeCounts []*MistakeCount
