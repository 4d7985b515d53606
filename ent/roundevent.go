// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/echoz/ent/roundevent"
)

// RoundEvent is the model entity for the RoundEvent schema.
type RoundEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a round
	RoundID string `json:"round_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Language filter of the round
	Language string `json:"language,omitempty"`
	// Category filter of the round
	Category string `json:"category,omitempty"`
	// Sampled prompts (on start only)
	PromptList []string `json:"prompt_list,omitempty"`
	// Prompts attempted (on end only)
	PromptsServed int `json:"prompts_served,omitempty"`
	// Excellent attempts (on end only)
	ExcellentCount int `json:"excellent_count,omitempty"`
	// Close attempts (on end only)
	CloseCount int `json:"close_count,omitempty"`
	// Retry attempts (on end only)
	RetryCount int `json:"retry_count,omitempty"`
	// Cancelled or failed attempts (on end only)
	UnscoredCount int `json:"unscored_count,omitempty"`
	// Net score change over the round (on end only)
	ScoreGained int `json:"score_gained,omitempty"`
	// Running total after the round (on end only)
	TotalScore int `json:"total_score,omitempty"`
	// Round duration in seconds (on end only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldPromptList:
			values[i] = new([]byte)
		case roundevent.FieldID, roundevent.FieldSequence, roundevent.FieldPromptsServed, roundevent.FieldExcellentCount, roundevent.FieldCloseCount, roundevent.FieldRetryCount, roundevent.FieldUnscoredCount, roundevent.FieldScoreGained, roundevent.FieldTotalScore, roundevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case roundevent.FieldRoundID, roundevent.FieldAction, roundevent.FieldLanguage, roundevent.FieldCategory:
			values[i] = new(sql.NullString)
		case roundevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundEvent fields.
func (_m *RoundEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roundevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case roundevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case roundevent.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = value.String
			}
		case roundevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case roundevent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case roundevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case roundevent.FieldPromptList:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_list", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PromptList); err != nil {
					return fmt.Errorf("unmarshal field prompt_list: %w", err)
				}
			}
		case roundevent.FieldPromptsServed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompts_served", values[i])
			} else if value.Valid {
				_m.PromptsServed = int(value.Int64)
			}
		case roundevent.FieldExcellentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field excellent_count", values[i])
			} else if value.Valid {
				_m.ExcellentCount = int(value.Int64)
			}
		case roundevent.FieldCloseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field close_count", values[i])
			} else if value.Valid {
				_m.CloseCount = int(value.Int64)
			}
		case roundevent.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case roundevent.FieldUnscoredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unscored_count", values[i])
			} else if value.Valid {
				_m.UnscoredCount = int(value.Int64)
			}
		case roundevent.FieldScoreGained:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_gained", values[i])
			} else if value.Valid {
				_m.ScoreGained = int(value.Int64)
			}
		case roundevent.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case roundevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoundEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RoundEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoundEvent.
// Note that you need to call RoundEvent.Unwrap() before calling this method if this RoundEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundEvent) Update() *RoundEventUpdateOne {
	return NewRoundEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundEvent) Unwrap() *RoundEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RoundEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("round_id=")
	builder.WriteString(_m.RoundID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("prompt_list=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptList))
	builder.WriteString(", ")
	builder.WriteString("prompts_served=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptsServed))
	builder.WriteString(", ")
	builder.WriteString("excellent_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExcellentCount))
	builder.WriteString(", ")
	builder.WriteString("close_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CloseCount))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("unscored_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnscoredCount))
	builder.WriteString(", ")
	builder.WriteString("score_gained=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreGained))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// RoundEvents is a parsable slice of RoundEvent.
type RoundEvents []*RoundEvent
