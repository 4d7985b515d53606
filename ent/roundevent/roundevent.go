// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roundevent type in the database.
	Label = "round_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldPromptList holds the string denoting the prompt_list field in the database.
	FieldPromptList = "prompt_list"
	// FieldPromptsServed holds the string denoting the prompts_served field in the database.
	FieldPromptsServed = "prompts_served"
	// FieldExcellentCount holds the string denoting the excellent_count field in the database.
	FieldExcellentCount = "excellent_count"
	// FieldCloseCount holds the string denoting the close_count field in the database.
	FieldCloseCount = "close_count"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldUnscoredCount holds the string denoting the unscored_count field in the database.
	FieldUnscoredCount = "unscored_count"
	// FieldScoreGained holds the string denoting the score_gained field in the database.
	FieldScoreGained = "score_gained"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the roundevent in the database.
	Table = "round_events"
)

// Columns holds all SQL columns for roundevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRoundID,
	FieldAction,
	FieldLanguage,
	FieldCategory,
	FieldPromptList,
	FieldPromptsServed,
	FieldExcellentCount,
	FieldCloseCount,
	FieldRetryCount,
	FieldUnscoredCount,
	FieldScoreGained,
	FieldTotalScore,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	RoundIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultPromptsServed holds the default value on creation for the "prompts_served" field.
	DefaultPromptsServed int
	// DefaultExcellentCount holds the default value on creation for the "excellent_count" field.
	DefaultExcellentCount int
	// DefaultCloseCount holds the default value on creation for the "close_count" field.
	DefaultCloseCount int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultUnscoredCount holds the default value on creation for the "unscored_count" field.
	DefaultUnscoredCount int
	// DefaultScoreGained holds the default value on creation for the "score_gained" field.
	DefaultScoreGained int
	// DefaultTotalScore holds the default value on creation for the "total_score" field.
	DefaultTotalScore int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the RoundEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByPromptsServed orders the results by the prompts_served field.
func ByPromptsServed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptsServed, opts...).ToFunc()
}

// ByExcellentCount orders the results by the excellent_count field.
func ByExcellentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcellentCount, opts...).ToFunc()
}

// ByCloseCount orders the results by the close_count field.
func ByCloseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCloseCount, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByUnscoredCount orders the results by the unscored_count field.
func ByUnscoredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnscoredCount, opts...).ToFunc()
}

// ByScoreGained orders the results by the score_gained field.
func ByScoreGained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreGained, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
