// Code generated by ent, DO NOT EDIT.

package mistakecount

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mistakecount type in the database.
	Label = "mistake_count"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldMisses holds the string denoting the misses field in the database.
	FieldMisses = "misses"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the mistakecount in the database.
	Table = "mistake_counts"
)

// Columns holds all SQL columns for mistakecount fields.
var Columns = []string{
	FieldID,
	FieldPromptID,
	FieldMisses,
	FieldUpdatedAt,
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
	// PromptIDValidator is a validator for the "prompt_id" field. It is called by the builders before save.
	PromptIDValidator func(string) error
	// DefaultMisses holds the default value on creation for the "misses" field.
	DefaultMisses int
	// MissesValidator is a validator for the "misses" field. It is called by the builders before save.
	MissesValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the MistakeCount queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByMisses orders the results by the misses field.
func ByMisses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisses, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
