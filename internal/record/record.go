// Package record provides a generic typed record store over a relational
// table. Domain packages describe their table through a Schema and consume
// the Store interface, which keeps every business rule out of the
// persistence layer.
package record

import "context"

// Schema describes how one record type maps onto its table.
type Schema[T any] struct {
	// Table is the relation name.
	Table string
	// Columns lists column names in insert order.
	Columns []string
	// Values extracts column values from a record, in Columns order.
	Values func(rec T) []any
}

// Store is the persistence contract shared by every entity type: insert,
// filtered listing, and full-record replacement by a single key column.
// Filters are SQL boolean expressions over column names with positional
// placeholders, e.g. `TRUE` or `wallet_id = $1 AND currency = $2`.
type Store[T any] interface {
	Add(ctx context.Context, rec T) error
	List(ctx context.Context, filter string, args ...any) ([]T, error)
	Update(ctx context.Context, keyColumn string, keyValue any, rec T) error
}
