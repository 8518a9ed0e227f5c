package transaction

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coinwallet/coinwallet/internal/record"
)

func schema() record.Schema[Transaction] {
	return record.Schema[Transaction]{
		Table:   "transactions",
		Columns: []string{"id", "kind", "amount", "created_at"},
		Values: func(t Transaction) []any {
			return []any{t.ID, t.Kind, t.Amount, t.CreatedAt}
		},
	}
}

// Log is the append-only history of ledger operations.
type Log struct {
	store record.Store[Transaction]
}

// NewLog wraps an existing record store.
func NewLog(store record.Store[Transaction]) *Log {
	return &Log{store: store}
}

// NewPostgresLog builds a transaction log backed by PostgreSQL.
func NewPostgresLog(db *pgxpool.Pool) *Log {
	return NewLog(record.NewPostgres(db, schema()))
}

// NewMemoryLog builds an in-memory transaction log for tests.
func NewMemoryLog() *Log {
	return NewLog(record.NewMemory(schema()))
}

// Append persists one transaction.
func (l *Log) Append(ctx context.Context, t Transaction) error {
	return l.store.Add(ctx, t)
}

// All returns every recorded transaction in whatever order the record store
// reports.
func (l *Log) All(ctx context.Context) ([]Transaction, error) {
	return l.store.List(ctx, "TRUE")
}
