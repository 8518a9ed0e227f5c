package currency

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coinwallet/coinwallet/internal/record"
)

func schema() record.Schema[Currency] {
	return record.Schema[Currency]{
		Table:   "currencies",
		Columns: []string{"name", "course"},
		Values: func(c Currency) []any {
			return []any{c.Name, c.Course}
		},
	}
}

// Directory is the catalogue of known currencies. It is a thin adapter over
// the record store; uniqueness and course validation are enforced by the
// ledger service, not here.
type Directory struct {
	store record.Store[Currency]
}

// NewDirectory wraps an existing record store.
func NewDirectory(store record.Store[Currency]) *Directory {
	return &Directory{store: store}
}

// NewPostgresDirectory builds a directory backed by PostgreSQL.
func NewPostgresDirectory(db *pgxpool.Pool) *Directory {
	return NewDirectory(record.NewPostgres(db, schema()))
}

// NewMemoryDirectory builds an in-memory directory for tests.
func NewMemoryDirectory() *Directory {
	return NewDirectory(record.NewMemory(schema()))
}

// Register persists a new currency.
func (d *Directory) Register(ctx context.Context, c Currency) error {
	return d.store.Add(ctx, c)
}

// Find looks up a currency by exact name. A missing currency is reported
// through the boolean, not an error.
func (d *Directory) Find(ctx context.Context, name string) (Currency, bool, error) {
	matches, err := d.store.List(ctx, "name = $1", name)
	if err != nil {
		return Currency{}, false, err
	}
	if len(matches) == 0 {
		return Currency{}, false, nil
	}
	return matches[0], true, nil
}
