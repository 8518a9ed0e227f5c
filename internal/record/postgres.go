package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists records of one type in a PostgreSQL table.
type PostgresStore[T any] struct {
	db     *pgxpool.Pool
	schema Schema[T]
}

// NewPostgres builds a Postgres-backed store for the given schema.
func NewPostgres[T any](db *pgxpool.Pool, schema Schema[T]) *PostgresStore[T] {
	return &PostgresStore[T]{db: db, schema: schema}
}

// Add inserts a single record.
func (s *PostgresStore[T]) Add(ctx context.Context, rec T) error {
	placeholders := make([]string, len(s.schema.Columns))
	for i := range s.schema.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.schema.Table,
		strings.Join(s.schema.Columns, ", "),
		strings.Join(placeholders, ", "))
	if _, err := s.db.Exec(ctx, query, s.schema.Values(rec)...); err != nil {
		return fmt.Errorf("insert %s: %w", s.schema.Table, err)
	}
	return nil
}

// List returns all records matching the filter expression.
func (s *PostgresStore[T]) List(ctx context.Context, filter string, args ...any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(s.schema.Columns, ", "), s.schema.Table, filter)
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.schema.Table, err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", s.schema.Table, err)
	}
	return recs, nil
}

// Update replaces every column of the rows whose keyColumn equals keyValue.
func (s *PostgresStore[T]) Update(ctx context.Context, keyColumn string, keyValue any, rec T) error {
	assignments := make([]string, len(s.schema.Columns))
	for i, col := range s.schema.Columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		s.schema.Table,
		strings.Join(assignments, ", "),
		keyColumn,
		len(s.schema.Columns)+1)
	args := append(s.schema.Values(rec), keyValue)
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update %s: %w", s.schema.Table, err)
	}
	return nil
}
