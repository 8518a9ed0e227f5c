package record

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MemoryStore keeps records in a slice guarded by a mutex. It evaluates the
// same filter expressions the Postgres store passes through to SQL, limited
// to the grammar the adapters actually use: `TRUE`, or AND-joined equality
// clauses of the form `column = $n`. Intended for unit tests.
type MemoryStore[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	recs   []T
}

// NewMemory builds an in-memory store for the given schema.
func NewMemory[T any](schema Schema[T]) *MemoryStore[T] {
	return &MemoryStore[T]{schema: schema}
}

// Add appends a record.
func (s *MemoryStore[T]) Add(_ context.Context, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, rec)
	return nil
}

// List returns records matching the filter, in insertion order.
func (s *MemoryStore[T]) List(_ context.Context, filter string, args ...any) ([]T, error) {
	clauses, err := parseFilter(filter, len(args))
	if err != nil {
		return nil, err
	}
	for _, cl := range clauses {
		if _, err := s.columnValue(*new(T), cl.column); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []T
	for _, rec := range s.recs {
		ok, err := s.matches(rec, clauses, args)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Update replaces rows whose keyColumn equals keyValue.
func (s *MemoryStore[T]) Update(_ context.Context, keyColumn string, keyValue any, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.recs {
		v, err := s.columnValue(existing, keyColumn)
		if err != nil {
			return err
		}
		if valueEqual(v, keyValue) {
			s.recs[i] = rec
		}
	}
	return nil
}

type clause struct {
	column string
	arg    int // index into args
}

func parseFilter(filter string, argCount int) ([]clause, error) {
	trimmed := strings.TrimSpace(filter)
	if strings.EqualFold(trimmed, "TRUE") {
		return nil, nil
	}

	parts := strings.Split(trimmed, " AND ")
	clauses := make([]clause, 0, len(parts))
	for _, part := range parts {
		col, placeholder, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("unsupported filter %q", filter)
		}
		placeholder = strings.TrimSpace(placeholder)
		if !strings.HasPrefix(placeholder, "$") {
			return nil, fmt.Errorf("unsupported filter %q", filter)
		}
		n, err := strconv.Atoi(placeholder[1:])
		if err != nil || n < 1 || n > argCount {
			return nil, fmt.Errorf("filter %q references argument %s", filter, placeholder)
		}
		clauses = append(clauses, clause{column: strings.TrimSpace(col), arg: n - 1})
	}
	return clauses, nil
}

func (s *MemoryStore[T]) matches(rec T, clauses []clause, args []any) (bool, error) {
	for _, cl := range clauses {
		v, err := s.columnValue(rec, cl.column)
		if err != nil {
			return false, err
		}
		if !valueEqual(v, args[cl.arg]) {
			return false, nil
		}
	}
	return true, nil
}

func (s *MemoryStore[T]) columnValue(rec T, column string) (any, error) {
	for i, col := range s.schema.Columns {
		if col == column {
			return s.schema.Values(rec)[i], nil
		}
	}
	return nil, fmt.Errorf("unknown column %q in table %s", column, s.schema.Table)
}

// valueEqual compares column values by their string form so that e.g. a
// uuid.UUID column matches a string argument.
func valueEqual(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}
