package record

import (
	"context"
	"testing"
)

type testRecord struct {
	Owner    string
	Currency string
	Amount   int64
}

func newTestStore() *MemoryStore[testRecord] {
	return NewMemory(Schema[testRecord]{
		Table:   "test_records",
		Columns: []string{"owner", "currency", "amount"},
		Values: func(r testRecord) []any {
			return []any{r.Owner, r.Currency, r.Amount}
		},
	})
}

func TestMemoryListAll(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	for _, rec := range []testRecord{
		{Owner: "a", Currency: "USD", Amount: 100},
		{Owner: "a", Currency: "EUR", Amount: 50},
		{Owner: "b", Currency: "USD", Amount: 10},
	} {
		if err := store.Add(ctx, rec); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	all, err := store.List(ctx, "TRUE")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Currency != "USD" || all[2].Owner != "b" {
		t.Fatalf("insertion order not preserved: %+v", all)
	}
}

func TestMemoryListFiltered(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.Add(ctx, testRecord{Owner: "a", Currency: "USD", Amount: 100})
	store.Add(ctx, testRecord{Owner: "a", Currency: "EUR", Amount: 50})
	store.Add(ctx, testRecord{Owner: "b", Currency: "USD", Amount: 10})

	got, err := store.List(ctx, "owner = $1 AND currency = $2", "a", "USD")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Amount != 100 {
		t.Fatalf("unexpected result: %+v", got)
	}

	none, err := store.List(ctx, "owner = $1", "missing")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestMemoryUpdateByKey(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.Add(ctx, testRecord{Owner: "a", Currency: "USD", Amount: 100})
	store.Add(ctx, testRecord{Owner: "a", Currency: "EUR", Amount: 50})

	if err := store.Update(ctx, "currency", "USD", testRecord{Owner: "a", Currency: "USD", Amount: 175}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.List(ctx, "currency = $1", "USD")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Amount != 175 {
		t.Fatalf("update not applied: %+v", got)
	}

	other, _ := store.List(ctx, "currency = $1", "EUR")
	if len(other) != 1 || other[0].Amount != 50 {
		t.Fatalf("unrelated record mutated: %+v", other)
	}
}

func TestMemoryRejectsUnsupportedFilter(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	if _, err := store.List(ctx, "amount > $1", int64(5)); err == nil {
		t.Fatal("expected error for unsupported operator")
	}
	if _, err := store.List(ctx, "owner = $2", "a"); err == nil {
		t.Fatal("expected error for out-of-range placeholder")
	}
	if _, err := store.List(ctx, "nope = $1", "a"); err == nil {
		t.Fatal("expected error for unknown column")
	}
}
