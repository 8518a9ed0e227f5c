package currency

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDirectoryRegisterAndFind(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	if err := dir.Register(ctx, Currency{Name: "USD", Course: decimal.RequireFromString("74.5")}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, found, err := dir.Find(ctx, "USD")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !found {
		t.Fatal("expected USD to be found")
	}
	if got.Name != "USD" || !got.Course.Equal(decimal.RequireFromString("74.5")) {
		t.Fatalf("unexpected currency %+v", got)
	}
}

func TestDirectoryFindAbsent(t *testing.T) {
	dir := NewMemoryDirectory()

	_, found, err := dir.Find(context.Background(), "EUR")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found {
		t.Fatal("expected EUR to be absent")
	}
}

func TestDirectoryFindExactMatch(t *testing.T) {
	dir := NewMemoryDirectory()
	ctx := context.Background()

	dir.Register(ctx, Currency{Name: "USD", Course: decimal.RequireFromString("74.5")})

	if _, found, _ := dir.Find(ctx, "usd"); found {
		t.Fatal("lookup must match the exact name")
	}
}
