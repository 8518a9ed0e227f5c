package wallet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestEnsureDefaultCreatesExactlyOneWallet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("ensure default: %v", err)
	}
	second, err := store.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("ensure default again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same wallet, got %s and %s", first.ID, second.ID)
	}

	wallets, err := store.Wallets(ctx)
	if err != nil {
		t.Fatalf("wallets: %v", err)
	}
	if len(wallets) != 1 {
		t.Fatalf("expected one wallet, got %d", len(wallets))
	}
}

func TestBalanceEntryLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	walletID := uuid.New()

	if _, found, err := store.BalanceEntry(ctx, walletID, "USD"); err != nil || found {
		t.Fatalf("expected absent entry, found=%v err=%v", found, err)
	}

	entry := BalanceEntry{WalletID: walletID, Currency: "USD", Amount: decimal.RequireFromString("100")}
	if err := store.AddBalanceEntry(ctx, entry); err != nil {
		t.Fatalf("add entry: %v", err)
	}

	got, found, err := store.BalanceEntry(ctx, walletID, "USD")
	if err != nil || !found {
		t.Fatalf("lookup: found=%v err=%v", found, err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("unexpected amount %s", got.Amount)
	}

	if _, found, _ := store.BalanceEntry(ctx, uuid.New(), "USD"); found {
		t.Fatal("entry must be scoped to its wallet")
	}
}

func TestUpdateBalanceEntryReplacesAmount(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	walletID := uuid.New()

	entry := BalanceEntry{WalletID: walletID, Currency: "USD", Amount: decimal.RequireFromString("100")}
	store.AddBalanceEntry(ctx, entry)

	entry.Amount = decimal.RequireFromString("150")
	if err := store.UpdateBalanceEntry(ctx, entry); err != nil {
		t.Fatalf("update entry: %v", err)
	}

	got, _, err := store.BalanceEntry(ctx, walletID, "USD")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("expected 150, got %s", got.Amount)
	}
}

func TestBalanceEntriesPerWallet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	mine := uuid.New()
	other := uuid.New()

	store.AddBalanceEntry(ctx, BalanceEntry{WalletID: mine, Currency: "USD", Amount: decimal.RequireFromString("1")})
	store.AddBalanceEntry(ctx, BalanceEntry{WalletID: mine, Currency: "EUR", Amount: decimal.RequireFromString("2")})
	store.AddBalanceEntry(ctx, BalanceEntry{WalletID: other, Currency: "USD", Amount: decimal.RequireFromString("3")})

	entries, err := store.BalanceEntries(ctx, mine)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.WalletID != mine {
			t.Fatalf("entry for wrong wallet: %+v", e)
		}
	}
}
