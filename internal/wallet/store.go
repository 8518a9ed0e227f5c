package wallet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coinwallet/coinwallet/internal/record"
)

const defaultWalletName = "main"

func walletSchema() record.Schema[Wallet] {
	return record.Schema[Wallet]{
		Table:   "wallets",
		Columns: []string{"id", "name"},
		Values: func(w Wallet) []any {
			return []any{w.ID, w.Name}
		},
	}
}

func entrySchema() record.Schema[BalanceEntry] {
	return record.Schema[BalanceEntry]{
		Table:   "coin_amounts",
		Columns: []string{"wallet_id", "currency", "amount"},
		Values: func(e BalanceEntry) []any {
			return []any{e.WalletID, e.Currency, e.Amount}
		},
	}
}

// Store holds wallets and their per-currency balance entries. It performs no
// domain checks of its own: callers decide between add and update, mirroring
// the record store's dumb add/list/update surface.
type Store struct {
	wallets record.Store[Wallet]
	entries record.Store[BalanceEntry]
}

// NewStore wraps existing record stores.
func NewStore(wallets record.Store[Wallet], entries record.Store[BalanceEntry]) *Store {
	return &Store{wallets: wallets, entries: entries}
}

// NewPostgresStore builds a wallet store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *Store {
	return NewStore(record.NewPostgres(db, walletSchema()), record.NewPostgres(db, entrySchema()))
}

// NewMemoryStore builds an in-memory wallet store for tests.
func NewMemoryStore() *Store {
	return NewStore(record.NewMemory(walletSchema()), record.NewMemory(entrySchema()))
}

// Wallets lists every wallet. Order is whatever the record store returns.
func (s *Store) Wallets(ctx context.Context) ([]Wallet, error) {
	return s.wallets.List(ctx, "TRUE")
}

// AddWallet persists a wallet.
func (s *Store) AddWallet(ctx context.Context, w Wallet) error {
	return s.wallets.Add(ctx, w)
}

// EnsureDefault creates the single wallet when none exists yet and returns
// the wallet ledger operations will act on.
func (s *Store) EnsureDefault(ctx context.Context) (Wallet, error) {
	existing, err := s.Wallets(ctx)
	if err != nil {
		return Wallet{}, err
	}
	if len(existing) > 0 {
		return existing[0], nil
	}
	w := Wallet{ID: uuid.New(), Name: defaultWalletName}
	if err := s.AddWallet(ctx, w); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// BalanceEntry fetches the entry for one (wallet, currency) pair. A missing
// entry is reported through the boolean, not an error.
func (s *Store) BalanceEntry(ctx context.Context, walletID uuid.UUID, currencyName string) (BalanceEntry, bool, error) {
	matches, err := s.entries.List(ctx, "wallet_id = $1 AND currency = $2", walletID, currencyName)
	if err != nil {
		return BalanceEntry{}, false, err
	}
	if len(matches) == 0 {
		return BalanceEntry{}, false, nil
	}
	return matches[0], true, nil
}

// AddBalanceEntry inserts a new entry. The caller must have checked absence
// first; the store performs no existence check.
func (s *Store) AddBalanceEntry(ctx context.Context, e BalanceEntry) error {
	return s.entries.Add(ctx, e)
}

// UpdateBalanceEntry replaces the stored entry for the same currency. Keying
// on the currency column alone is sound while the system holds one wallet.
func (s *Store) UpdateBalanceEntry(ctx context.Context, e BalanceEntry) error {
	return s.entries.Update(ctx, "currency", e.Currency, e)
}

// BalanceEntries lists every entry held by one wallet.
func (s *Store) BalanceEntries(ctx context.Context, walletID uuid.UUID) ([]BalanceEntry, error) {
	return s.entries.List(ctx, "wallet_id = $1", walletID)
}
