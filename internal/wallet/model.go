package wallet

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the container of balances. The system assumes a single wallet
// exists; ledger operations always act on the first wallet listed.
type Wallet struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

// BalanceEntry is the quantity of one currency held by one wallet. At most
// one entry exists per (wallet, currency) pair; the ledger service enforces
// that by looking up before inserting.
type BalanceEntry struct {
	WalletID uuid.UUID       `db:"wallet_id"`
	Currency string          `db:"currency"`
	Amount   decimal.Decimal `db:"amount"`
}
