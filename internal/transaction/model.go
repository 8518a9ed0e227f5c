package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// KindDeposit labels a deposit into the wallet.
	KindDeposit = "deposit"
	// KindConversion labels a conversion between two currencies.
	KindConversion = "conversion"
)

// Transaction is an immutable audit record of one ledger operation. Records
// are never updated or deleted after creation.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	Kind      string          `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// New stamps a fresh transaction with an identifier and the current UTC time.
func New(kind string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
