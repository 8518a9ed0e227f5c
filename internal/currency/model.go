package currency

import "github.com/shopspring/decimal"

// Currency is a named unit of value with an exchange course expressed
// relative to the common base currency. The name doubles as the identifier;
// there is no update path once a currency is registered.
type Currency struct {
	Name   string          `db:"name"`
	Course decimal.Decimal `db:"course"`
}
