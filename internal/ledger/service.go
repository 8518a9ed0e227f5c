package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coinwallet/coinwallet/internal/currency"
	"github.com/coinwallet/coinwallet/internal/notification"
	"github.com/coinwallet/coinwallet/internal/transaction"
	"github.com/coinwallet/coinwallet/internal/wallet"
)

// Service is the orchestration core of the wallet ledger. Every domain rule
// lives here: the stores underneath are deliberately dumb so the rules are
// enforced exactly once regardless of which store backend is plugged in.
//
// Operations are sequences of store calls with no storage transaction around
// them. Convert debits before it credits: a failure between the two leaves
// the debit in place. The service assumes a single caller at a time; it adds
// no locking of its own.
type Service struct {
	currencies   *currency.Directory
	wallets      *wallet.Store
	transactions *transaction.Log
	notifier     notification.Notifier
}

// NewService constructs the ledger service. The notifier may be nil.
func NewService(currencies *currency.Directory, wallets *wallet.Store, transactions *transaction.Log, notifier notification.Notifier) *Service {
	return &Service{
		currencies:   currencies,
		wallets:      wallets,
		transactions: transactions,
		notifier:     notifier,
	}
}

// RegisterCurrency adds a currency to the directory after validating its
// course and checking the name is not taken. The check-then-insert pair is
// not guarded by a storage constraint.
func (s *Service) RegisterCurrency(ctx context.Context, c currency.Currency) error {
	if c.Course.Sign() <= 0 {
		return fmt.Errorf("%w: exchange course must be positive", ErrValidation)
	}
	_, found, err := s.currencies.Find(ctx, c.Name)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("%w: currency %s", ErrConflict, c.Name)
	}
	return s.currencies.Register(ctx, c)
}

// Deposit credits the wallet with amount of the named currency. A first
// deposit into a currency requires that currency to be registered; further
// deposits only need the existing balance entry.
func (s *Service) Deposit(ctx context.Context, currencyName string, amount decimal.Decimal) error {
	w, err := s.theWallet(ctx)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	entry, found, err := s.wallets.BalanceEntry(ctx, w.ID, currencyName)
	if err != nil {
		return err
	}
	if found {
		entry.Amount = entry.Amount.Add(amount)
		if err := s.wallets.UpdateBalanceEntry(ctx, entry); err != nil {
			return err
		}
	} else {
		if _, known, err := s.currencies.Find(ctx, currencyName); err != nil {
			return err
		} else if !known {
			return fmt.Errorf("%w: currency %s", ErrNotFound, currencyName)
		}
		entry = wallet.BalanceEntry{WalletID: w.ID, Currency: currencyName, Amount: amount}
		if err := s.wallets.AddBalanceEntry(ctx, entry); err != nil {
			return err
		}
	}

	if err := s.transactions.Append(ctx, transaction.New(transaction.KindDeposit, amount)); err != nil {
		return err
	}

	s.notify(ctx, notification.Message{
		Kind:   notification.KindDeposit,
		Wallet: w.ID.String(),
		Body:   fmt.Sprintf("deposited %s %s", amount, currencyName),
	})
	return nil
}

// Convert exchanges amount of the source currency into the destination
// currency at the ratio of their courses and returns the credited amount.
// The debit and credit are separate store writes with no transaction
// spanning them.
func (s *Service) Convert(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (decimal.Decimal, error) {
	w, err := s.theWallet(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	from, found, err := s.currencies.Find(ctx, fromCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !found {
		return decimal.Decimal{}, fmt.Errorf("%w: currency %s", ErrNotFound, fromCurrency)
	}
	to, found, err := s.currencies.Find(ctx, toCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !found {
		return decimal.Decimal{}, fmt.Errorf("%w: currency %s", ErrNotFound, toCurrency)
	}

	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	source, found, err := s.wallets.BalanceEntry(ctx, w.ID, fromCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !found || source.Amount.LessThan(amount) {
		return decimal.Decimal{}, fmt.Errorf("%w: balance of %s is below %s", ErrInsufficientFunds, fromCurrency, amount)
	}

	converted := amount.Mul(from.Course.Div(to.Course))

	source.Amount = source.Amount.Sub(amount)
	if err := s.wallets.UpdateBalanceEntry(ctx, source); err != nil {
		return decimal.Decimal{}, err
	}

	target, found, err := s.wallets.BalanceEntry(ctx, w.ID, toCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if found {
		target.Amount = target.Amount.Add(converted)
		if err := s.wallets.UpdateBalanceEntry(ctx, target); err != nil {
			return decimal.Decimal{}, err
		}
	} else {
		target = wallet.BalanceEntry{WalletID: w.ID, Currency: toCurrency, Amount: converted}
		if err := s.wallets.AddBalanceEntry(ctx, target); err != nil {
			return decimal.Decimal{}, err
		}
	}

	if err := s.transactions.Append(ctx, transaction.New(transaction.KindConversion, converted)); err != nil {
		return decimal.Decimal{}, err
	}

	s.notify(ctx, notification.Message{
		Kind:   notification.KindConversion,
		Wallet: w.ID.String(),
		Body:   fmt.Sprintf("converted %s %s into %s %s", amount, fromCurrency, converted, toCurrency),
	})
	return converted, nil
}

// Balance folds the wallet's balance entries into a currency-to-amount map.
// A system without a wallet yields an empty map rather than an error.
func (s *Service) Balance(ctx context.Context) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal)

	wallets, err := s.wallets.Wallets(ctx)
	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return balances, nil
	}

	entries, err := s.wallets.BalanceEntries(ctx, wallets[0].ID)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		balances[entry.Currency] = entry.Amount
	}
	return balances, nil
}

// History returns the transaction log as reported by the store, with no
// transformation.
func (s *Service) History(ctx context.Context) ([]transaction.Transaction, error) {
	return s.transactions.All(ctx)
}

// theWallet resolves the single wallet the ledger operates on: the first
// wallet of a full listing.
func (s *Service) theWallet(ctx context.Context) (wallet.Wallet, error) {
	wallets, err := s.wallets.Wallets(ctx)
	if err != nil {
		return wallet.Wallet{}, err
	}
	if len(wallets) == 0 {
		return wallet.Wallet{}, fmt.Errorf("%w: no wallet exists", ErrNotFound)
	}
	return wallets[0], nil
}

func (s *Service) notify(ctx context.Context, msg notification.Message) {
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, msg)
	}
}
