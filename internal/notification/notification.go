package notification

import (
	"context"
	"log/slog"
)

const (
	// KindDeposit indicates funds were deposited into the wallet.
	KindDeposit = "wallet_deposit"
	// KindConversion indicates a conversion between currencies completed.
	KindConversion = "currency_conversion"
)

// Message describes a notification payload.
type Message struct {
	Kind   string
	Wallet string
	Body   string
}

// Notifier delivers notifications to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes notifications to the
// structured logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "wallet", message.Wallet, "body", message.Body)
	return nil
}
