package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coinwallet/coinwallet/internal/ledger"
)

// RegisterLedgerRoutes wires the five ledger operations.
func RegisterLedgerRoutes(r fiber.Router, h *ledger.Handler) {
	r.Post("/currencies", h.RegisterCurrency)
	r.Post("/wallet/deposits", h.Deposit)
	r.Post("/wallet/conversions", h.Convert)
	r.Get("/wallet/balance", h.Balance)
	r.Get("/wallet/transactions", h.History)
}
