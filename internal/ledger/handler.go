package ledger

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/coinwallet/coinwallet/internal/currency"
)

// Handler exposes the five ledger operations over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a ledger HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerCurrencyRequest struct {
	Name   string          `json:"name"`
	Course decimal.Decimal `json:"course"`
}

type depositRequest struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type convertRequest struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type transactionResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// RegisterCurrency adds a currency to the directory.
func (h *Handler) RegisterCurrency(c *fiber.Ctx) error {
	var req registerCurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.RegisterCurrency(c.UserContext(), currency.Currency{Name: req.Name, Course: req.Course}); err != nil {
		return domainError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"name":   req.Name,
		"course": req.Course,
	})
}

// Deposit credits the wallet with the requested amount.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	var req depositRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Deposit(c.UserContext(), req.Currency, req.Amount); err != nil {
		return domainError(err)
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"currency": req.Currency,
		"amount":   req.Amount,
	})
}

// Convert exchanges funds between two currencies.
func (h *Handler) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	converted, err := h.service.Convert(c.UserContext(), req.From, req.To, req.Amount)
	if err != nil {
		return domainError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"from":      req.From,
		"to":        req.To,
		"amount":    req.Amount,
		"converted": converted,
	})
}

// Balance returns the per-currency balance snapshot.
func (h *Handler) Balance(c *fiber.Ctx) error {
	balances, err := h.service.Balance(c.UserContext())
	if err != nil {
		return domainError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"balances":  balances,
		"timestamp": time.Now().UTC(),
	})
}

// History returns the transaction log.
func (h *Handler) History(c *fiber.Ctx) error {
	history, err := h.service.History(c.UserContext())
	if err != nil {
		return domainError(err)
	}
	items := make([]transactionResponse, 0, len(history))
	for _, t := range history {
		items = append(items, transactionResponse{
			ID:        t.ID.String(),
			Kind:      t.Kind,
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(items)
}

// domainError translates the ledger error taxonomy into HTTP failures.
func domainError(err error) error {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientFunds):
		return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
