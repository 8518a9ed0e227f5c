package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/coinwallet/coinwallet/internal/config"
	"github.com/coinwallet/coinwallet/internal/currency"
	"github.com/coinwallet/coinwallet/internal/ledger"
	"github.com/coinwallet/coinwallet/internal/middleware"
	"github.com/coinwallet/coinwallet/internal/notification"
	"github.com/coinwallet/coinwallet/internal/transaction"
	"github.com/coinwallet/coinwallet/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// may be nil in development, in which case in-memory stores are used and
// idempotency is disabled.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares, builds the store stack, and registers all
// application routes. It also guarantees the single wallet exists before the
// server starts accepting requests.
func Setup(app *fiber.App, d Deps) error {
	if !d.Cfg.Dev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var (
		currencies   *currency.Directory
		wallets      *wallet.Store
		transactions *transaction.Log
	)
	if d.DB != nil {
		currencies = currency.NewPostgresDirectory(d.DB)
		wallets = wallet.NewPostgresStore(d.DB)
		transactions = transaction.NewPostgresLog(d.DB)
	} else {
		currencies = currency.NewMemoryDirectory()
		wallets = wallet.NewMemoryStore()
		transactions = transaction.NewMemoryLog()
	}

	w, err := wallets.EnsureDefault(context.Background())
	if err != nil {
		return fmt.Errorf("ensure default wallet: %w", err)
	}
	d.Logger.Info("wallet ready", "wallet_id", w.ID.String(), "name", w.Name)

	notifier := notification.NewLoggerNotifier(d.Logger)
	ledgerSvc := ledger.NewService(currencies, wallets, transactions, notifier)
	ledgerHandler := ledger.NewHandler(ledgerSvc)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterLedgerRoutes(api, ledgerHandler)

	return nil
}
