// Command seed wipes the database and repopulates it with sample accounts
// and six months of randomized transactions. All inserts go through the
// ledger service, so the generated account balances stay consistent with
// the generated transactions.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/findash/findash_backend/internal/core/domain"
	"github.com/findash/findash_backend/internal/core/services"
	"github.com/findash/findash_backend/internal/dto"
	"github.com/findash/findash_backend/internal/repositories/database/pgsql"
	"github.com/findash/findash_backend/pkg/config"
	"github.com/findash/findash_backend/pkg/database"
	"github.com/shopspring/decimal"
)

var sampleAccounts = []struct {
	name    string
	balance float64
}{
	{"Main Checking Account", 2500.00},
	{"Savings Account", 15000.00},
	{"Wallet", 150.00},
	{"Investment Account", 25000.00},
}

var expenseCategories = []string{
	"Groceries", "Transport", "Housing", "Health", "Education",
	"Entertainment", "Clothing", "Restaurants", "Fuel", "Pharmacy",
	"Gym", "Utilities",
}

var incomeCategories = []string{
	"Salary", "Bank Transfer", "Investments", "Bonus", "Dividends",
}

var expenseDescriptions = map[string][]string{
	"Groceries":     {"Supermarket", "Bakery", "Farmers market", "Butcher"},
	"Transport":     {"Rideshare", "Parking", "Bus fare", "Train ticket"},
	"Housing":       {"Rent", "Condo fees", "Electricity bill", "Water bill"},
	"Health":        {"Doctor visit", "Medication", "Lab tests", "Dentist"},
	"Education":     {"Online course", "Books", "School supplies", "Tuition"},
	"Entertainment": {"Cinema", "Theater", "Streaming", "Games"},
	"Clothing":      {"Clothes", "Shoes", "Accessories"},
	"Restaurants":   {"Lunch", "Dinner", "Snack", "Delivery"},
	"Fuel":          {"Gas station"},
	"Pharmacy":      {"Medication", "Vitamins", "Toiletries"},
	"Gym":           {"Membership", "Personal trainer", "Supplements"},
	"Utilities":     {"Rent", "Loan payment", "Credit card bill"},
}

var incomeDescriptions = map[string][]string{
	"Salary":        {"Monthly salary", "Salary advance", "Year-end bonus"},
	"Bank Transfer": {"Incoming transfer", "Instant payment received", "Wire received"},
	"Investments":   {"CD interest", "Dividends", "Savings interest"},
	"Bonus":         {"Performance bonus", "Profit sharing"},
	"Dividends":     {"Stocks", "Real estate funds"},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	// Clear existing data to avoid duplicates. Transactions first, the FK
	// points at accounts.
	if _, err := dbPool.Exec(ctx, `DELETE FROM transactions;`); err != nil {
		logger.Error("Failed to clear transactions", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if _, err := dbPool.Exec(ctx, `DELETE FROM accounts;`); err != nil {
		logger.Error("Failed to clear accounts", slog.String("error", err.Error()))
		os.Exit(1)
	}

	accountRepo := pgsql.NewAccountRepository(dbPool)
	txnRepo := pgsql.NewTransactionRepository(dbPool, accountRepo)
	accountSvc := services.NewAccountService(accountRepo)
	ledgerSvc := services.NewLedgerService(accountRepo, txnRepo)

	accountIDs := make([]string, 0, len(sampleAccounts))
	for _, sample := range sampleAccounts {
		account, err := accountSvc.CreateAccount(ctx, dto.CreateAccountRequest{
			Name:    sample.name,
			Balance: decimal.NewFromFloat(sample.balance),
		})
		if err != nil {
			logger.Error("Failed to create sample account", slog.String("name", sample.name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		accountIDs = append(accountIDs, account.AccountID)
	}
	logger.Info("Sample accounts created", slog.Int("count", len(accountIDs)))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0
	startDate := time.Now().UTC().AddDate(0, 0, -180)

	for day := 0; day < 180; day++ {
		currentDate := startDate.AddDate(0, 0, day)

		// 0-4 transactions per day
		perDay := rng.Intn(5)
		for i := 0; i < perDay; i++ {
			req := randomTransaction(rng, currentDate, accountIDs[rng.Intn(len(accountIDs))])
			if _, err := ledgerSvc.CreateTransaction(ctx, req); err != nil {
				logger.Error("Failed to create sample transaction", slog.String("error", err.Error()))
				os.Exit(1)
			}
			created++
		}
	}

	logger.Info("Sample data generated", slog.Int("transactions", created))
	fmt.Printf("Seeded %d accounts and %d transactions\n", len(accountIDs), created)
}

// randomTransaction builds one plausible transaction on the given day.
// Expenses outnumber income roughly four to one.
func randomTransaction(rng *rand.Rand, day time.Time, accountID string) dto.CreateTransactionRequest {
	date := time.Date(day.Year(), day.Month(), day.Day(),
		6+rng.Intn(17), rng.Intn(60), rng.Intn(60), 0, time.UTC)

	req := dto.CreateTransactionRequest{
		Date:      date,
		AccountID: accountID,
	}

	if rng.Float64() < 0.8 {
		req.Type = domain.Debit
		req.Category = expenseCategories[rng.Intn(len(expenseCategories))]
		req.Description = pick(rng, expenseDescriptions, req.Category)
		switch req.Category {
		case "Housing":
			req.Amount = randomAmount(rng, 800, 1500)
		case "Groceries", "Fuel":
			req.Amount = randomAmount(rng, 50, 200)
		case "Restaurants", "Entertainment":
			req.Amount = randomAmount(rng, 20, 100)
		default:
			req.Amount = randomAmount(rng, 10, 300)
		}
	} else {
		req.Type = domain.Credit
		req.Category = incomeCategories[rng.Intn(len(incomeCategories))]
		req.Description = pick(rng, incomeDescriptions, req.Category)
		switch req.Category {
		case "Salary":
			req.Amount = randomAmount(rng, 3000, 8000)
		default:
			req.Amount = randomAmount(rng, 100, 1000)
		}
	}

	return req
}

func pick(rng *rand.Rand, descriptions map[string][]string, category string) string {
	options, ok := descriptions[category]
	if !ok || len(options) == 0 {
		return category
	}
	return options[rng.Intn(len(options))]
}

func randomAmount(rng *rand.Rand, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rng.Float64()*(max-min)).Round(2)
}
