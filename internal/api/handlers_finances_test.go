package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

func createTestTransaction(t *testing.T, app *fiber.App, token string, payload fiber.Map) models.Transaction {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/finances/transactions", token, payload)
	envelope := expectStatus(t, response, http.StatusCreated)

	var transaction models.Transaction
	decodeData(t, envelope, &transaction)
	return transaction
}

func TestCreateTransactionValidation(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	cases := []fiber.Map{
		{"type": "transfer", "amount": 10, "category": "misc", "date": "2024-03-01"},
		{"type": "expense", "amount": 0, "category": "misc", "date": "2024-03-01"},
		{"type": "expense", "amount": -5, "category": "misc", "date": "2024-03-01"},
		{"type": "expense", "amount": 10, "category": "  ", "date": "2024-03-01"},
		{"type": "expense", "amount": 10, "category": "misc", "date": "tomorrow"},
	}
	for index, payload := range cases {
		response := doRequest(t, app, http.MethodPost, "/finances/transactions", pair.AccessToken, payload)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: status %d, want 400", index, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestFinanceSummary(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	createTestTransaction(t, app, pair.AccessToken, fiber.Map{
		"type": "income", "amount": 100, "category": "salary", "date": "2024-03-01",
	})
	createTestTransaction(t, app, pair.AccessToken, fiber.Map{
		"type": "expense", "amount": 30, "category": "food", "date": "2024-03-02",
	})
	createTestTransaction(t, app, pair.AccessToken, fiber.Map{
		"type": "expense", "amount": 20, "category": "food", "date": "2024-03-03",
	})

	response := doRequest(t, app, http.MethodGet, "/finances/summary", pair.AccessToken, nil)
	envelope := expectStatus(t, response, http.StatusOK)

	var summary services.FinanceSummary
	decodeData(t, envelope, &summary)
	if summary.TotalIncome != 100 || summary.TotalExpenses != 50 || summary.Net != 50 {
		t.Fatalf("summary totals = %+v", summary)
	}
	if len(summary.CategoryBreakdown) != 1 || summary.CategoryBreakdown[0].Category != "food" || summary.CategoryBreakdown[0].Amount != 50 {
		t.Fatalf("breakdown = %+v", summary.CategoryBreakdown)
	}
}

func TestFinanceSummaryScopedToUser(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	alice := registerTestUser(t, app)
	bob := registerTestUser(t, app)

	createTestTransaction(t, app, alice.AccessToken, fiber.Map{
		"type": "income", "amount": 999, "category": "salary", "date": "2024-03-01",
	})

	response := doRequest(t, app, http.MethodGet, "/finances/summary", bob.AccessToken, nil)
	envelope := expectStatus(t, response, http.StatusOK)

	var summary services.FinanceSummary
	decodeData(t, envelope, &summary)
	if summary.TotalIncome != 0 || summary.TotalExpenses != 0 {
		t.Fatalf("another user's transactions leaked into the summary: %+v", summary)
	}
}

func TestCreateBudgetDefaultsToMonthly(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/finances/budget", pair.AccessToken, fiber.Map{
		"category": "groceries",
		"amount":   400,
	})
	envelope := expectStatus(t, response, http.StatusCreated)

	var budget models.Budget
	decodeData(t, envelope, &budget)
	if budget.Period != models.BudgetPeriodMonthly {
		t.Fatalf("period = %q, want monthly", budget.Period)
	}

	invalid := doRequest(t, app, http.MethodPost, "/finances/budget", pair.AccessToken, fiber.Map{
		"category": "groceries",
		"amount":   400,
		"period":   "daily",
	})
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestUpdateTransactionPartialPatch(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	transaction := createTestTransaction(t, app, pair.AccessToken, fiber.Map{
		"type": "expense", "amount": 25, "category": "transport", "date": "2024-03-05",
	})

	response := doRequest(t, app, http.MethodPut, fmt.Sprintf("/finances/transactions/%d", transaction.ID), pair.AccessToken, fiber.Map{
		"amount": 40,
	})
	envelope := expectStatus(t, response, http.StatusOK)

	var updated models.Transaction
	decodeData(t, envelope, &updated)
	if updated.Amount != 40 {
		t.Fatalf("amount = %v, want 40", updated.Amount)
	}
	if updated.Category != "transport" || updated.Type != models.TransactionExpense {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}
