package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

type createTransactionRequest struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
	Recurring bool    `json:"recurring"`
}

type transactionPatch struct {
	Type      *string  `json:"type"`
	Amount    *float64 `json:"amount"`
	Category  *string  `json:"category"`
	Date      *string  `json:"date"`
	Notes     *string  `json:"notes"`
	Recurring *bool    `json:"recurring"`
}

type createBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Period   string  `json:"period"`
}

func (patch transactionPatch) updates() (map[string]any, string) {
	updates := make(map[string]any)
	if patch.Type != nil {
		if !models.IsValidTransactionType(*patch.Type) {
			return nil, "Invalid transaction type"
		}
		updates["type"] = *patch.Type
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, "Amount must be positive"
		}
		updates["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		if strings.TrimSpace(*patch.Category) == "" {
			return nil, "Category cannot be empty"
		}
		updates["category"] = *patch.Category
	}
	if patch.Date != nil {
		day, err := parseOptionalDay(patch.Date)
		if err != nil {
			return nil, "Invalid date"
		}
		updates["date"] = day
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Recurring != nil {
		updates["recurring"] = *patch.Recurring
	}
	return updates, ""
}

func (handler *Handler) GetTransactions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	transactions, err := handler.repositories.Finances.ListTransactionsByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch transactions", err)
	}
	return successResponse(c, fiber.StatusOK, "", transactions)
}

func (handler *Handler) CreateTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createTransactionRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if !models.IsValidTransactionType(payload.Type) {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid transaction type", nil)
	}
	if payload.Amount <= 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Amount must be positive", nil)
	}
	if strings.TrimSpace(payload.Category) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Category is required", nil)
	}

	day, err := services.ParseDay(payload.Date)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	transaction := models.Transaction{
		UserID:    user.ID,
		Type:      payload.Type,
		Amount:    payload.Amount,
		Category:  payload.Category,
		Date:      services.DateOnlyUTC(day),
		Notes:     payload.Notes,
		Recurring: payload.Recurring,
	}
	if err := handler.repositories.Finances.CreateTransaction(&transaction); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create transaction", err)
	}
	return successResponse(c, fiber.StatusCreated, "Transaction created", transaction)
}

func (handler *Handler) UpdateTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	transactionID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid transaction id", nil)
	}

	var patch transactionPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.Finances.UpdateTransactionByIDAndUser(transactionID, user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update transaction", err)
		}
	}

	transaction, found, err := handler.repositories.Finances.FindTransactionByIDAndUser(transactionID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update transaction", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Transaction updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Transaction updated", transaction)
}

func (handler *Handler) DeleteTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	transactionID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid transaction id", nil)
	}

	if err := handler.repositories.Finances.DeleteTransactionByIDAndUser(transactionID, user.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete transaction", err)
	}
	return successResponse(c, fiber.StatusOK, "Transaction deleted", nil)
}

func (handler *Handler) GetFinanceSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	transactions, err := handler.repositories.Finances.ListTransactionsByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch summary", err)
	}
	return successResponse(c, fiber.StatusOK, "", services.BuildFinanceSummary(transactions))
}

func (handler *Handler) GetBudgets(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	budgets, err := handler.repositories.Finances.ListBudgetsByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch budgets", err)
	}
	return successResponse(c, fiber.StatusOK, "", budgets)
}

func (handler *Handler) CreateBudget(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createBudgetRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.Category) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Category is required", nil)
	}
	if payload.Amount <= 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Amount must be positive", nil)
	}

	budget := models.Budget{
		UserID:   user.ID,
		Category: payload.Category,
		Amount:   payload.Amount,
		Period:   models.BudgetPeriodMonthly,
	}
	if payload.Period != "" {
		if !models.IsValidBudgetPeriod(payload.Period) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid budget period", nil)
		}
		budget.Period = payload.Period
	}

	if err := handler.repositories.Finances.CreateBudget(&budget); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create budget", err)
	}
	return successResponse(c, fiber.StatusCreated, "Budget created", budget)
}
