package services

import "github.com/lifeboard/lifeboard/internal/models"

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type FinanceSummary struct {
	TotalIncome       float64          `json:"totalIncome"`
	TotalExpenses     float64          `json:"totalExpenses"`
	Net               float64          `json:"net"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
}

// BuildFinanceSummary partitions transactions by type and accumulates expense
// amounts per category in first-seen order.
func BuildFinanceSummary(transactions []models.Transaction) FinanceSummary {
	summary := FinanceSummary{CategoryBreakdown: make([]CategoryAmount, 0)}

	for _, transaction := range transactions {
		switch transaction.Type {
		case models.TransactionIncome:
			summary.TotalIncome += transaction.Amount
		case models.TransactionExpense:
			summary.TotalExpenses += transaction.Amount
			summary.CategoryBreakdown = addToCategory(summary.CategoryBreakdown, transaction.Category, transaction.Amount)
		}
	}

	summary.Net = summary.TotalIncome - summary.TotalExpenses
	return summary
}

func addToCategory(breakdown []CategoryAmount, category string, amount float64) []CategoryAmount {
	for index := range breakdown {
		if breakdown[index].Category == category {
			breakdown[index].Amount += amount
			return breakdown
		}
	}
	return append(breakdown, CategoryAmount{Category: category, Amount: amount})
}
