package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

const (
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodYearly  = "yearly"
)

type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Type      string    `gorm:"not null" json:"type"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"not null" json:"category"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Notes     string    `json:"notes,omitempty"`
	Recurring bool      `gorm:"not null;default:false" json:"recurring"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Category  string    `gorm:"not null" json:"category"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Period    string    `gorm:"not null;default:monthly" json:"period"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionIncome || transactionType == TransactionExpense
}

func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodMonthly, BudgetPeriodWeekly, BudgetPeriodYearly:
		return true
	}
	return false
}
