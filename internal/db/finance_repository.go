package db

import (
	"github.com/lifeboard/lifeboard/internal/models"
	"gorm.io/gorm"
)

type FinanceRepository struct {
	database *gorm.DB
}

func NewFinanceRepository(database *gorm.DB) *FinanceRepository {
	return &FinanceRepository{database: database}
}

func (repo *FinanceRepository) ListTransactionsByUser(userID uint) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *FinanceRepository) FindTransactionByIDAndUser(transactionID uint, userID uint) (models.Transaction, bool, error) {
	var transaction models.Transaction
	result := repo.database.
		Where("id = ? AND user_id = ?", transactionID, userID).
		Limit(1).
		Find(&transaction)
	if result.Error != nil {
		return models.Transaction{}, false, result.Error
	}
	return transaction, result.RowsAffected > 0, nil
}

func (repo *FinanceRepository) CreateTransaction(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}

func (repo *FinanceRepository) UpdateTransactionByIDAndUser(transactionID uint, userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (repo *FinanceRepository) DeleteTransactionByIDAndUser(transactionID uint, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{}).Error
}

func (repo *FinanceRepository) ListBudgetsByUser(userID uint) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (repo *FinanceRepository) CreateBudget(budget *models.Budget) error {
	return repo.database.Create(budget).Error
}
