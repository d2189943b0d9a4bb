package db

import (
	"github.com/lifeboard/lifeboard/internal/models"
	"gorm.io/gorm"
)

type BucketItemRepository struct {
	database *gorm.DB
}

func NewBucketItemRepository(database *gorm.DB) *BucketItemRepository {
	return &BucketItemRepository{database: database}
}

func (repo *BucketItemRepository) ListByUser(userID uint) ([]models.BucketItem, error) {
	return repo.ListFiltered(userID, "", "")
}

// ListFiltered narrows by category and status when either is non-empty.
func (repo *BucketItemRepository) ListFiltered(userID uint, category string, status string) ([]models.BucketItem, error) {
	query := repo.database.Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	items := make([]models.BucketItem, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *BucketItemRepository) FindByIDAndUser(itemID uint, userID uint) (models.BucketItem, bool, error) {
	var item models.BucketItem
	result := repo.database.
		Where("id = ? AND user_id = ?", itemID, userID).
		Limit(1).
		Find(&item)
	if result.Error != nil {
		return models.BucketItem{}, false, result.Error
	}
	return item, result.RowsAffected > 0, nil
}

func (repo *BucketItemRepository) Create(item *models.BucketItem) error {
	return repo.database.Create(item).Error
}

func (repo *BucketItemRepository) UpdateByIDAndUser(itemID uint, userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.BucketItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (repo *BucketItemRepository) DeleteByIDAndUser(itemID uint, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.BucketItem{}).Error
}
