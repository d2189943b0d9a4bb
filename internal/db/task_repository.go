package db

import (
	"github.com/lifeboard/lifeboard/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) ListByUser(userID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("due_date IS NULL, due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByIDAndUser(taskID uint, userID uint) (models.Task, bool, error) {
	var task models.Task
	result := repo.database.
		Where("id = ? AND user_id = ?", taskID, userID).
		Limit(1).
		Find(&task)
	if result.Error != nil {
		return models.Task{}, false, result.Error
	}
	return task, result.RowsAffected > 0, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) UpdateByIDAndUser(taskID uint, userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (repo *TaskRepository) DeleteByIDAndUser(taskID uint, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&models.Task{}).Error
}
