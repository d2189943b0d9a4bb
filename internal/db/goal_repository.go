package db

import (
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindByIDAndUser(goalID uint, userID uint) (models.Goal, bool, error) {
	var goal models.Goal
	result := repo.database.
		Where("id = ? AND user_id = ?", goalID, userID).
		Limit(1).
		Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	return goal, result.RowsAffected > 0, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) UpdateByIDAndUser(goalID uint, userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteByIDAndUser removes the goal and its steps in one transaction so step
// rows are never orphaned.
func (repo *GoalRepository) DeleteByIDAndUser(goalID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Where("goal_id = ?", goalID).Delete(&models.GoalStep{}).Error
	})
}

func (repo *GoalRepository) ListSteps(goalID uint) ([]models.GoalStep, error) {
	steps := make([]models.GoalStep, 0)
	if err := repo.database.
		Where("goal_id = ?", goalID).
		Order("order_index ASC, id ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	return steps, nil
}

// CreateStep inserts the step and refreshes the goal's progress percentage in
// the same transaction, keeping the stored percentage consistent with the
// step counts under concurrent toggles.
func (repo *GoalRepository) CreateStep(step *models.GoalStep) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(step).Error; err != nil {
			return err
		}
		return refreshGoalProgress(tx, step.GoalID)
	})
}

func (repo *GoalRepository) UpdateStep(stepID uint, goalID uint, updates map[string]any) (int64, error) {
	var affected int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.GoalStep{}).
			Where("id = ? AND goal_id = ?", stepID, goalID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		return refreshGoalProgress(tx, goalID)
	})
	return affected, err
}

func (repo *GoalRepository) DeleteStep(stepID uint, goalID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND goal_id = ?", stepID, goalID).Delete(&models.GoalStep{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return refreshGoalProgress(tx, goalID)
	})
}

func (repo *GoalRepository) FindStep(stepID uint, goalID uint) (models.GoalStep, bool, error) {
	var step models.GoalStep
	result := repo.database.
		Where("id = ? AND goal_id = ?", stepID, goalID).
		Limit(1).
		Find(&step)
	if result.Error != nil {
		return models.GoalStep{}, false, result.Error
	}
	return step, result.RowsAffected > 0, nil
}

func refreshGoalProgress(tx *gorm.DB, goalID uint) error {
	var total int64
	if err := tx.Model(&models.GoalStep{}).Where("goal_id = ?", goalID).Count(&total).Error; err != nil {
		return err
	}
	var completed int64
	if err := tx.Model(&models.GoalStep{}).
		Where("goal_id = ? AND completed = ?", goalID, true).
		Count(&completed).Error; err != nil {
		return err
	}

	percentage := services.ProgressPercentage(int(completed), int(total))
	return tx.Model(&models.Goal{}).
		Where("id = ?", goalID).
		Update("progress_percentage", percentage).Error
}
