package db

import (
	"time"

	"github.com/lifeboard/lifeboard/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDAndUser(habitID uint, userID uint) (models.Habit, bool, error) {
	var habit models.Habit
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	return habit, result.RowsAffected > 0, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) UpdateByIDAndUser(habitID uint, userID uint, updates map[string]any) (int64, error) {
	result := repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteByIDAndUser removes the habit together with its logs so log rows are
// never orphaned.
func (repo *HabitRepository) DeleteByIDAndUser(habitID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Where("habit_id = ?", habitID).Delete(&models.HabitLog{}).Error
	})
}

func (repo *HabitRepository) ListLogs(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// UpsertLog keeps at most one log per (habit, date): an existing log for the
// day is updated in place.
func (repo *HabitRepository) UpsertLog(habitID uint, day time.Time, completed bool, notes string) (models.HabitLog, error) {
	var entry models.HabitLog
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		dayEnd := day.AddDate(0, 0, 1)
		result := tx.
			Where("habit_id = ? AND date >= ? AND date < ?", habitID, day, dayEnd).
			Limit(1).
			Find(&entry)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			entry = models.HabitLog{
				HabitID:   habitID,
				Date:      day,
				Completed: completed,
				Notes:     notes,
			}
			return tx.Create(&entry).Error
		}

		entry.Completed = completed
		entry.Notes = notes
		return tx.Model(&entry).Updates(map[string]any{
			"completed": completed,
			"notes":     notes,
		}).Error
	})
	if err != nil {
		return models.HabitLog{}, err
	}
	return entry, nil
}

// SaveStreakCounters refreshes the cached streak columns after a read-time
// recompute. Failures here are non-fatal for callers: the derived values are
// what gets served.
func (repo *HabitRepository) SaveStreakCounters(habitID uint, currentStreak int, longestStreak int) error {
	return repo.database.Model(&models.Habit{}).
		Where("id = ?", habitID).
		Updates(map[string]any{
			"current_streak": currentStreak,
			"longest_streak": longestStreak,
		}).Error
}
