package db

import (
	"github.com/lifeboard/lifeboard/internal/models"
	"gorm.io/gorm"
)

type HealthRepository struct {
	database *gorm.DB
}

func NewHealthRepository(database *gorm.DB) *HealthRepository {
	return &HealthRepository{database: database}
}

func (repo *HealthRepository) ListMetricsByUser(userID uint) ([]models.HealthMetric, error) {
	metrics := make([]models.HealthMetric, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (repo *HealthRepository) CreateMetric(metric *models.HealthMetric) error {
	return repo.database.Create(metric).Error
}

func (repo *HealthRepository) ListWorkoutsByUser(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *HealthRepository) CreateWorkout(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}
