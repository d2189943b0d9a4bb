package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Goals       *GoalRepository
	Habits      *HabitRepository
	Finances    *FinanceRepository
	Tasks       *TaskRepository
	Health      *HealthRepository
	BucketItems *BucketItemRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Goals:       NewGoalRepository(database),
		Habits:      NewHabitRepository(database),
		Finances:    NewFinanceRepository(database),
		Tasks:       NewTaskRepository(database),
		Health:      NewHealthRepository(database),
		BucketItems: NewBucketItemRepository(database),
	}
}
