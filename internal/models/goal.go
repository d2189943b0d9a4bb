package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	GoalStatusNotStarted = "not_started"
	GoalStatusInProgress = "in_progress"
	GoalStatusCompleted  = "completed"
)

type Goal struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	UserID             uint       `gorm:"not null;index" json:"user_id"`
	Title              string     `gorm:"not null" json:"title"`
	Description        string     `json:"description,omitempty"`
	Category           string     `json:"category,omitempty"`
	TargetDate         *time.Time `gorm:"type:date" json:"target_date,omitempty"`
	Priority           string     `gorm:"not null;default:medium" json:"priority"`
	Status             string     `gorm:"not null;default:not_started" json:"status"`
	ProgressPercentage int        `gorm:"not null;default:0" json:"progress_percentage"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type GoalStep struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	GoalID      uint       `gorm:"not null;index" json:"goal_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `gorm:"type:date" json:"deadline,omitempty"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	OrderIndex  int        `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
}

func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func IsValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusNotStarted, GoalStatusInProgress, GoalStatusCompleted:
		return true
	}
	return false
}
