package models

import "time"

const (
	BucketStatusNotStarted = "not_started"
	BucketStatusPlanning   = "planning"
	BucketStatusInProgress = "in_progress"
	BucketStatusCompleted  = "completed"
)

// UncategorizedBucketCategory groups items without a category in summaries.
const UncategorizedBucketCategory = "uncategorized"

type BucketItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	TargetDate  *time.Time `gorm:"type:date" json:"target_date,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      string     `gorm:"not null;default:not_started" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func IsValidBucketStatus(status string) bool {
	switch status {
	case BucketStatusNotStarted, BucketStatusPlanning, BucketStatusInProgress, BucketStatusCompleted:
		return true
	}
	return false
}
