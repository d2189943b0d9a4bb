package models

import "time"

const (
	HabitTypeGood = "good"
	HabitTypeBad  = "bad"
)

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyCustom = "custom"
)

// CurrentStreak and LongestStreak are a cache of the last computed values.
// Reads always derive streaks from the log collection; the stored columns are
// never treated as authoritative.
type Habit struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description,omitempty"`
	Type          string    `gorm:"not null;default:good" json:"type"`
	Frequency     string    `gorm:"not null;default:daily" json:"frequency"`
	TargetCount   *int      `json:"target_count,omitempty"`
	CurrentStreak int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int       `gorm:"not null;default:0" json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HabitLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_date" json:"date"`
	Completed bool      `gorm:"not null;default:true" json:"completed"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidHabitType(habitType string) bool {
	return habitType == HabitTypeGood || habitType == HabitTypeBad
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	}
	return false
}
