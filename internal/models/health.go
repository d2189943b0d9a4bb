package models

import "time"

const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// HealthMetric is a sparse daily sample: every measurement is optional.
type HealthMetric struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Weight      *float64  `json:"weight,omitempty"`
	SleepHours  *float64  `json:"sleep_hours,omitempty"`
	WaterIntake *float64  `json:"water_intake,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Workout struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Date            time.Time `gorm:"type:date;not null" json:"date"`
	Type            string    `gorm:"not null" json:"type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Intensity       string    `gorm:"not null;default:medium" json:"intensity"`
	CaloriesBurned  *int      `json:"calories_burned,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func IsValidIntensity(intensity string) bool {
	switch intensity {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}
