package api

import (
	"time"

	"github.com/lifeboard/lifeboard/internal/services"
)

// parseOptionalDay converts an optional YYYY-MM-DD string into a UTC calendar
// day; nil input stays nil.
func parseOptionalDay(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	day, err := services.ParseDay(*raw)
	if err != nil {
		return nil, err
	}
	normalized := services.DateOnlyUTC(day)
	return &normalized, nil
}
