package services

import "time"

const dayFormat = "2006-01-02"

// DateOnlyUTC truncates a timestamp to its calendar day at UTC midnight. All
// day-level comparisons in the app (streaks, log uniqueness) use UTC as the
// canonical timezone.
func DateOnlyUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar date, falling back to RFC 3339 for
// clients that send full timestamps.
func ParseDay(raw string) (time.Time, error) {
	if day, err := time.Parse(dayFormat, raw); err == nil {
		return day, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnlyUTC(parsed), nil
}

func dayKey(value time.Time) string {
	return DateOnlyUTC(value).Format(dayFormat)
}
