package services

import (
	"sort"
	"time"

	"github.com/lifeboard/lifeboard/internal/models"
)

type HabitStreaks struct {
	CompletedToday bool `json:"completed_today"`
	CurrentStreak  int  `json:"current_streak"`
	LongestStreak  int  `json:"longest_streak"`
}

// ComputeHabitStreaks derives streaks from the habit's log collection as of
// the given reference day. The stored counters on the habit row are never
// consulted.
//
// The current streak walks backward one calendar day at a time from the
// reference day and stops at the first day without a completed log; it is 0
// when the reference day itself has none. The longest streak is the longest
// run of consecutive completed days anywhere in the logs.
func ComputeHabitStreaks(logs []models.HabitLog, reference time.Time) HabitStreaks {
	completedDays := make(map[string]struct{}, len(logs))
	for _, log := range logs {
		if log.Completed {
			completedDays[dayKey(log.Date)] = struct{}{}
		}
	}

	streaks := HabitStreaks{}
	if len(completedDays) == 0 {
		return streaks
	}

	referenceDay := DateOnlyUTC(reference)
	_, streaks.CompletedToday = completedDays[dayKey(referenceDay)]

	if streaks.CompletedToday {
		for cursor := referenceDay; ; cursor = cursor.AddDate(0, 0, -1) {
			if _, ok := completedDays[dayKey(cursor)]; !ok {
				break
			}
			streaks.CurrentStreak++
		}
	}

	streaks.LongestStreak = longestRun(completedDays)
	return streaks
}

func longestRun(completedDays map[string]struct{}) int {
	days := make([]time.Time, 0, len(completedDays))
	for key := range completedDays {
		day, err := time.Parse(dayFormat, key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	longest := 0
	run := 0
	for index, day := range days {
		if index == 0 || days[index-1].AddDate(0, 0, -1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
