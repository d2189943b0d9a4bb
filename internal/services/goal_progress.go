package services

import "math"

// ProgressPercentage is round(100 * completed / total), and 0 when there is
// nothing to count.
func ProgressPercentage(completed int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
