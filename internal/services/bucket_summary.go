package services

import "github.com/lifeboard/lifeboard/internal/models"

type BucketListSummary struct {
	Total          int            `json:"total"`
	StatusCounts   map[string]int `json:"statusCounts"`
	CompletionRate int            `json:"completionRate"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

// BuildBucketListSummary computes counts over an already-filtered item list.
// Items without a category are grouped under "uncategorized". An empty list
// yields a 0% completion rate.
func BuildBucketListSummary(items []models.BucketItem) BucketListSummary {
	summary := BucketListSummary{
		Total:          len(items),
		StatusCounts:   make(map[string]int),
		CategoryCounts: make(map[string]int),
	}

	for _, item := range items {
		summary.StatusCounts[item.Status]++

		category := item.Category
		if category == "" {
			category = models.UncategorizedBucketCategory
		}
		summary.CategoryCounts[category]++
	}

	summary.CompletionRate = ProgressPercentage(summary.StatusCounts[models.BucketStatusCompleted], summary.Total)
	return summary
}
