package services

import (
	"testing"

	"github.com/lifeboard/lifeboard/internal/models"
)

func TestBuildBucketListSummaryEmpty(t *testing.T) {
	t.Parallel()

	summary := BuildBucketListSummary(nil)
	if summary.Total != 0 {
		t.Fatalf("total = %d, want 0", summary.Total)
	}
	if summary.CompletionRate != 0 {
		t.Fatalf("completion rate = %d, want 0", summary.CompletionRate)
	}
	if len(summary.StatusCounts) != 0 || len(summary.CategoryCounts) != 0 {
		t.Fatalf("expected empty count maps, got %+v", summary)
	}
}

func TestBuildBucketListSummaryCounts(t *testing.T) {
	t.Parallel()

	items := []models.BucketItem{
		{Status: models.BucketStatusCompleted, Category: "travel"},
		{Status: models.BucketStatusCompleted, Category: "travel"},
		{Status: models.BucketStatusCompleted, Category: "skills"},
		{Status: models.BucketStatusInProgress},
	}

	summary := BuildBucketListSummary(items)
	if summary.Total != 4 {
		t.Fatalf("total = %d, want 4", summary.Total)
	}
	if summary.CompletionRate != 75 {
		t.Fatalf("completion rate = %d, want 75", summary.CompletionRate)
	}
	if summary.StatusCounts[models.BucketStatusCompleted] != 3 {
		t.Fatalf("completed count = %d, want 3", summary.StatusCounts[models.BucketStatusCompleted])
	}
	if summary.StatusCounts[models.BucketStatusInProgress] != 1 {
		t.Fatalf("in_progress count = %d, want 1", summary.StatusCounts[models.BucketStatusInProgress])
	}
	if summary.CategoryCounts["travel"] != 2 {
		t.Fatalf("travel count = %d, want 2", summary.CategoryCounts["travel"])
	}
	if summary.CategoryCounts[models.UncategorizedBucketCategory] != 1 {
		t.Fatalf("uncategorized count = %d, want 1", summary.CategoryCounts[models.UncategorizedBucketCategory])
	}
}
