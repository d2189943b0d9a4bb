package services

import "fmt"

type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// BuildGoalRoadmap returns the fixed five-step planning template with the
// goal title interpolated into the first step. This is deliberately not a
// generative call.
func BuildGoalRoadmap(goalTitle string) []RoadmapStep {
	return []RoadmapStep{
		{
			Title:       fmt.Sprintf("Research and planning for %s", goalTitle),
			Description: "Gather information and create a detailed plan",
			OrderIndex:  1,
		},
		{
			Title:       "Break down into smaller milestones",
			Description: "Divide the goal into achievable sub-goals",
			OrderIndex:  2,
		},
		{
			Title:       "Execute first milestone",
			Description: "Start working on the first actionable step",
			OrderIndex:  3,
		},
		{
			Title:       "Review and adjust",
			Description: "Evaluate progress and make necessary adjustments",
			OrderIndex:  4,
		},
		{
			Title:       "Complete and celebrate",
			Description: "Finish the goal and acknowledge your achievement",
			OrderIndex:  5,
		},
	}
}
