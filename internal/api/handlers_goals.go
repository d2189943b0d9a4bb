package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

type createGoalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	TargetDate  *string `json:"target_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

// goalPatch enumerates the updatable goal fields; only fields present in the
// request body are applied.
type goalPatch struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	Category           *string `json:"category"`
	TargetDate         *string `json:"target_date"`
	Priority           *string `json:"priority"`
	Status             *string `json:"status"`
	ProgressPercentage *int    `json:"progress_percentage"`
}

type roadmapRequest struct {
	GoalTitle   string `json:"goalTitle"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
}

func (patch goalPatch) updates() (map[string]any, string) {
	updates := make(map[string]any)
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, "Title cannot be empty"
		}
		updates["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.TargetDate != nil {
		day, err := parseOptionalDay(patch.TargetDate)
		if err != nil {
			return nil, "Invalid target date"
		}
		updates["target_date"] = day
	}
	if patch.Priority != nil {
		if !models.IsValidPriority(*patch.Priority) {
			return nil, "Invalid priority"
		}
		updates["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		if !models.IsValidGoalStatus(*patch.Status) {
			return nil, "Invalid status"
		}
		updates["status"] = *patch.Status
	}
	if patch.ProgressPercentage != nil {
		if *patch.ProgressPercentage < 0 || *patch.ProgressPercentage > 100 {
			return nil, "Invalid progress percentage"
		}
		updates["progress_percentage"] = *patch.ProgressPercentage
	}
	return updates, ""
}

func (handler *Handler) GetGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	goals, err := handler.repositories.Goals.ListByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch goals", err)
	}
	return successResponse(c, fiber.StatusOK, "", goals)
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createGoalRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required", nil)
	}

	targetDate, err := parseOptionalDay(payload.TargetDate)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid target date", err)
	}

	goal := models.Goal{
		UserID:      user.ID,
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		Category:    payload.Category,
		TargetDate:  targetDate,
		Priority:    models.PriorityMedium,
		Status:      models.GoalStatusNotStarted,
	}
	if payload.Priority != "" {
		if !models.IsValidPriority(payload.Priority) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid priority", nil)
		}
		goal.Priority = payload.Priority
	}
	if payload.Status != "" {
		if !models.IsValidGoalStatus(payload.Status) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
		}
		goal.Status = payload.Status
	}

	if err := handler.repositories.Goals.Create(&goal); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create goal", err)
	}
	return successResponse(c, fiber.StatusCreated, "Goal created", goal)
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid goal id", nil)
	}

	var patch goalPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.Goals.UpdateByIDAndUser(goalID, user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update goal", err)
		}
	}

	goal, found, err := handler.repositories.Goals.FindByIDAndUser(goalID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update goal", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Goal updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Goal updated", goal)
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid goal id", nil)
	}

	if err := handler.repositories.Goals.DeleteByIDAndUser(goalID, user.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete goal", err)
	}
	return successResponse(c, fiber.StatusOK, "Goal deleted", nil)
}

func (handler *Handler) GenerateRoadmap(c *fiber.Ctx) error {
	var payload roadmapRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.GoalTitle) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Goal title is required", nil)
	}

	steps := services.BuildGoalRoadmap(strings.TrimSpace(payload.GoalTitle))
	return successResponse(c, fiber.StatusOK, "AI roadmap generated", steps)
}
