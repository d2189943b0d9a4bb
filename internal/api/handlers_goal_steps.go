package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

type createGoalStepRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Deadline    *string `json:"deadline"`
	OrderIndex  int     `json:"order_index"`
}

type goalStepPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Completed   *bool   `json:"completed"`
	OrderIndex  *int    `json:"order_index"`
}

func (patch goalStepPatch) updates() (map[string]any, string) {
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
	if patch.Deadline != nil {
		day, err := parseOptionalDay(patch.Deadline)
		if err != nil {
			return nil, "Invalid deadline"
		}
		updates["deadline"] = day
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if patch.OrderIndex != nil {
		updates["order_index"] = *patch.OrderIndex
	}
	return updates, ""
}

// ownedGoal resolves the :id route param to a goal owned by the caller.
func (handler *Handler) ownedGoal(c *fiber.Ctx) (models.Goal, bool, error) {
	user, ok := currentUser(c)
	if !ok {
		return models.Goal{}, false, nil
	}

	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return models.Goal{}, false, nil
	}
	return handler.repositories.Goals.FindByIDAndUser(goalID, user.ID)
}

func (handler *Handler) GetGoalSteps(c *fiber.Ctx) error {
	goal, found, err := handler.ownedGoal(c)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch goal steps", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Goal not found", nil)
	}

	steps, err := handler.repositories.Goals.ListSteps(goal.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch goal steps", err)
	}
	return successResponse(c, fiber.StatusOK, "", steps)
}

func (handler *Handler) CreateGoalStep(c *fiber.Ctx) error {
	goal, found, err := handler.ownedGoal(c)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create goal step", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Goal not found", nil)
	}

	var payload createGoalStepRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required", nil)
	}

	deadline, err := parseOptionalDay(payload.Deadline)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid deadline", err)
	}

	step := models.GoalStep{
		GoalID:      goal.ID,
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		Deadline:    deadline,
		Completed:   false,
		OrderIndex:  payload.OrderIndex,
	}
	if err := handler.repositories.Goals.CreateStep(&step); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create goal step", err)
	}
	return successResponse(c, fiber.StatusCreated, "Goal step created", step)
}

func (handler *Handler) UpdateGoalStep(c *fiber.Ctx) error {
	goal, found, err := handler.ownedGoal(c)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update goal step", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Goal not found", nil)
	}

	stepID, ok := parseIDParam(c, "stepId")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid step id", nil)
	}

	var patch goalStepPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.Goals.UpdateStep(stepID, goal.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update goal step", err)
		}
	}

	step, found, err := handler.repositories.Goals.FindStep(stepID, goal.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update goal step", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Goal step updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Goal step updated", step)
}

func (handler *Handler) DeleteGoalStep(c *fiber.Ctx) error {
	goal, found, err := handler.ownedGoal(c)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete goal step", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Goal not found", nil)
	}

	stepID, ok := parseIDParam(c, "stepId")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid step id", nil)
	}

	if err := handler.repositories.Goals.DeleteStep(stepID, goal.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete goal step", err)
	}
	return successResponse(c, fiber.StatusOK, "Goal step deleted", nil)
}
