package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	GoalID      *uint   `json:"goal_id"`
}

type taskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	GoalID      *uint   `json:"goal_id"`
}

func (patch taskPatch) updates() (map[string]any, string) {
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
	if patch.DueDate != nil {
		day, err := parseOptionalDay(patch.DueDate)
		if err != nil {
			return nil, "Invalid due date"
		}
		updates["due_date"] = day
	}
	if patch.Priority != nil {
		if !models.IsValidPriority(*patch.Priority) {
			return nil, "Invalid priority"
		}
		updates["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		if !models.IsValidTaskStatus(*patch.Status) {
			return nil, "Invalid status"
		}
		updates["status"] = *patch.Status
	}
	if patch.GoalID != nil {
		updates["goal_id"] = *patch.GoalID
	}
	return updates, ""
}

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	tasks, err := handler.repositories.Tasks.ListByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch tasks", err)
	}
	return successResponse(c, fiber.StatusOK, "", tasks)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createTaskRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required", nil)
	}

	dueDate, err := parseOptionalDay(payload.DueDate)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid due date", err)
	}

	task := models.Task{
		UserID:      user.ID,
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		DueDate:     dueDate,
		Priority:    models.PriorityMedium,
		Status:      models.TaskStatusTodo,
		GoalID:      payload.GoalID,
	}
	if payload.Priority != "" {
		if !models.IsValidPriority(payload.Priority) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid priority", nil)
		}
		task.Priority = payload.Priority
	}
	if payload.Status != "" {
		if !models.IsValidTaskStatus(payload.Status) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
		}
		task.Status = payload.Status
	}

	if err := handler.repositories.Tasks.Create(&task); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create task", err)
	}
	return successResponse(c, fiber.StatusCreated, "Task created", task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid task id", nil)
	}

	var patch taskPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.Tasks.UpdateByIDAndUser(taskID, user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update task", err)
		}
	}

	task, found, err := handler.repositories.Tasks.FindByIDAndUser(taskID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update task", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Task updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Task updated", task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid task id", nil)
	}

	if err := handler.repositories.Tasks.DeleteByIDAndUser(taskID, user.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete task", err)
	}
	return successResponse(c, fiber.StatusOK, "Task deleted", nil)
}
