package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

type createHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Frequency   string `json:"frequency"`
	TargetCount *int   `json:"target_count"`
}

type habitPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Frequency   *string `json:"frequency"`
	TargetCount *int    `json:"target_count"`
}

type habitLogRequest struct {
	Date      *string `json:"date"`
	Completed *bool   `json:"completed"`
	Notes     string  `json:"notes"`
}

// habitWithStatus is a habit plus its streaks recomputed from logs as of the
// reference day.
type habitWithStatus struct {
	models.Habit
	CompletedToday bool `json:"completed_today"`
}

func (patch habitPatch) updates() (map[string]any, string) {
	updates := make(map[string]any)
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, "Name cannot be empty"
		}
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Type != nil {
		if !models.IsValidHabitType(*patch.Type) {
			return nil, "Invalid habit type"
		}
		updates["type"] = *patch.Type
	}
	if patch.Frequency != nil {
		if !models.IsValidFrequency(*patch.Frequency) {
			return nil, "Invalid frequency"
		}
		updates["frequency"] = *patch.Frequency
	}
	if patch.TargetCount != nil {
		updates["target_count"] = *patch.TargetCount
	}
	return updates, ""
}

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	reference := services.DateOnlyUTC(time.Now())
	if raw := c.Query("date"); raw != "" {
		day, err := services.ParseDay(raw)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
		}
		reference = services.DateOnlyUTC(day)
	}

	habits, err := handler.repositories.Habits.ListByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch habits", err)
	}

	enriched := make([]habitWithStatus, 0, len(habits))
	for _, habit := range habits {
		logs, err := handler.repositories.Habits.ListLogs(habit.ID)
		if err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch habits", err)
		}

		streaks := services.ComputeHabitStreaks(logs, reference)
		if streaks.CurrentStreak != habit.CurrentStreak || streaks.LongestStreak != habit.LongestStreak {
			// Cache refresh only; the derived values below are what gets served.
			_ = handler.repositories.Habits.SaveStreakCounters(habit.ID, streaks.CurrentStreak, streaks.LongestStreak)
		}

		habit.CurrentStreak = streaks.CurrentStreak
		habit.LongestStreak = streaks.LongestStreak
		enriched = append(enriched, habitWithStatus{
			Habit:          habit,
			CompletedToday: streaks.CompletedToday,
		})
	}

	return successResponse(c, fiber.StatusOK, "", enriched)
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createHabitRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(payload.Name) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Name is required", nil)
	}

	habit := models.Habit{
		UserID:      user.ID,
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Type:        models.HabitTypeGood,
		Frequency:   models.FrequencyDaily,
		TargetCount: payload.TargetCount,
	}
	if payload.Type != "" {
		if !models.IsValidHabitType(payload.Type) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid habit type", nil)
		}
		habit.Type = payload.Type
	}
	if payload.Frequency != "" {
		if !models.IsValidFrequency(payload.Frequency) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid frequency", nil)
		}
		habit.Frequency = payload.Frequency
	}

	if err := handler.repositories.Habits.Create(&habit); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create habit", err)
	}
	return successResponse(c, fiber.StatusCreated, "Habit created", habit)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid habit id", nil)
	}

	var patch habitPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.Habits.UpdateByIDAndUser(habitID, user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update habit", err)
		}
	}

	habit, found, err := handler.repositories.Habits.FindByIDAndUser(habitID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update habit", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Habit updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Habit updated", habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid habit id", nil)
	}

	if err := handler.repositories.Habits.DeleteByIDAndUser(habitID, user.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete habit", err)
	}
	return successResponse(c, fiber.StatusOK, "Habit deleted", nil)
}

func (handler *Handler) LogHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid habit id", nil)
	}

	_, found, err := handler.repositories.Habits.FindByIDAndUser(habitID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to log habit", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Habit not found", nil)
	}

	var payload habitLogRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	day := services.DateOnlyUTC(time.Now())
	if payload.Date != nil && *payload.Date != "" {
		parsed, err := services.ParseDay(*payload.Date)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
		}
		day = services.DateOnlyUTC(parsed)
	}

	completed := true
	if payload.Completed != nil {
		completed = *payload.Completed
	}

	entry, err := handler.repositories.Habits.UpsertLog(habitID, day, completed, payload.Notes)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to log habit", err)
	}
	return successResponse(c, fiber.StatusCreated, "Habit logged", entry)
}

func (handler *Handler) GetHabitLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	habitID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid habit id", nil)
	}

	_, found, err := handler.repositories.Habits.FindByIDAndUser(habitID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch habit logs", err)
	}
	if !found {
		return errorResponse(c, fiber.StatusNotFound, "Habit not found", nil)
	}

	logs, err := handler.repositories.Habits.ListLogs(habitID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch habit logs", err)
	}
	return successResponse(c, fiber.StatusOK, "", logs)
}
