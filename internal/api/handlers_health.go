package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

type createHealthMetricRequest struct {
	Date        string   `json:"date"`
	Weight      *float64 `json:"weight"`
	SleepHours  *float64 `json:"sleep_hours"`
	WaterIntake *float64 `json:"water_intake"`
	Mood        string   `json:"mood"`
	Notes       string   `json:"notes"`
}

type createWorkoutRequest struct {
	Date            string `json:"date"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	CaloriesBurned  *int   `json:"calories_burned"`
	Notes           string `json:"notes"`
}

func (handler *Handler) GetHealthMetrics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	metrics, err := handler.repositories.Health.ListMetricsByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch health metrics", err)
	}
	return successResponse(c, fiber.StatusOK, "", metrics)
}

func (handler *Handler) CreateHealthMetric(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createHealthMetricRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if payload.Date == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Date is required", nil)
	}

	day, err := services.ParseDay(payload.Date)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	metric := models.HealthMetric{
		UserID:      user.ID,
		Date:        services.DateOnlyUTC(day),
		Weight:      payload.Weight,
		SleepHours:  payload.SleepHours,
		WaterIntake: payload.WaterIntake,
		Mood:        payload.Mood,
		Notes:       payload.Notes,
	}
	if err := handler.repositories.Health.CreateMetric(&metric); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create health metric", err)
	}
	return successResponse(c, fiber.StatusCreated, "Health metric created", metric)
}

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	workouts, err := handler.repositories.Health.ListWorkoutsByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch workouts", err)
	}
	return successResponse(c, fiber.StatusOK, "", workouts)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createWorkoutRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if payload.Date == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Date is required", nil)
	}
	if strings.TrimSpace(payload.Type) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Workout type is required", nil)
	}
	if payload.DurationMinutes <= 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Duration must be positive", nil)
	}

	day, err := services.ParseDay(payload.Date)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	workout := models.Workout{
		UserID:          user.ID,
		Date:            services.DateOnlyUTC(day),
		Type:            strings.TrimSpace(payload.Type),
		DurationMinutes: payload.DurationMinutes,
		Intensity:       models.IntensityMedium,
		CaloriesBurned:  payload.CaloriesBurned,
		Notes:           payload.Notes,
	}
	if payload.Intensity != "" {
		if !models.IsValidIntensity(payload.Intensity) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid intensity", nil)
		}
		workout.Intensity = payload.Intensity
	}

	if err := handler.repositories.Health.CreateWorkout(&workout); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create workout", err)
	}
	return successResponse(c, fiber.StatusCreated, "Workout created", workout)
}
