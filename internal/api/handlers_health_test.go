package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

func TestCreateHealthMetric(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/health/metrics", pair.AccessToken, fiber.Map{
		"date":        "2024-04-01",
		"weight":      72.5,
		"sleep_hours": 7.5,
		"mood":        "good",
	})
	envelope := expectStatus(t, response, http.StatusCreated)

	var metric models.HealthMetric
	decodeData(t, envelope, &metric)
	if metric.Weight == nil || *metric.Weight != 72.5 {
		t.Fatalf("weight = %v, want 72.5", metric.Weight)
	}
	if metric.WaterIntake != nil {
		t.Fatalf("water intake = %v, want nil (not provided)", metric.WaterIntake)
	}
}

func TestCreateHealthMetricRequiresDate(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/health/metrics", pair.AccessToken, fiber.Map{
		"weight": 70,
	})
	expectStatus(t, response, http.StatusBadRequest)
}

func TestCreateWorkoutValidation(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	cases := []fiber.Map{
		{"type": "run", "duration_minutes": 30},
		{"date": "2024-04-01", "duration_minutes": 30},
		{"date": "2024-04-01", "type": "run"},
		{"date": "2024-04-01", "type": "run", "duration_minutes": 30, "intensity": "extreme"},
	}
	for index, payload := range cases {
		response := doRequest(t, app, http.MethodPost, "/health/workouts", pair.AccessToken, payload)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: status %d, want 400", index, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestCreateWorkoutDefaultsIntensity(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPost, "/health/workouts", pair.AccessToken, fiber.Map{
		"date":             "2024-04-01",
		"type":             "swimming",
		"duration_minutes": 45,
	})
	envelope := expectStatus(t, response, http.StatusCreated)

	var workout models.Workout
	decodeData(t, envelope, &workout)
	if workout.Intensity != models.IntensityMedium {
		t.Fatalf("intensity = %q, want medium", workout.Intensity)
	}

	listEnvelope := expectStatus(t, doRequest(t, app, http.MethodGet, "/health/workouts", pair.AccessToken, nil), http.StatusOK)
	var workouts []models.Workout
	decodeData(t, listEnvelope, &workouts)
	if len(workouts) != 1 || workouts[0].Type != "swimming" {
		t.Fatalf("workouts = %+v", workouts)
	}
}
