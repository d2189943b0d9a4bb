package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPut, "/user/profile", pair.AccessToken, fiber.Map{
		"full_name": "  Ada Lovelace  ",
	})
	envelope := expectStatus(t, response, http.StatusOK)

	var updated models.User
	decodeData(t, envelope, &updated)
	if updated.FullName != "Ada Lovelace" {
		t.Fatalf("full name = %q, want trimmed value", updated.FullName)
	}
	if updated.Email != pair.User.Email {
		t.Fatalf("email changed unexpectedly to %q", updated.Email)
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	first := registerTestUser(t, app)
	second := registerTestUser(t, app)

	response := doRequest(t, app, http.MethodPut, "/user/profile", second.AccessToken, fiber.Map{
		"email": first.User.Email,
	})
	envelope := expectStatus(t, response, http.StatusBadRequest)
	if envelope.Message != "Email already in use" {
		t.Fatalf("message = %q", envelope.Message)
	}
}

func TestUpdateProfileKeepsOwnEmail(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	// Re-submitting the caller's own email is not a conflict.
	response := doRequest(t, app, http.MethodPut, "/user/profile", pair.AccessToken, fiber.Map{
		"email": pair.User.Email,
	})
	expectStatus(t, response, http.StatusOK)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t)
	pair := registerTestUser(t, app)

	wrong := doRequest(t, app, http.MethodPut, "/user/password", pair.AccessToken, fiber.Map{
		"current_password": "not-the-password",
		"new_password":     "brand-new-password",
	})
	expectStatus(t, wrong, http.StatusUnauthorized)

	response := doRequest(t, app, http.MethodPut, "/user/password", pair.AccessToken, fiber.Map{
		"current_password": "correct-horse-battery",
		"new_password":     "brand-new-password",
	})
	expectStatus(t, response, http.StatusOK)

	// Old password no longer works, new one does.
	oldLogin := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    pair.User.Email,
		"password": "correct-horse-battery",
	})
	expectStatus(t, oldLogin, http.StatusUnauthorized)

	newLogin := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email":    pair.User.Email,
		"password": "brand-new-password",
	})
	expectStatus(t, newLogin, http.StatusOK)
}
