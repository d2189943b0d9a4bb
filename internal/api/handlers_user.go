package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/services"
)

type profilePatch struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var patch profilePatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := make(map[string]any)
	if patch.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*patch.FullName)
	}
	if patch.Email != nil {
		email := services.NormalizeEmail(*patch.Email)
		if email == "" {
			return errorResponse(c, fiber.StatusBadRequest, "Email cannot be empty", nil)
		}
		taken, err := handler.repositories.Users.ExistsByNormalizedEmailExcluding(email, user.ID)
		if err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", err)
		}
		if taken {
			return errorResponse(c, fiber.StatusBadRequest, "Email already in use", nil)
		}
		updates["email"] = email
	}

	if len(updates) > 0 {
		if err := handler.repositories.Users.UpdateByID(user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", err)
		}
	}

	updated, err := handler.repositories.Users.FindByID(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update profile", err)
	}
	return successResponse(c, fiber.StatusOK, "Profile updated successfully", updated)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload changePasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if payload.CurrentPassword == "" || payload.NewPassword == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Current password and new password are required", nil)
	}

	if !services.CheckPassword(user.PasswordHash, payload.CurrentPassword) {
		return errorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect", nil)
	}

	passwordHash, err := services.HashPassword(payload.NewPassword)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to change password", err)
	}

	if err := handler.repositories.Users.UpdatePassword(user.ID, passwordHash); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to change password", err)
	}
	return successResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}
