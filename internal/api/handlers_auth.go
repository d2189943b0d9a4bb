package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
	"gorm.io/gorm"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var payload registerRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	email := services.NormalizeEmail(payload.Email)
	if email == "" || payload.Password == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Email and password are required", nil)
	}

	exists, err := handler.authService.EmailExists(email)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Registration failed", err)
	}
	if exists {
		return errorResponse(c, fiber.StatusConflict, "User already exists", nil)
	}

	passwordHash, err := services.HashPassword(payload.Password)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Registration failed", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(payload.FullName),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Registration failed", err)
	}

	return handler.respondWithTokenPair(c, &user, "User registered successfully", fiber.StatusCreated)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var payload loginRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Email and password are required", nil)
	}

	user, err := handler.authService.FindByEmail(payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	if !services.CheckPassword(user.PasswordHash, payload.Password) {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
	}

	return handler.respondWithTokenPair(c, &user, "Login successful", fiber.StatusOK)
}

func (handler *Handler) Refresh(c *fiber.Ctx) error {
	var payload refreshRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if strings.TrimSpace(payload.RefreshToken) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Refresh token is required", nil)
	}

	claims, err := parseToken(payload.RefreshToken, handler.cfg.RefreshSecret)
	if err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", nil)
	}

	accessToken, err := handler.buildAccessToken(&user)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to issue token", err)
	}

	return successResponse(c, fiber.StatusOK, "Token refreshed", fiber.Map{
		"accessToken": accessToken,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	fresh, err := handler.authService.FindByID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "User not found", nil)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user", err)
	}

	return successResponse(c, fiber.StatusOK, "", fresh)
}

func (handler *Handler) respondWithTokenPair(c *fiber.Ctx, user *models.User, message string, status int) error {
	accessToken, err := handler.buildAccessToken(user)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to issue token", err)
	}
	refreshToken, err := handler.buildRefreshToken(user)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to issue token", err)
	}

	return successResponse(c, status, message, fiber.Map{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
