package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
)

// AuthRequired rejects the request with 401 before any handler logic when the
// bearer access token is missing, malformed, expired, or signed with the
// wrong key.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", err)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("no token provided")
	}

	claims, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "), handler.cfg.AccessSecret)
	if err != nil {
		return nil, err
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, errInvalidToken
	}
	return &user, nil
}
