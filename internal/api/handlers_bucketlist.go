package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeboard/lifeboard/internal/models"
	"github.com/lifeboard/lifeboard/internal/services"
)

type createBucketItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	TargetDate  *string `json:"target_date"`
	ImageURL    string  `json:"image_url"`
	Status      string  `json:"status"`
}

type bucketItemPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	TargetDate  *string `json:"target_date"`
	ImageURL    *string `json:"image_url"`
	Status      *string `json:"status"`
}

type bucketStatusRequest struct {
	Status string `json:"status"`
}

func (patch bucketItemPatch) updates() (map[string]any, string) {
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
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Status != nil {
		if !models.IsValidBucketStatus(*patch.Status) {
			return nil, "Invalid status"
		}
		updates["status"] = *patch.Status
	}
	return updates, ""
}

func (handler *Handler) GetBucketItems(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	items, err := handler.repositories.BucketItems.ListByUser(user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch bucket list items", err)
	}
	return successResponse(c, fiber.StatusOK, "", items)
}

func (handler *Handler) GetBucketListSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	status := c.Query("status")
	if status != "" && !models.IsValidBucketStatus(status) {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
	}

	items, err := handler.repositories.BucketItems.ListFiltered(user.ID, c.Query("category"), status)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to fetch bucket list summary", err)
	}
	return successResponse(c, fiber.StatusOK, "", services.BuildBucketListSummary(items))
}

func (handler *Handler) CreateBucketItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var payload createBucketItemRequest
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

	item := models.BucketItem{
		UserID:      user.ID,
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		Category:    payload.Category,
		TargetDate:  targetDate,
		ImageURL:    payload.ImageURL,
		Status:      models.BucketStatusNotStarted,
	}
	if payload.Status != "" {
		if !models.IsValidBucketStatus(payload.Status) {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
		}
		item.Status = payload.Status
	}

	if err := handler.repositories.BucketItems.Create(&item); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create bucket list item", err)
	}
	return successResponse(c, fiber.StatusCreated, "Bucket list item created", item)
}

func (handler *Handler) UpdateBucketItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var patch bucketItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, problem := patch.updates()
	if problem != "" {
		return errorResponse(c, fiber.StatusBadRequest, problem, nil)
	}

	if len(updates) > 0 {
		if _, err := handler.repositories.BucketItems.UpdateByIDAndUser(itemID, user.ID, updates); err != nil {
			return errorResponse(c, fiber.StatusInternalServerError, "Failed to update bucket list item", err)
		}
	}

	item, found, err := handler.repositories.BucketItems.FindByIDAndUser(itemID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update bucket list item", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Bucket list item updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Bucket list item updated", item)
}

func (handler *Handler) UpdateBucketItemStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	var payload bucketStatusRequest
	if err := c.BodyParser(&payload); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if !models.IsValidBucketStatus(payload.Status) {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid status", nil)
	}

	if _, err := handler.repositories.BucketItems.UpdateByIDAndUser(itemID, user.ID, map[string]any{
		"status": payload.Status,
	}); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update bucket list item", err)
	}

	item, found, err := handler.repositories.BucketItems.FindByIDAndUser(itemID, user.ID)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update bucket list item", err)
	}
	if !found {
		return successResponse(c, fiber.StatusOK, "Bucket list item updated", nil)
	}
	return successResponse(c, fiber.StatusOK, "Bucket list item updated", item)
}

func (handler *Handler) DeleteBucketItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid item id", nil)
	}

	if err := handler.repositories.BucketItems.DeleteByIDAndUser(itemID, user.ID); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete bucket list item", err)
	}
	return successResponse(c, fiber.StatusOK, "Bucket list item deleted", nil)
}
