package tagController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	tagValidator "elearn/validators/tag"

	"github.com/gofiber/fiber/v2"
)

// GetAllTags lists all tags
func GetAllTags(c *fiber.Ctx) error {
	db := database.Database.Db

	var tags []models.Tag
	if err := db.Order("name ASC").Find(&tags).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tags!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tags fetched successfully!", tags)
}

// CreateTag creates a tag available for course snapshotting
func CreateTag(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTag").(*tagValidator.TagPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	tag := models.Tag{
		Name:     reqData.Name,
		NameSlug: utils.Slugify(reqData.Name),
		Color:    reqData.Color,
	}

	if err := db.Create(&tag).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tag!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tag created successfully!", tag)
}
