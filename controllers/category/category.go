package categoryController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	categoryValidator "elearn/validators/category"

	"github.com/gofiber/fiber/v2"
)

// GetAllCategories lists active categories in their preferred display order
func GetAllCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var categories []models.Category
	if err := db.Where("status = ?", models.CategoryStatusActive).
		Order("preferred_order ASC").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

// CreateCategory creates a category; a non-zero parent_id makes it a
// subcategory of that parent
func CreateCategory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ParentID != 0 {
		var parent models.Category
		if err := db.Where("id = ? AND status = ?", reqData.ParentID, models.CategoryStatusActive).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category not found", nil)
		}
	}

	status := reqData.Status
	if status == "" {
		status = models.CategoryStatusActive
	}

	category := models.Category{
		Name:           reqData.Name,
		NameSlug:       utils.Slugify(reqData.Name),
		Description:    reqData.Description,
		Image:          reqData.Image,
		ParentID:       reqData.ParentID,
		PreferredOrder: reqData.PreferredOrder,
		Status:         status,
		CreatedBy:      userID,
	}

	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory applies a partial update to a category
func UpdateCategory(c *fiber.Ctx) error {
	categoryID, ok := c.Locals("categoryID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CategoryPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND status != ?", categoryID, models.CategoryStatusDeleted).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
		category.NameSlug = utils.Slugify(reqData.Name)
	}
	if reqData.Description != "" {
		category.Description = reqData.Description
	}
	if reqData.Image != "" {
		category.Image = reqData.Image
	}
	if reqData.PreferredOrder != 0 {
		category.PreferredOrder = reqData.PreferredOrder
	}
	if reqData.Status != "" {
		category.Status = reqData.Status
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory soft-deletes a category
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, ok := c.Locals("categoryID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND status != ?", categoryID, models.CategoryStatusDeleted).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found", nil)
	}

	if err := db.Model(&category).Update("status", models.CategoryStatusDeleted).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
