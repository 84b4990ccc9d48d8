package categoryValidator

import (
	"elearn/middleware"
	"elearn/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CategoryPayload is the create/update request body
type CategoryPayload struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	ParentID       uint   `json:"parent_id"`
	PreferredOrder int    `json:"preferred_order"`
	Status         string `json:"status"`
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 255 {
			errors["name"] = "Name must not exceed 255 characters!"
		}

		if reqData.Status != "" && !validCategoryStatus(reqData.Status) {
			errors["status"] = "Status must be active or inactive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCategoryID(c); err != nil {
			return err
		}

		reqData := new(CategoryPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status != "" && !validCategoryStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be active or inactive!",
			})
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

func DeleteCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCategoryID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func parseCategoryID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category ID is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}

	c.Locals("categoryID", id)
	return nil
}

func validCategoryStatus(status string) bool {
	return status == models.CategoryStatusActive || status == models.CategoryStatusInactive
}
