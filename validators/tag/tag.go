package tagValidator

import (
	"elearn/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TagPayload is the create request body
type TagPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func CreateTag() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TagPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) > 100 {
			errors["name"] = "Name must not exceed 100 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTag", reqData)
		return c.Next()
	}
}
