package reviewValidator

import (
	"elearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ReviewPayload is the review submission body
type ReviewPayload struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(ReviewPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func ReviewList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func parseCourseID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	c.Locals("courseID", id)
	return nil
}
