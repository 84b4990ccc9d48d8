package courseValidator

import (
	"elearn/middleware"
	"elearn/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollmentListQuery filters a user's enrollment listing
type EnrollmentListQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	CourseID int    `query:"course_id"`
	Status   string `query:"status"`
}

func EnrollmentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentListQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page < 0 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 0 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Status != "" &&
			reqData.Status != models.EnrollmentStatusEnrolled &&
			reqData.Status != models.EnrollmentStatusPending &&
			reqData.Status != models.EnrollmentStatusCancelled {
			errors["status"] = "Status must be Enrolled, Pending or Cancelled!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentList", reqData)
		return c.Next()
	}
}
