package courseValidator

import (
	"elearn/middleware"
	"elearn/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CoursePayload is the authoring request body. Tags and Instructors accept
// either a comma separated string or a list; the orchestrator normalizes
// them before any business logic runs.
type CoursePayload struct {
	Title            string                   `json:"title"`
	Subtitle         string                   `json:"subtitle"`
	Level            string                   `json:"level"`
	CategoryID       uint                     `json:"category_id"`
	SubcategoryID    uint                     `json:"subcategory_id"`
	CourseType       string                   `json:"course_type"`
	OriginalPrice    *int                     `json:"originalPrice"`
	Price            *int                     `json:"price"`
	CourseDuration   int                      `json:"course_duration"`
	Tags             interface{}              `json:"tags"`
	Sections         []map[string]interface{} `json:"sections"`
	Instructors      interface{}              `json:"instructors"`
	InstructorID     uint                     `json:"instructor_id"`
	WhatYouWillLearn interface{}              `json:"what_you_will_learn"`
	Requirements     interface{}              `json:"requirements"`
	Features         interface{}              `json:"features"`
	Description      interface{}              `json:"description"`
}

// CourseFilters is the canonical filter bag for the course listing query
type CourseFilters struct {
	Limit         int
	Offset        int
	Search        string
	CourseIDs     []uint
	PriceRange    []int
	CourseType    string
	CategoryID    uint
	SubcategoryID uint
	Level         string
	Rating        float64
	HasRating     bool
	Status        []string
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 255 {
			errors["title"] = "Title must not exceed 255 characters!"
		}

		// Validate Level
		if reqData.Level == "" {
			errors["level"] = "Level is required!"
		} else if !inList(models.CourseLevels(), reqData.Level) {
			errors["level"] = "Level must be one of: " + strings.Join(models.CourseLevels(), ", ")
		}

		// Validate Category
		if reqData.CategoryID == 0 {
			errors["category_id"] = "Category is required!"
		}

		// Validate Price
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		} else if *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.OriginalPrice != nil && *reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price must not be negative!"
		}

		// Validate Course Type (derived from price later, but reject junk input)
		if reqData.CourseType != "" && reqData.CourseType != models.CourseTypeFree && reqData.CourseType != models.CourseTypePaid {
			errors["course_type"] = "Course type must be free or paid!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Title) > 255 {
			errors["title"] = "Title must not exceed 255 characters!"
		}
		if reqData.Level != "" && !inList(models.CourseLevels(), reqData.Level) {
			errors["level"] = "Level must be one of: " + strings.Join(models.CourseLevels(), ", ")
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.OriginalPrice != nil && *reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := &CourseFilters{
			Limit:  c.QueryInt("limit", 12),
			Offset: c.QueryInt("offset", 0),
			Search: strings.TrimSpace(c.Query("search")),
		}

		errors := make(map[string]string)

		if filters.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if filters.Offset < 0 {
			errors["offset"] = "Offset must not be negative!"
		}

		// Exact-match id set
		for _, token := range splitQueryList(c.Query("course_ids")) {
			id, err := strconv.Atoi(token)
			if err != nil || id < 1 {
				errors["course_ids"] = "Course ids must be positive integers!"
				break
			}
			filters.CourseIDs = append(filters.CourseIDs, uint(id))
		}

		// Inclusive [min,max] bounds
		if raw := c.Query("price_range"); raw != "" {
			parts := splitQueryList(raw)
			if len(parts) != 2 {
				errors["price_range"] = "Price range must be two values: min,max!"
			} else {
				for _, part := range parts {
					bound, err := strconv.Atoi(part)
					if err != nil {
						errors["price_range"] = "Price range bounds must be integers!"
						break
					}
					filters.PriceRange = append(filters.PriceRange, bound)
				}
			}
		}

		if courseType := c.Query("course_type"); courseType != "" {
			if courseType != models.CourseTypeFree && courseType != models.CourseTypePaid {
				errors["course_type"] = "Course type must be free or paid!"
			}
			filters.CourseType = courseType
		}

		filters.CategoryID = uint(c.QueryInt("category_id", 0))
		filters.SubcategoryID = uint(c.QueryInt("subcategory_id", 0))
		filters.Level = strings.TrimSpace(c.Query("level"))

		if raw := c.Query("rating"); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errors["rating"] = "Rating must be numeric!"
			}
			filters.Rating = rating
			filters.HasRating = true
		}

		for _, status := range splitQueryList(c.Query("status")) {
			if !inList(models.CourseStatuses(), status) {
				errors["status"] = "Status must be one of: " + strings.Join(models.CourseStatuses(), ", ")
				break
			}
			filters.Status = append(filters.Status, status)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseFilters", filters)
		return c.Next()
	}
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// id may be a numeric id or a title slug
		identifier := strings.TrimSpace(c.Params("id"))
		if identifier == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseIdentifier", identifier)
		return c.Next()
	}
}

func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func UpdateCourseStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseCourseID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !inList(models.CourseStatuses(), reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of: " + strings.Join(models.CourseStatuses(), ", "),
			})
		}

		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// parseCourseID validates the :id route param and stores it as courseID
func parseCourseID(c *fiber.Ctx) error {
	courseIDStr := strings.TrimSpace(c.Params("id"))
	if courseIDStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil || courseID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	c.Locals("courseID", courseID)
	return nil
}

func splitQueryList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func inList(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
