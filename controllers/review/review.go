package reviewController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	reviewValidator "elearn/validators/review"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitReview allows an enrolled user to review a course once. The
// course's denormalized rating and review count move in the same
// transaction.
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.ReviewPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// only active enrollees may review
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND status IN ?",
		userID, course.ID, models.ActiveEnrollmentStatuses()).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled to review this course!", nil)
	}

	var existing models.Review
	if err := db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", course.ID, userID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this course!", nil)
	}

	review := models.Review{
		CourseID: course.ID,
		UserID:   userID,
		Rating:   reqData.Rating,
		Review:   reqData.Review,
	}

	newCount := course.ReviewCount + 1
	newRating := (course.Rating*float64(course.ReviewCount) + float64(reqData.Rating)) / float64(newCount)

	tx := db.Begin()

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
		Updates(map[string]interface{}{"rating": newRating, "review_count": newCount}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

// GetCourseReviews lists reviews for a course
func GetCourseReviews(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Review{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&total)

	var reviews []models.Review
	err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, firstname, lastname, profile_image")
		}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	response := map[string]interface{}{
		"reviews": reviews,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", response)
}
