package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	courseValidator "elearn/validators/course"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollInCourse creates at most one active enrollment per (user, course).
// Free courses enroll immediately and bump the course counter; paid courses
// sit in Pending until payment confirmation, which lives outside this core.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// idempotency guard: one active enrollment per (user, course)
	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND status IN ?", userID, course.ID, models.ActiveEnrollmentStatuses()).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course", nil)
	}

	sectionsCount, lessonsCount := countCurriculum(db, course.ID)

	status := models.EnrollmentStatusPending
	if course.CourseType == models.CourseTypeFree {
		status = models.EnrollmentStatusEnrolled
	}

	// price snapshots, the baseline before any coupon application
	enrollment := models.Enrollment{
		Reference:     uuid.NewString(),
		UserID:        userID,
		CourseID:      course.ID,
		Status:        status,
		AmountPayable: course.Price,
		AmountOffered: course.Price,
		SectionsCount: sectionsCount,
		LessonsCount:  lessonsCount,
	}

	tx := db.Begin()

	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		// the partial unique index catches a concurrent double-submission
		if utils.IsDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// only a confirmed enrollment moves the counter
	if status == models.EnrollmentStatusEnrolled {
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1")).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go utils.NotifyEvent("enrollment.created", enrollment)
	go utils.SendEnrollmentEmail(user, course, status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been enrolled in the course", enrollment)
}

// GetEnrollments lists the caller's enrollments
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentList").(*courseValidator.EnrollmentListQuery)
	if !ok {
		reqData = &courseValidator.EnrollmentListQuery{}
	}

	page := reqData.Page
	if page < 1 {
		page = 1
	}
	limit := reqData.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("Course")

	if reqData.CourseID != 0 {
		query = query.Where("course_id = ?", reqData.CourseID)
	}
	if reqData.Status != "" {
		query = query.Where("status = ?", reqData.Status)
	}

	var total int64
	query.Count(&total)

	var enrollments []models.Enrollment
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// countCurriculum tallies sections and embedded lessons for the enrollment
// snapshot
func countCurriculum(db *gorm.DB, courseID uint) (int, int) {
	var sections []models.Section
	if err := db.Where("course_id = ?", courseID).Find(&sections).Error; err != nil {
		return 0, 0
	}

	lessonsCount := 0
	for _, section := range sections {
		var lessons []interface{}
		if err := json.Unmarshal(section.Lessons, &lessons); err == nil {
			lessonsCount += len(lessons)
		}
	}

	return len(sections), lessonsCount
}
