package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"
	courseValidator "elearn/validators/course"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseRow is a course joined with its category name and slug
type courseRow struct {
	models.Course
	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`
}

// instructorRow is the public shape of a course instructor assignment
type instructorRow struct {
	ID           uint   `json:"id"`
	InstructorID uint   `json:"instructor_id"`
	Firstname    string `json:"firstname"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	ProfileImage string `json:"profile_image"`
}

// GetAllCourses lists courses through the composable filter bag
func GetAllCourses(c *fiber.Ctx) error {
	filters, ok := c.Locals("courseFilters").(*courseValidator.CourseFilters)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	query := db.Model(&models.Course{}).
		Select("courses.*, c.name as category_name, c.name_slug as category_slug").
		Joins("LEFT JOIN categories c ON c.id = courses.category_id")

	// substring match against the title
	if filters.Search != "" {
		query = query.Where("courses.title LIKE ?", "%"+filters.Search+"%")
	}

	if len(filters.CourseIDs) > 0 {
		query = query.Where("courses.id IN ?", filters.CourseIDs)
	}

	// both bounds are OR-combined, matching the behavior existing callers
	// depend on: a wide range still returns every priced course
	if len(filters.PriceRange) == 2 {
		query = query.Where("(courses.price >= ? OR courses.price <= ?)", filters.PriceRange[0], filters.PriceRange[1])
	}

	if filters.CourseType != "" {
		query = query.Where("courses.course_type = ?", filters.CourseType)
	}
	if filters.CategoryID != 0 {
		query = query.Where("courses.category_id = ?", filters.CategoryID)
	}
	if filters.SubcategoryID != 0 {
		query = query.Where("courses.subcategory_id = ?", filters.SubcategoryID)
	}
	if filters.Level != "" {
		query = query.Where("courses.level = ?", filters.Level)
	}
	if filters.HasRating {
		query = query.Where("courses.rating = ?", filters.Rating)
	}
	if len(filters.Status) == 1 {
		query = query.Where("courses.status = ?", filters.Status[0])
	} else if len(filters.Status) > 1 {
		query = query.Where("courses.status IN ?", filters.Status)
	}

	var total int64
	query.Count(&total)

	// newest first
	var courses []courseRow
	if err := query.Order("courses.id DESC").Limit(filters.Limit).Offset(filters.Offset).Scan(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total":  total,
			"limit":  filters.Limit,
			"offset": filters.Offset,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns the assembled course view, looked up by numeric
// id or title slug
func GetCourseDetails(c *fiber.Ctx) error {
	identifier, ok := c.Locals("courseIdentifier").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	column := "courses.title_slug"
	if utils.IsDigits(identifier) {
		column = "courses.id"
	}

	var course models.Course
	if err := db.Where(column+" = ? AND status != ?", identifier, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	view, err := assembleCourseView(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", view)
}

// CreateCourse runs the full authoring flow: category and price gates, slug
// derivation, tag snapshotting, curriculum validation, then a single
// transaction persisting the course, its sections and its instructor roster.
func CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// confirm the category pair exists and is active
	if message := validateCategoryPair(db, reqData.CategoryID, reqData.SubcategoryID); message != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
	}

	price := 0
	if reqData.Price != nil {
		price = *reqData.Price
	}
	originalPrice := 0
	if reqData.OriginalPrice != nil {
		originalPrice = *reqData.OriginalPrice
	}

	if originalPrice != 0 && price > originalPrice {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price cannot be greater than the original price", nil)
	}

	slug, err := utils.GenerateUniqueSlug(db, reqData.Title, 0)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// the tier is derived, never taken from the caller
	courseType := models.CourseTypePaid
	if price == 0 {
		courseType = models.CourseTypeFree
	}

	var tagsJSON []byte
	if reqData.Tags != nil {
		snapshots, err := utils.ResolveTagSnapshots(db, reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}
		tagsJSON, _ = json.Marshal(snapshots)
	}

	// validate the curriculum before anything is written
	if len(reqData.Sections) > 0 {
		if _, err := utils.ValidateCurriculum(reqData.Sections, nil, nil, nil); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
	}

	course := models.Course{
		Title:            reqData.Title,
		Subtitle:         reqData.Subtitle,
		TitleSlug:        slug,
		CategoryID:       reqData.CategoryID,
		SubcategoryID:    reqData.SubcategoryID,
		CourseType:       courseType,
		Level:            reqData.Level,
		OriginalPrice:    originalPrice,
		Price:            price,
		CourseDuration:   reqData.CourseDuration,
		Tags:             tagsJSON,
		WhatYouWillLearn: utils.MarshalJSONField(reqData.WhatYouWillLearn),
		Requirements:     utils.MarshalJSONField(reqData.Requirements),
		Features:         utils.MarshalJSONField(reqData.Features),
		Description:      utils.MarshalJSONField(reqData.Description),
		CreatedBy:        user.ID,
		Status:           models.CourseStatusUnpublished, // publishing is a separate transition
	}

	// the creator is the primary instructor unless an admin named another
	instructorID := user.ID
	if user.Role == models.RoleAdmin && reqData.InstructorID != 0 {
		instructorID = reqData.InstructorID
	}

	tx := db.Begin()

	// a slug race lost against the unique index is retried once with a
	// fresh suffix; the savepoint keeps the transaction usable after the
	// failed insert (Postgres aborts it otherwise)
	tx.SavePoint("course_insert")
	if err := tx.Create(&course).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			tx.RollbackTo("course_insert")
			course.ID = 0
			course.TitleSlug = slug + "-" + utils.RandomString(5)
			err = tx.Create(&course).Error
		}
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}
	}

	totalDuration := 0
	totalLessons := 0

	for _, sectionData := range reqData.Sections {
		section, err := buildSection(course.ID, sectionData)
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}

		if err := tx.Create(&section).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}

		totalDuration += section.TotalDuration
		totalLessons += section.TotalLessons
	}

	if totalLessons > 0 {
		if err := tx.Model(&models.Course{}).Where("id = ?", course.ID).
			Updates(map[string]interface{}{"total_duration": totalDuration, "total_lessons": totalLessons}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}
	}

	// primary instructor assignment
	if err := tx.Create(&models.CourseInstructor{CourseID: course.ID, InstructorID: instructorID}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// additional instructors: numeric tokens only, the primary id is skipped
	for _, token := range utils.StringToArray(reqData.Instructors) {
		if token == "" || !utils.IsDigits(token) {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil || uint(id) == instructorID {
			continue
		}
		if err := tx.Create(&models.CourseInstructor{CourseID: course.ID, InstructorID: uint(id)}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
		}
	}

	if err := tx.Model(&models.User{}).Where("id = ?", course.CreatedBy).
		UpdateColumn("courses_count", gorm.Expr("courses_count + 1")).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	go utils.NotifyEvent("course.created", course)

	// the response re-reads persisted state rather than trusting the
	// in-memory payload
	view, err := assembleCourseView(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", view)
}

// UpdateCourse applies a partial update, re-running the gates that the
// changed fields depend on
func UpdateCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// re-validate the category pair when either side changes
	if reqData.CategoryID != 0 || reqData.SubcategoryID != 0 {
		categoryID := course.CategoryID
		if reqData.CategoryID != 0 {
			categoryID = reqData.CategoryID
		}
		subcategoryID := course.SubcategoryID
		if reqData.SubcategoryID != 0 {
			subcategoryID = reqData.SubcategoryID
		}
		if message := validateCategoryPair(db, categoryID, subcategoryID); message != "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
		}
		course.CategoryID = categoryID
		course.SubcategoryID = subcategoryID
	}

	price := course.Price
	if reqData.Price != nil {
		price = *reqData.Price
	}
	originalPrice := course.OriginalPrice
	if reqData.OriginalPrice != nil {
		originalPrice = *reqData.OriginalPrice
	}
	if originalPrice != 0 && price > originalPrice {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Price cannot be greater than the original price", nil)
	}

	course.Price = price
	course.OriginalPrice = originalPrice
	course.CourseType = models.CourseTypePaid
	if price == 0 {
		course.CourseType = models.CourseTypeFree
	}

	if reqData.Title != "" && reqData.Title != course.Title {
		slug, err := utils.GenerateUniqueSlug(db, reqData.Title, course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		course.Title = reqData.Title
		course.TitleSlug = slug
	}

	if reqData.Subtitle != "" {
		course.Subtitle = reqData.Subtitle
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.CourseDuration != 0 {
		course.CourseDuration = reqData.CourseDuration
	}

	if reqData.Tags != nil {
		snapshots, err := utils.ResolveTagSnapshots(db, reqData.Tags)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
		}
		tagsJSON, _ := json.Marshal(snapshots)
		course.Tags = tagsJSON
	}

	if reqData.WhatYouWillLearn != nil {
		course.WhatYouWillLearn = utils.MarshalJSONField(reqData.WhatYouWillLearn)
	}
	if reqData.Requirements != nil {
		course.Requirements = utils.MarshalJSONField(reqData.Requirements)
	}
	if reqData.Features != nil {
		course.Features = utils.MarshalJSONField(reqData.Features)
	}
	if reqData.Description != nil {
		course.Description = utils.MarshalJSONField(reqData.Description)
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	view, err := assembleCourseView(db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", view)
}

// UpdateCourseStatus moves a course through its externally triggered
// lifecycle transitions
func UpdateCourseStatus(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	status, ok := c.Locals("validatedStatus").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Model(&course).Update("status", status).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status updated successfully!", course)
}

// DeleteCourse soft-deletes a course and releases it from the creator's
// course count
func DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := db.Begin()

	if err := tx.Model(&course).Update("status", models.CourseStatusDeleted).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Model(&models.User{}).Where("id = ?", course.CreatedBy).
		UpdateColumn("courses_count", gorm.Expr("courses_count - 1")).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// validateCategoryPair confirms the (category, optional subcategory) pair
// resolves to active categories. The cardinality of the result set is the
// only parent/child check performed.
func validateCategoryPair(db *gorm.DB, categoryID, subcategoryID uint) string {
	ids := []uint{categoryID}
	if subcategoryID != 0 {
		ids = append(ids, subcategoryID)
	}

	var categories []models.Category
	if err := db.Where("id IN ? AND status = ?", ids, models.CategoryStatusActive).Find(&categories).Error; err != nil {
		return "Failed to validate category!"
	}

	if len(categories) == 0 {
		return "Category not found"
	}
	if subcategoryID != 0 && len(categories) < 2 {
		return "Subcategory not found"
	}

	return ""
}

// buildSection converts a validated section payload into a row. The lesson
// count is recomputed from the lessons themselves, never trusted from input.
func buildSection(courseID uint, sectionData map[string]interface{}) (models.Section, error) {
	title, _ := sectionData["title"].(string)
	lessons, _ := sectionData["lessons"].([]interface{})

	lessonsJSON, err := json.Marshal(lessons)
	if err != nil {
		return models.Section{}, err
	}

	totalDuration := 0.0
	for _, raw := range lessons {
		if lesson, ok := raw.(map[string]interface{}); ok {
			if duration, ok := utils.NumericValue(lesson["duration"]); ok {
				totalDuration += duration
			}
		}
	}

	return models.Section{
		CourseID:      courseID,
		Title:         title,
		Lessons:       lessonsJSON,
		TotalDuration: int(totalDuration),
		TotalLessons:  len(lessons),
	}, nil
}

// assembleCourseView re-reads the full course state: the course row, its
// creator, instructor roster, reviews and sections
func assembleCourseView(db *gorm.DB, courseID uint) (fiber.Map, error) {
	var course courseRow
	err := db.Model(&models.Course{}).
		Select("courses.*, c.name as category_name, c.name_slug as category_slug").
		Joins("LEFT JOIN categories c ON c.id = courses.category_id").
		Where("courses.id = ?", courseID).
		Scan(&course).Error
	if err != nil {
		return nil, err
	}

	var creator models.User
	createdBy := fiber.Map{}
	if err := db.Where("id = ?", course.CreatedBy).First(&creator).Error; err == nil {
		createdBy = fiber.Map{
			"id":        creator.ID,
			"firstname": creator.Firstname,
			"lastname":  creator.Lastname,
			"email":     creator.Email,
		}
	}

	instructors := []instructorRow{}
	err = db.Model(&models.CourseInstructor{}).
		Select("course_instructors.id, course_instructors.instructor_id, u.firstname, u.lastname, u.email, u.profile_image").
		Joins("LEFT JOIN users u ON u.id = course_instructors.instructor_id").
		Where("course_instructors.course_id = ?", courseID).
		Limit(100).
		Scan(&instructors).Error
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at DESC").Limit(100).Find(&reviews).Error; err != nil {
		return nil, err
	}

	var sections []models.Section
	if err := db.Where("course_id = ?", courseID).Order("id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}

	return fiber.Map{
		"course":      course,
		"created_by":  createdBy,
		"instructors": instructors,
		"reviews":     reviews,
		"sections":    sections,
	}, nil
}
