package wishlistController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AddToWishlist saves a course to the caller's wishlist
func AddToWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := parseCourseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND status != ?", courseID, models.CourseStatusDeleted).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Wishlist
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already in your wishlist!", nil)
	}

	wishlist := models.Wishlist{UserID: userID, CourseID: course.ID}
	if err := db.Create(&wishlist).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course to wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to wishlist!", wishlist)
}

// RemoveFromWishlist removes a course from the caller's wishlist
func RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := parseCourseID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	db := database.Database.Db

	var wishlist models.Wishlist
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&wishlist).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course is not in your wishlist!", nil)
	}

	if err := db.Delete(&wishlist).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course from wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from wishlist!", nil)
}

// GetWishlist lists the caller's wishlisted courses
func GetWishlist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var wishlists []models.Wishlist
	if err := db.Where("user_id = ?", userID).Preload("Course").
		Order("created_at DESC").Find(&wishlists).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched successfully!", wishlists)
}

func parseCourseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err == nil && id <= 0 {
		err = strconv.ErrRange
	}
	return id, err
}
