package middleware

import (
	"elearn/database"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireAdmin ensures the authenticated user carries the ADMIN role
func RequireAdmin(c *fiber.Ctx) error {
	// Get user ID from context (set by the JWT middleware)
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}
		// Other DB error
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	if user.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access denied! Admin only.",
			"data":    nil,
		})
	}

	return c.Next()
}
