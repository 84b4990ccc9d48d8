package categoryRoutes

import (
	controllers "elearn/controllers/category"
	"elearn/middleware"
	validators "elearn/validators/category"

	"github.com/gofiber/fiber/v2"
)

// SetupCategoryRoutes sets up public and admin category routes
func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")
	categoryGroup.Get("/list", controllers.GetAllCategories)

	adminGroup := app.Group("/admin/category", middleware.JWTMiddleware, middleware.RequireAdmin)
	adminGroup.Post("/create", validators.CreateCategory(), controllers.CreateCategory)
	adminGroup.Put("/:id", validators.UpdateCategory(), controllers.UpdateCategory)
	adminGroup.Delete("/:id", validators.DeleteCategory(), controllers.DeleteCategory)
}
