package tagRoutes

import (
	controllers "elearn/controllers/tag"
	"elearn/middleware"
	validators "elearn/validators/tag"

	"github.com/gofiber/fiber/v2"
)

// SetupTagRoutes sets up public and admin tag routes
func SetupTagRoutes(app *fiber.App) {
	tagGroup := app.Group("/tag")
	tagGroup.Get("/list", controllers.GetAllTags)

	adminGroup := app.Group("/admin/tag", middleware.JWTMiddleware, middleware.RequireAdmin)
	adminGroup.Post("/create", validators.CreateTag(), controllers.CreateTag)
}
