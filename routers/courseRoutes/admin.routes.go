package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireAdmin)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Put("/:id/status", validators.UpdateCourseStatus(), controllers.UpdateCourseStatus)
	adminGroup.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	adminGroup.Delete("/:id", validators.DeleteCourse(), controllers.DeleteCourse)
	adminGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
}
