package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details
	userGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// User enrollments
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetEnrollments)
}
