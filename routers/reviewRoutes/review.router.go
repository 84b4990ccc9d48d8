package reviewRoutes

import (
	controllers "elearn/controllers/review"
	"elearn/middleware"
	validators "elearn/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up course review routes
func SetupReviewRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/:id/reviews", validators.ReviewList(), controllers.GetCourseReviews)
	courseGroup.Post("/:id/reviews", middleware.JWTMiddleware, validators.SubmitReview(), controllers.SubmitReview)
}
