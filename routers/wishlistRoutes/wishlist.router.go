package wishlistRoutes

import (
	controllers "elearn/controllers/wishlist"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(app *fiber.App) {
	wishlistGroup := app.Group("/wishlist", middleware.JWTMiddleware)

	wishlistGroup.Get("/list", controllers.GetWishlist)
	wishlistGroup.Post("/:id", controllers.AddToWishlist)
	wishlistGroup.Delete("/:id", controllers.RemoveFromWishlist)
}
