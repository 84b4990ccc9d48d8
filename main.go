package main

import (
	"elearn/config"
	"elearn/database"
	authRoutes "elearn/routers/authRoutes"
	categoryRoutes "elearn/routers/categoryRoutes"
	courseRoutes "elearn/routers/courseRoutes"
	reviewRoutes "elearn/routers/reviewRoutes"
	tagRoutes "elearn/routers/tagRoutes"
	wishlistRoutes "elearn/routers/wishlistRoutes"
	"elearn/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.StartEnrollmentScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	tagRoutes.SetupTagRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	wishlistRoutes.SetupWishlistRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
