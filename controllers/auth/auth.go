package authController

import (
	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	authValidator "elearn/validators/auth"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new user
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Firstname: reqData.Firstname,
		Lastname:  reqData.Lastname,
		Username:  reqData.Username,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login verifies credentials and issues a JWT
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Firstname, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	now := time.Now()
	db.Model(&user).Update("last_login", &now)

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GetProfile returns the authenticated user
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
