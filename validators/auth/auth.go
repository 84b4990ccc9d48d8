package authValidator

import (
	"elearn/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SignupPayload is the registration request body
type SignupPayload struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginPayload is the login request body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Firstname
		if strings.TrimSpace(reqData.Firstname) == "" {
			errors["firstname"] = "Firstname is required!"
		}

		// Validate Email
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !emailPattern.MatchString(reqData.Email) {
			errors["email"] = "Email is not valid!"
		}

		// Validate Password
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
