package handlers

import (
	"errors"
	"log/slog"

	"github.com/JojerDojer/web-420/internal/models"
	"github.com/JojerDojer/web-420/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleSignup)
	router.Post("/login", h.HandleLogin)
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	UserName     string                `json:"userName" validate:"required"`
	Password     string                `json:"password" validate:"required"`
	EmailAddress []models.EmailAddress `json:"emailAddress" validate:"required"`
}

// HandleSignup registers a new user.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	err := h.authService.Signup(c.UserContext(), services.SignupInput{
		UserName:     req.UserName,
		Password:     req.Password,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Username is already in use",
			})
		}
		return respondFault(c, "signup", err)
	}
	return c.JSON(fiber.Map{"message": "Registered user"})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks a user's password.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return respondBodyError(c, err)
	}

	if err := h.authService.Login(c.UserContext(), req.UserName, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.DebugContext(c.UserContext(), "login rejected", "userName", req.UserName)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username and/or password",
			})
		}
		return respondFault(c, "login", err)
	}
	return c.JSON(fiber.Map{"message": "User logged in"})
}
