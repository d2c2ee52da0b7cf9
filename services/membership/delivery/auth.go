package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"

	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc   domain.AuthUseCase
	auth *middleware.AuthMiddleware
}

func NewAuthHandler(app *fiber.App, uc domain.AuthUseCase, auth *middleware.AuthMiddleware) {
	handler := &authHandler{
		uc:   uc,
		auth: auth,
	}

	route := app.Group("/api/auth")
	route.Post("/login", handler.Login)
	// Only an already-authenticated actor may create new accounts.
	route.Post("/register", auth.RequireAuth(), handler.Register)
	route.Get("/token", handler.VerifyToken)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var payload domain.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Login", "Invalid request body")
	}

	result, err := h.uc.Login(c.Context(), &payload)
	if err != nil {
		return respondError(c, "Login", err)
	}

	config.PrintLogInfo(&result.User.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User connected successfully",
		"data":    result,
	})
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	var payload domain.RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "Register", "Invalid request body")
	}

	profile, err := h.uc.Register(c.Context(), &payload)
	if err != nil {
		return respondError(c, "Register", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusCreated, "Register")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    profile,
	})
}

// VerifyToken checks the credential and confirms its user still exists. The
// token comes from the Authorization header, or the `auth` query parameter
// kept for older clients.
func (h *authHandler) VerifyToken(c *fiber.Ctx) error {
	tokenString := middleware.ExtractToken(c.Get("Authorization"))
	if tokenString == "" {
		tokenString = c.Query("auth")
	}
	if tokenString == "" {
		return respondBadRequest(c, "VerifyToken", "Token parameter is required")
	}

	claims, err := h.auth.VerifyJWT(tokenString)
	if err != nil {
		config.PrintLogInfo(nil, fiber.StatusUnauthorized, "VerifyToken")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid or expired token",
			"data":    nil,
		})
	}

	profile, err := h.uc.VerifyUser(c.Context(), claims.UserID)
	if err != nil {
		config.PrintLogInfo(&claims.Username, fiber.StatusUnauthorized, "VerifyToken")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": domain.ErrUserNotFound.Error(),
			"data":    nil,
		})
	}

	config.PrintLogInfo(&profile.Username, fiber.StatusOK, "VerifyToken")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Token valid",
		"data":    profile,
	})
}
