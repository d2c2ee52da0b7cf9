package delivery

import (
	"errors"
	"membership/config"
	"membership/domain"

	"github.com/gofiber/fiber/v2"
)

func parseListQuery(c *fiber.Ctx) domain.ListQuery {
	return domain.ListQuery{
		Offset: c.QueryInt("offset", 0),
		Limit:  c.QueryInt("limit", domain.DefaultLimit),
		SortBy: c.Query("sortBy", "id"),
		Order:  c.Query("order"),
	}
}

func actorUsername(c *fiber.Ctx) *string {
	if claims, ok := c.Locals("user").(*domain.Claims); ok {
		return &claims.Username
	}
	return nil
}

func statusForError(err error) int {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrActivityNotFound),
		errors.Is(err, domain.ErrCheckinNotFound),
		errors.Is(err, domain.ErrVolunteerNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidPassword):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrMemberHasCheckins), errors.Is(err, domain.ErrActivityHasCheckins):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service failure onto the uniform envelope. Validation
// failures carry their field breakdown; internal causes are logged and never
// leaked to the caller.
func respondError(c *fiber.Ctx, functionName string, err error) error {
	status := statusForError(err)
	config.PrintLogInfo(actorUsername(c), status, functionName)

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"data":    fiber.Map{"errors": vErr.Errors},
		})
	}

	message := err.Error()
	if status == fiber.StatusInternalServerError {
		config.LogInternal(functionName, err)
		message = "Internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

func respondBadRequest(c *fiber.Ctx, functionName, message string) error {
	config.PrintLogInfo(actorUsername(c), fiber.StatusBadRequest, functionName)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}
