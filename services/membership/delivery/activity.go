package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type activityHandler struct {
	uc domain.ActivityUseCase
}

func NewActivityHandler(app *fiber.App, uc domain.ActivityUseCase, auth *middleware.AuthMiddleware) {
	handler := &activityHandler{
		uc: uc,
	}

	route := app.Group("/api/activities")
	route.Get("/", handler.GetAll)
	route.Get("/:id", handler.GetByID)
	route.Post("/", auth.RequireAuth(), handler.Create)
	route.Put("/:id", auth.RequireAuth(), handler.Update)
	route.Delete("/:id", auth.RequireAuth(), handler.Delete)
}

func (h *activityHandler) Create(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	var payload domain.CreateActivityPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "CreateActivity", "Invalid request body")
	}

	activity, err := h.uc.Create(c.Context(), &payload, claims.UserID)
	if err != nil {
		return respondError(c, "CreateActivity", err)
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusCreated, "CreateActivity")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Activity created successfully",
		"data":    activity,
	})
}

func (h *activityHandler) GetAll(c *fiber.Ctx) error {
	query := &domain.ActivityListQuery{
		ListQuery: parseListQuery(c),
	}

	activities, pagination, err := h.uc.List(c.Context(), query)
	if err != nil {
		return respondError(c, "GetAllActivities", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetAllActivities")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "All activities",
		"data":       activities,
		"pagination": pagination,
	})
}

func (h *activityHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "GetActivityByID", "Invalid activity id")
	}

	activity, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, "GetActivityByID", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetActivityByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity found",
		"data":    activity,
	})
}

func (h *activityHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "UpdateActivity", "Invalid activity id")
	}

	var payload domain.UpdateActivityPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "UpdateActivity", "Invalid request body")
	}

	activity, err := h.uc.Update(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, "UpdateActivity", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "UpdateActivity")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity updated successfully",
		"data":    activity,
	})
}

func (h *activityHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "DeleteActivity", "Invalid activity id")
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteActivity", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "DeleteActivity")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Activity deleted successfully",
		"data":    nil,
	})
}
