package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type volunteerHandler struct {
	uc domain.VolunteerUseCase
}

func NewVolunteerHandler(app *fiber.App, uc domain.VolunteerUseCase, auth *middleware.AuthMiddleware) {
	handler := &volunteerHandler{
		uc: uc,
	}

	route := app.Group("/api/volunteers")
	route.Get("/", handler.GetAll)
	route.Get("/:id", handler.GetByID)
	route.Post("/", auth.RequireAuth(), handler.Create)
	route.Put("/:id", auth.RequireAuth(), handler.Update)
	route.Delete("/:id", auth.RequireAuth(), handler.Delete)
}

func (h *volunteerHandler) Create(c *fiber.Ctx) error {
	claims := c.Locals("user").(*domain.Claims)

	var payload domain.CreateVolunteerPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "CreateVolunteer", "Invalid request body")
	}

	volunteer, err := h.uc.Create(c.Context(), &payload, claims.UserID)
	if err != nil {
		return respondError(c, "CreateVolunteer", err)
	}

	config.PrintLogInfo(&claims.Username, fiber.StatusCreated, "CreateVolunteer")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer created successfully",
		"data":    volunteer,
	})
}

func (h *volunteerHandler) GetAll(c *fiber.Ctx) error {
	query := &domain.VolunteerListQuery{
		ListQuery: parseListQuery(c),
	}

	volunteers, pagination, err := h.uc.List(c.Context(), query)
	if err != nil {
		return respondError(c, "GetAllVolunteers", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetAllVolunteers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "All volunteers",
		"data":       volunteers,
		"pagination": pagination,
	})
}

func (h *volunteerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "GetVolunteerByID", "Invalid volunteer id")
	}

	volunteer, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, "GetVolunteerByID", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetVolunteerByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer found",
		"data":    volunteer,
	})
}

func (h *volunteerHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "UpdateVolunteer", "Invalid volunteer id")
	}

	var payload domain.UpdateVolunteerPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "UpdateVolunteer", "Invalid request body")
	}

	volunteer, err := h.uc.Update(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, "UpdateVolunteer", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "UpdateVolunteer")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer updated successfully",
		"data":    volunteer,
	})
}

func (h *volunteerHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "DeleteVolunteer", "Invalid volunteer id")
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteVolunteer", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "DeleteVolunteer")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Volunteer deleted successfully",
		"data":    nil,
	})
}
