package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type checkinHandler struct {
	uc domain.CheckinUseCase
}

func NewCheckinHandler(app *fiber.App, uc domain.CheckinUseCase, auth *middleware.AuthMiddleware) {
	handler := &checkinHandler{
		uc: uc,
	}

	route := app.Group("/api/checkins")
	// Creation is deliberately open: kiosks check members in without a token.
	route.Post("/", handler.Create)
	route.Get("/", handler.GetAll)
	route.Get("/:registrationNumber", handler.GetByRegistrationNumber)
	route.Put("/:id", auth.RequireAuth(), handler.Update)
	route.Delete("/:id", auth.RequireAuth(), handler.Delete)
}

func parseCheckinListQuery(c *fiber.Ctx) *domain.CheckinListQuery {
	return &domain.CheckinListQuery{
		ListQuery:  parseListQuery(c),
		MemberID:   c.QueryInt("memberId", 0),
		ActivityID: c.QueryInt("activityId", 0),
		Date:       c.Query("date"),
	}
}

func (h *checkinHandler) Create(c *fiber.Ctx) error {
	var payload domain.CreateCheckinPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "CreateCheckin", "Invalid request body")
	}

	checkin, err := h.uc.Create(c.Context(), &payload)
	if err != nil {
		return respondError(c, "CreateCheckin", err)
	}

	config.PrintLogInfo(nil, fiber.StatusCreated, "CreateCheckin")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Checkin created successfully",
		"data":    checkin,
	})
}

func (h *checkinHandler) GetAll(c *fiber.Ctx) error {
	checkins, pagination, err := h.uc.List(c.Context(), parseCheckinListQuery(c))
	if err != nil {
		return respondError(c, "GetAllCheckins", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetAllCheckins")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "All checkins",
		"data":       checkins,
		"pagination": pagination,
	})
}

func (h *checkinHandler) GetByRegistrationNumber(c *fiber.Ctx) error {
	registrationNumber := c.Params("registrationNumber")

	checkins, pagination, err := h.uc.ListByRegistrationNumber(c.Context(), registrationNumber, parseCheckinListQuery(c))
	if err != nil {
		return respondError(c, "GetCheckinsByRegistrationNumber", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetCheckinsByRegistrationNumber")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Checkins found",
		"data":       checkins,
		"pagination": pagination,
	})
}

func (h *checkinHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "UpdateCheckin", "Invalid check-in id")
	}

	var payload domain.UpdateCheckinPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "UpdateCheckin", "Invalid request body")
	}

	checkin, err := h.uc.Update(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, "UpdateCheckin", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "UpdateCheckin")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Checkin updated successfully",
		"data":    checkin,
	})
}

func (h *checkinHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "DeleteCheckin", "Invalid check-in id")
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteCheckin", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "DeleteCheckin")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Checkin deleted successfully",
		"data":    nil,
	})
}
