package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type memberHandler struct {
	uc domain.MemberUseCase
}

func NewMemberHandler(app *fiber.App, uc domain.MemberUseCase, auth *middleware.AuthMiddleware) {
	handler := &memberHandler{
		uc: uc,
	}

	route := app.Group("/api/members")
	route.Get("/", handler.GetAll)
	route.Get("/registration/:registrationNumber", handler.GetByRegistrationNumber)
	route.Post("/", auth.RequireAuth(), handler.Create)
	route.Get("/:id/qrcode", auth.RequireAuth(), handler.QRCode)
	route.Get("/:id", auth.RequireAuth(), handler.GetByID)
	route.Put("/:id", auth.RequireAuth(), handler.Update)
	route.Delete("/:id", auth.RequireAuth(), handler.Delete)
}

func (h *memberHandler) Create(c *fiber.Ctx) error {
	var payload domain.CreateMemberPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "CreateMember", "Invalid request body")
	}

	member, err := h.uc.Create(c.Context(), &payload)
	if err != nil {
		return respondError(c, "CreateMember", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusCreated, "CreateMember")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Member created successfully",
		"data":    member,
	})
}

func (h *memberHandler) GetAll(c *fiber.Ctx) error {
	query := &domain.MemberListQuery{
		ListQuery: parseListQuery(c),
		Search:    c.Query("search"),
	}

	members, pagination, err := h.uc.List(c.Context(), query)
	if err != nil {
		return respondError(c, "GetAllMembers", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetAllMembers")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    "Members retrieved successfully",
		"data":       members,
		"pagination": pagination,
	})
}

func (h *memberHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "GetMemberByID", "Invalid member id")
	}

	member, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, "GetMemberByID", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetMemberByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member retrieved successfully",
		"data":    member,
	})
}

func (h *memberHandler) GetByRegistrationNumber(c *fiber.Ctx) error {
	member, err := h.uc.GetByRegistrationNumber(c.Context(), c.Params("registrationNumber"))
	if err != nil {
		return respondError(c, "GetMemberByRegistrationNumber", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetMemberByRegistrationNumber")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member retrieved successfully",
		"data":    member,
	})
}

func (h *memberHandler) QRCode(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "MemberQRCode", "Invalid member id")
	}

	png, err := h.uc.QRCode(c.Context(), id)
	if err != nil {
		return respondError(c, "MemberQRCode", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "MemberQRCode")
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}

func (h *memberHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "UpdateMember", "Invalid member id")
	}

	var payload domain.UpdateMemberPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondBadRequest(c, "UpdateMember", "Invalid request body")
	}

	member, err := h.uc.Update(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, "UpdateMember", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "UpdateMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
		"data":    member,
	})
}

func (h *memberHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondBadRequest(c, "DeleteMember", "Invalid member id")
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, "DeleteMember", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "DeleteMember")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member deleted successfully",
		"data":    nil,
	})
}
