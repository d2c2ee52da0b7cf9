package delivery

import (
	"membership/config"
	"membership/domain"
	"membership/middleware"

	"github.com/gofiber/fiber/v2"
)

type dashboardHandler struct {
	uc domain.DashboardUseCase
}

func NewDashboardHandler(app *fiber.App, uc domain.DashboardUseCase, auth *middleware.AuthMiddleware) {
	handler := &dashboardHandler{
		uc: uc,
	}

	app.Get("/api/dashboard", auth.RequireAuth(), handler.GetStats)
}

func (h *dashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, "GetDashboardStats", err)
	}

	config.PrintLogInfo(actorUsername(c), fiber.StatusOK, "GetDashboardStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "All Statistics",
		"data":    stats,
	})
}
