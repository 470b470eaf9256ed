package handlers

import (
	"github.com/campuskit/college_admin/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Reporting *services.Reporting
}

func NewDashboardHandler(rep *services.Reporting) *DashboardHandler {
	return &DashboardHandler{Reporting: rep}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.Reporting.DashboardStats())
}
