package routes

import (
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App, h *handlers.DashboardHandler) {
	api := app.Group("/api/v1")

	api.Get("/dashboard/stats", middleware.Protected(), h.GetStats)
}
