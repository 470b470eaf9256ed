package routes

import (
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func HostelRoutes(app *fiber.App, h *handlers.HostelHandler) {
	api := app.Group("/api/v1")

	hostel := api.Group("/hostel", middleware.Protected(), middleware.StaffRequired())
	hostel.Get("/rooms/available", h.AvailableRooms)
	hostel.Post("/allocations", h.AllocateRoom)
	hostel.Get("/allocations/:allocationId", h.GetAllocation)
	hostel.Post("/allocations/:allocationId/vacate", h.VacateRoom)
	hostel.Post("/allocations/:allocationId/suspend", h.SuspendAllocation)
	hostel.Post("/allocations/:allocationId/reinstate", h.ReinstateAllocation)
}
