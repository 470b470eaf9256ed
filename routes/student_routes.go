package routes

import (
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, h *handlers.StudentHandler) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected(), middleware.StaffRequired())
	students.Get("", h.ListStudents)
	students.Get("/roll/:rollNumber", h.GetByRollNumber)
	students.Get("/:studentId", h.GetStudent)
	students.Post("/:studentId/status", middleware.AdminRequired(), h.ChangeStatus)
	students.Get("/:studentId/fees", h.ListFees)
	students.Get("/:studentId/fees/totals", h.GetFeeTotals)
}
