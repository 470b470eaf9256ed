package routes

import (
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdmissionRoutes(app *fiber.App, h *handlers.AdmissionHandler) {
	api := app.Group("/api/v1")

	// Applications come in from the public site; review is staff-only.
	api.Post("/admissions", h.SubmitApplication)

	admissions := api.Group("/admissions", middleware.Protected(), middleware.StaffRequired())
	admissions.Get("", h.ListApplications)
	admissions.Get("/:admissionId", h.GetApplication)
	admissions.Post("/:admissionId/status", h.UpdateStatus)
}
