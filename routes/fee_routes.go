package routes

import (
	"github.com/campuskit/college_admin/handlers"
	"github.com/campuskit/college_admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func FeeRoutes(app *fiber.App, h *handlers.FeeHandler) {
	api := app.Group("/api/v1")

	fees := api.Group("/fees", middleware.Protected(), middleware.StaffRequired())
	fees.Post("", h.ScheduleFee)
	fees.Post("/:feeId/pay", h.PayFee)
	fees.Post("/:feeId/pay-partial", h.RecordPartialPayment)
	fees.Get("/:feeId/receipt", h.GetReceipt)
}
