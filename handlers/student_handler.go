package handlers

import (
	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StudentHandler struct {
	Registry *services.StudentRegistry
	Ledger   *services.FeeLedger
}

func NewStudentHandler(reg *services.StudentRegistry, ledger *services.FeeLedger) *StudentHandler {
	return &StudentHandler{Registry: reg, Ledger: ledger}
}

func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	return c.JSON(h.Registry.ListStudents())
}

func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID format"})
	}

	st, err := h.Registry.GetStudent(studentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

func (h *StudentHandler) GetByRollNumber(c *fiber.Ctx) error {
	req := struct {
		Roll string `validate:"required,rollnum"`
	}{Roll: c.Params("rollNumber")}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid roll number format"})
	}

	st, err := h.Registry.GetByRollNumber(req.Roll)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive graduated suspended"`
}

func (h *StudentHandler) ChangeStatus(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID format"})
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	st, err := h.Registry.ChangeStatus(studentID, models.StudentStatus(req.Status))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

func (h *StudentHandler) GetFeeTotals(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID format"})
	}

	totals, err := h.Ledger.TotalsFor(studentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(totals)
}

func (h *StudentHandler) ListFees(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID format"})
	}

	fees, err := h.Ledger.StudentFees(studentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fees)
}
