package handlers

import (
	"time"

	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FeeHandler struct {
	Ledger *services.FeeLedger
}

func NewFeeHandler(ledger *services.FeeLedger) *FeeHandler {
	return &FeeHandler{Ledger: ledger}
}

type ScheduleFeeRequest struct {
	StudentID    string  `json:"student_id" validate:"required,uuid4"`
	Type         string  `json:"type" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DueDate      string  `json:"due_date" validate:"required"`
	Semester     int     `json:"semester" validate:"required,min=1,max=12"`
	AcademicYear string  `json:"academic_year" validate:"required"`
}

func (h *FeeHandler) ScheduleFee(c *fiber.Ctx) error {
	var req ScheduleFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID format"})
	}
	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid due date, expected YYYY-MM-DD"})
	}

	fee, err := h.Ledger.ScheduleFee(studentID, models.FeeType(req.Type), req.Amount, dueDate, req.Semester, req.AcademicYear)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

type PayFeeRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

func (h *FeeHandler) PayFee(c *fiber.Ctx) error {
	feeID, err := uuid.Parse(c.Params("feeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fee ID format"})
	}

	var req PayFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fee, err := h.Ledger.ApplyPayment(feeID, models.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"status":         fee.Status,
		"receipt_number": fee.Payment.ReceiptNumber,
		"amount":         fee.Amount + fee.LateFee,
	})
}

type PartialPaymentRequest struct {
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

func (h *FeeHandler) RecordPartialPayment(c *fiber.Ctx) error {
	feeID, err := uuid.Parse(c.Params("feeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fee ID format"})
	}

	var req PartialPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fee, err := h.Ledger.RecordPartialPayment(feeID, models.PaymentMethod(req.PaymentMethod), req.Amount)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fee)
}

func (h *FeeHandler) GetReceipt(c *fiber.Ctx) error {
	feeID, err := uuid.Parse(c.Params("feeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fee ID format"})
	}

	receipt, err := h.Ledger.GenerateReceipt(feeID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(receipt)
}
