package handlers

import (
	"time"

	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdmissionHandler struct {
	Desk *services.AdmissionDesk
}

func NewAdmissionHandler(desk *services.AdmissionDesk) *AdmissionHandler {
	return &AdmissionHandler{Desk: desk}
}

type SubmitApplicationRequest struct {
	ApplicantName  string `json:"applicant_name" validate:"required,min=3"`
	ApplicantEmail string `json:"applicant_email" validate:"required,email"`
	ApplicantPhone string `json:"applicant_phone" validate:"required,min=7"`
	CourseID       string `json:"course_id" validate:"required,uuid4"`
}

func (h *AdmissionHandler) SubmitApplication(c *fiber.Ctx) error {
	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course ID format"})
	}

	adm, err := h.Desk.SubmitApplication(services.NewApplication{
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		ApplicantPhone: req.ApplicantPhone,
		CourseID:       courseID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(adm)
}

type UpdateAdmissionRequest struct {
	Status        string `json:"status" validate:"required,oneof=under_review interview_scheduled approved rejected confirmed"`
	Remarks       string `json:"remarks"`
	InterviewDate string `json:"interview_date"`
}

func (h *AdmissionHandler) UpdateStatus(c *fiber.Ctx) error {
	admissionID, err := uuid.Parse(c.Params("admissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid admission ID format"})
	}

	var req UpdateAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	upd := services.StatusUpdate{
		Status:      models.AdmissionStatus(req.Status),
		ProcessedBy: processedBy(c),
		Remarks:     req.Remarks,
	}
	if req.InterviewDate != "" {
		d, err := time.Parse("2006-01-02", req.InterviewDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid interview date, expected YYYY-MM-DD"})
		}
		upd.InterviewDate = &d
	}

	adm, err := h.Desk.UpdateStatus(admissionID, upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(adm)
}

func (h *AdmissionHandler) GetApplication(c *fiber.Ctx) error {
	admissionID, err := uuid.Parse(c.Params("admissionId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid admission ID format"})
	}

	adm, err := h.Desk.GetApplication(admissionID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(adm)
}

func (h *AdmissionHandler) ListApplications(c *fiber.Ctx) error {
	return c.JSON(h.Desk.ListApplications())
}
