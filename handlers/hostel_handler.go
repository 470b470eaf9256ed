package handlers

import (
	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type HostelHandler struct {
	Occupancy *services.OccupancyManager
}

func NewHostelHandler(occ *services.OccupancyManager) *HostelHandler {
	return &HostelHandler{Occupancy: occ}
}

type AllocateRoomRequest struct {
	StudentID       string  `json:"student_id" validate:"required,uuid4"`
	RoomID          string  `json:"room_id" validate:"required,uuid4"`
	SecurityDeposit float64 `json:"security_deposit" validate:"gte=0"`
}

func (h *HostelHandler) AllocateRoom(c *fiber.Ctx) error {
	var req AllocateRoomRequest
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
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid room ID format"})
	}

	alloc, err := h.Occupancy.AllocateRoom(studentID, roomID, req.SecurityDeposit)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"allocation_id": alloc.ID, "allocation": alloc})
}

func (h *HostelHandler) VacateRoom(c *fiber.Ctx) error {
	allocationID, err := uuid.Parse(c.Params("allocationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid allocation ID format"})
	}

	alloc, err := h.Occupancy.VacateRoom(allocationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": alloc.Status, "vacate_date": alloc.VacateDate})
}

func (h *HostelHandler) SuspendAllocation(c *fiber.Ctx) error {
	allocationID, err := uuid.Parse(c.Params("allocationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid allocation ID format"})
	}

	alloc, err := h.Occupancy.SuspendAllocation(allocationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": alloc.Status})
}

func (h *HostelHandler) ReinstateAllocation(c *fiber.Ctx) error {
	allocationID, err := uuid.Parse(c.Params("allocationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid allocation ID format"})
	}

	alloc, err := h.Occupancy.ReinstateAllocation(allocationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"status": alloc.Status})
}

func (h *HostelHandler) GetAllocation(c *fiber.Ctx) error {
	allocationID, err := uuid.Parse(c.Params("allocationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid allocation ID format"})
	}

	alloc, err := h.Occupancy.GetAllocation(allocationID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(alloc)
}

func (h *HostelHandler) AvailableRooms(c *fiber.Ctx) error {
	var hostelID *uuid.UUID
	if raw := c.Query("hostel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid hostel ID format"})
		}
		hostelID = &id
	}

	rooms := []models.Room{}
	for room := range h.Occupancy.AvailableRooms(hostelID) {
		rooms = append(rooms, room)
	}
	return c.JSON(rooms)
}
