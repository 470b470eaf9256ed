package models

import (
	"time"

	"github.com/google/uuid"
)

type AllocationStatus string

const (
	AllocationAllocated AllocationStatus = "allocated"
	AllocationVacated   AllocationStatus = "vacated"
	AllocationSuspended AllocationStatus = "suspended"
)

// CanTransitionTo encodes the allocation state machine:
// allocated -> vacated is terminal; allocated <-> suspended; a suspended
// allocation may also be vacated directly.
func (s AllocationStatus) CanTransitionTo(next AllocationStatus) bool {
	switch s {
	case AllocationAllocated:
		return next == AllocationVacated || next == AllocationSuspended
	case AllocationSuspended:
		return next == AllocationAllocated || next == AllocationVacated
	}
	return false
}

// HostelAllocation binds one student to one room. Rent is snapshotted at
// allocation time so later room-rent changes do not rewrite history.
type HostelAllocation struct {
	ID              uuid.UUID        `json:"id"`
	StudentID       uuid.UUID        `json:"student_id"`
	RoomID          uuid.UUID        `json:"room_id"`
	AllocationDate  time.Time        `json:"allocation_date"`
	VacateDate      *time.Time       `json:"vacate_date,omitempty"`
	Status          AllocationStatus `json:"status"`
	Rent            float64          `json:"rent"`
	SecurityDeposit float64          `json:"security_deposit"`
	Remarks         string           `json:"remarks,omitempty"`
}
