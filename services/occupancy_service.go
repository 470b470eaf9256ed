package services

import (
	"iter"
	"time"

	"github.com/campuskit/college_admin/core"
	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/store"
	"github.com/google/uuid"
)

// OccupancyManager owns HostelAllocation records and the derived
// occupancy counters on Room and Hostel. Counters are only ever touched
// here, inside a store update, together with the allocation change they
// reflect: Room.CurrentOccupants always equals the number of allocations
// with status=allocated pointing at the room, and Hostel.OccupiedRooms
// always equals the number of its rooms at full capacity.
type OccupancyManager struct {
	store *store.Store
}

func NewOccupancyManager(st *store.Store) *OccupancyManager {
	return &OccupancyManager{store: st}
}

// AllocateRoom binds a student to a room. The capacity check and the
// occupant increment run inside one store update, so two requests racing
// for the last bed cannot both pass the check: exactly one succeeds, the
// other fails with RoomFull. A student holds at most one allocation with
// status=allocated at a time.
func (m *OccupancyManager) AllocateRoom(studentID, roomID uuid.UUID, securityDeposit float64) (models.HostelAllocation, error) {
	var alloc models.HostelAllocation
	err := m.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Student(studentID); !ok {
			return core.ErrUnknownStudent
		}
		room, ok := tx.Room(roomID)
		if !ok {
			return core.ErrUnknownRoom
		}
		if !room.IsActive {
			return core.ErrRoomInactive
		}
		if room.CurrentOccupants >= room.Capacity {
			return core.ErrRoomFull
		}
		if _, ok := tx.ActiveAllocationFor(studentID); ok {
			return core.ErrStudentAlreadyAllocated
		}

		alloc = models.HostelAllocation{
			ID:              uuid.New(),
			StudentID:       studentID,
			RoomID:          roomID,
			AllocationDate:  time.Now(),
			Status:          models.AllocationAllocated,
			Rent:            room.Rent,
			SecurityDeposit: securityDeposit,
		}
		a := alloc
		tx.InsertAllocation(&a)
		room.CurrentOccupants++
		tx.RecomputeHostelOccupancy(room.HostelID)
		return nil
	})
	return alloc, err
}

// VacateRoom ends an allocation. Vacated is terminal; vacating twice
// fails with AlreadyVacated and changes no counters.
func (m *OccupancyManager) VacateRoom(allocationID uuid.UUID) (models.HostelAllocation, error) {
	var alloc models.HostelAllocation
	err := m.store.Update(func(tx *store.Tx) error {
		a, ok := tx.Allocation(allocationID)
		if !ok {
			return core.ErrAllocationNotFound
		}
		if a.Status == models.AllocationVacated {
			return core.ErrAlreadyVacated
		}

		wasAllocated := a.Status == models.AllocationAllocated
		now := time.Now()
		a.Status = models.AllocationVacated
		a.VacateDate = &now

		// A suspended allocation already released its bed.
		if wasAllocated {
			if room, ok := tx.Room(a.RoomID); ok {
				room.CurrentOccupants--
				tx.RecomputeHostelOccupancy(room.HostelID)
			}
		}
		alloc = *a
		return nil
	})
	return alloc, err
}

// SuspendAllocation parks an allocation without ending it. The bed is
// released while suspended, since occupancy counts only status=allocated.
func (m *OccupancyManager) SuspendAllocation(allocationID uuid.UUID) (models.HostelAllocation, error) {
	var alloc models.HostelAllocation
	err := m.store.Update(func(tx *store.Tx) error {
		a, ok := tx.Allocation(allocationID)
		if !ok {
			return core.ErrAllocationNotFound
		}
		if !a.Status.CanTransitionTo(models.AllocationSuspended) {
			return core.ErrInvalidTransition
		}

		a.Status = models.AllocationSuspended
		if room, ok := tx.Room(a.RoomID); ok {
			room.CurrentOccupants--
			tx.RecomputeHostelOccupancy(room.HostelID)
		}
		alloc = *a
		return nil
	})
	return alloc, err
}

// ReinstateAllocation returns a suspended allocation to allocated. The
// bed was freed on suspension, so capacity is re-checked and the call
// can fail with RoomFull if the room filled up in the meantime.
func (m *OccupancyManager) ReinstateAllocation(allocationID uuid.UUID) (models.HostelAllocation, error) {
	var alloc models.HostelAllocation
	err := m.store.Update(func(tx *store.Tx) error {
		a, ok := tx.Allocation(allocationID)
		if !ok {
			return core.ErrAllocationNotFound
		}
		if a.Status != models.AllocationSuspended {
			return core.ErrInvalidTransition
		}
		room, ok := tx.Room(a.RoomID)
		if !ok {
			return core.ErrUnknownRoom
		}
		if !room.IsActive {
			return core.ErrRoomInactive
		}
		if room.CurrentOccupants >= room.Capacity {
			return core.ErrRoomFull
		}
		if _, ok := tx.ActiveAllocationFor(a.StudentID); ok {
			return core.ErrStudentAlreadyAllocated
		}

		a.Status = models.AllocationAllocated
		room.CurrentOccupants++
		tx.RecomputeHostelOccupancy(room.HostelID)
		alloc = *a
		return nil
	})
	return alloc, err
}

func (m *OccupancyManager) GetAllocation(allocationID uuid.UUID) (models.HostelAllocation, error) {
	var alloc models.HostelAllocation
	err := m.store.View(func(tx *store.Tx) error {
		a, ok := tx.Allocation(allocationID)
		if !ok {
			return core.ErrAllocationNotFound
		}
		alloc = *a
		return nil
	})
	return alloc, err
}

// AvailableRooms yields active rooms with at least one free bed,
// optionally restricted to one hostel, ordered by hostel then room
// number. The sequence is computed against a snapshot taken when
// iteration starts and can be ranged over more than once.
func (m *OccupancyManager) AvailableRooms(hostelID *uuid.UUID) iter.Seq[models.Room] {
	return func(yield func(models.Room) bool) {
		var snapshot []models.Room
		m.store.View(func(tx *store.Tx) error {
			for _, r := range tx.RoomsSorted() {
				if hostelID != nil && r.HostelID != *hostelID {
					continue
				}
				if r.HasVacancy() {
					snapshot = append(snapshot, *r)
				}
			}
			return nil
		})
		for _, r := range snapshot {
			if !yield(r) {
				return
			}
		}
	}
}
