package services

import (
	"sync"
	"testing"

	"github.com/campuskit/college_admin/core"
	"github.com/campuskit/college_admin/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateRoom(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomDouble.ID, 2000)
	require.NoError(t, err)

	assert.Equal(t, models.AllocationAllocated, alloc.Status)
	assert.Equal(t, fx.roomDouble.Rent, alloc.Rent)
	assert.Equal(t, 2000.0, alloc.SecurityDeposit)
	assert.False(t, alloc.AllocationDate.IsZero())
	assert.Equal(t, 1, occupantsOf(t, st, fx.roomDouble.ID))
	assert.Equal(t, 1, allocatedCount(t, st, fx.roomDouble.ID))
}

func TestAllocateRoomValidation(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	_, err := mgr.AllocateRoom(uuid.New(), fx.roomDouble.ID, 0)
	assert.ErrorIs(t, err, core.ErrUnknownStudent)

	_, err = mgr.AllocateRoom(fx.student.ID, uuid.New(), 0)
	assert.ErrorIs(t, err, core.ErrUnknownRoom)
}

func TestAllocateRoomInactive(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	deactivateRoom(t, st, fx.roomSingle.ID)
	_, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	assert.ErrorIs(t, err, core.ErrRoomInactive)
}

func TestAllocateRoomFull(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	// Scenario: capacity 1, first allocation fills the room, the second
	// must fail with RoomFull.
	_, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, occupantsOf(t, st, fx.roomSingle.ID))

	_, err = mgr.AllocateRoom(fx.student2.ID, fx.roomSingle.ID, 0)
	assert.ErrorIs(t, err, core.ErrRoomFull)
	assert.Equal(t, 1, occupantsOf(t, st, fx.roomSingle.ID))
}

func TestAllocateRoomSecondAllocationRejected(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	_, err := mgr.AllocateRoom(fx.student.ID, fx.roomDouble.ID, 0)
	require.NoError(t, err)

	_, err = mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	assert.ErrorIs(t, err, core.ErrStudentAlreadyAllocated)
	assert.Equal(t, 0, occupantsOf(t, st, fx.roomSingle.ID))
}

func TestVacateRoomRoundTrip(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	before := occupantsOf(t, st, fx.roomSingle.ID)
	beforeHostel := occupiedRoomsOf(t, st, fx.hostel.ID)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, occupiedRoomsOf(t, st, fx.hostel.ID), "capacity-1 room becomes a full room")

	vacated, err := mgr.VacateRoom(alloc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationVacated, vacated.Status)
	require.NotNil(t, vacated.VacateDate)

	assert.Equal(t, before, occupantsOf(t, st, fx.roomSingle.ID))
	assert.Equal(t, beforeHostel, occupiedRoomsOf(t, st, fx.hostel.ID))
	assert.Equal(t, 0, allocatedCount(t, st, fx.roomSingle.ID))
}

func TestVacateRoomTwice(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomDouble.ID, 0)
	require.NoError(t, err)
	_, err = mgr.VacateRoom(alloc.ID)
	require.NoError(t, err)

	_, err = mgr.VacateRoom(alloc.ID)
	assert.ErrorIs(t, err, core.ErrAlreadyVacated)
	assert.Equal(t, 0, occupantsOf(t, st, fx.roomDouble.ID), "counters must not change on a failed vacate")
}

func TestVacateRoomNotFound(t *testing.T) {
	st, _ := newTestStore(t)
	mgr := NewOccupancyManager(st)

	_, err := mgr.VacateRoom(uuid.New())
	assert.ErrorIs(t, err, core.ErrAllocationNotFound)
}

func TestSuspendAndReinstate(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)

	suspended, err := mgr.SuspendAllocation(alloc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationSuspended, suspended.Status)
	assert.Equal(t, 0, occupantsOf(t, st, fx.roomSingle.ID), "suspension releases the bed")

	reinstated, err := mgr.ReinstateAllocation(alloc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationAllocated, reinstated.Status)
	assert.Equal(t, 1, occupantsOf(t, st, fx.roomSingle.ID))
}

func TestReinstateFailsWhenRoomFilled(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)
	_, err = mgr.SuspendAllocation(alloc.ID)
	require.NoError(t, err)

	// Someone else takes the freed bed while the allocation is parked.
	_, err = mgr.AllocateRoom(fx.student2.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)

	_, err = mgr.ReinstateAllocation(alloc.ID)
	assert.ErrorIs(t, err, core.ErrRoomFull)
}

func TestVacateSuspendedAllocation(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	alloc, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)
	_, err = mgr.SuspendAllocation(alloc.ID)
	require.NoError(t, err)

	vacated, err := mgr.VacateRoom(alloc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationVacated, vacated.Status)
	// The bed was already released on suspension; the counter must not
	// go negative.
	assert.Equal(t, 0, occupantsOf(t, st, fx.roomSingle.ID))
}

func TestConcurrentAllocationLastBed(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	students := []uuid.UUID{fx.student.ID, fx.student2.ID}
	for i := range students {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = mgr.AllocateRoom(students[i], fx.roomSingle.ID, 0)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, core.ErrRoomFull)
		}
	}
	assert.Equal(t, 1, winners, "exactly one request may win the last bed")
	assert.Equal(t, 1, occupantsOf(t, st, fx.roomSingle.ID))
	assert.Equal(t, 1, allocatedCount(t, st, fx.roomSingle.ID))
}

func TestAvailableRooms(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	_, err := mgr.AllocateRoom(fx.student.ID, fx.roomSingle.ID, 0)
	require.NoError(t, err)

	var got []string
	for room := range mgr.AvailableRooms(nil) {
		got = append(got, room.RoomNumber)
	}
	assert.Equal(t, []string{"101"}, got, "full rooms are excluded")

	// The sequence is restartable.
	count := 0
	seq := mgr.AvailableRooms(&fx.hostel.ID)
	for range seq {
		count++
	}
	for range seq {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestAvailableRoomsExcludesInactive(t *testing.T) {
	st, fx := newTestStore(t)
	mgr := NewOccupancyManager(st)

	deactivateRoom(t, st, fx.roomDouble.ID)

	var got []string
	for room := range mgr.AvailableRooms(nil) {
		got = append(got, room.RoomNumber)
	}
	assert.Equal(t, []string{"102"}, got)
}
