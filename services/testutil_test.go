package services

import (
	"testing"
	"time"

	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/store"
	"github.com/google/uuid"
)

// fixtures is the small campus every service test runs against: one
// course, two enrolled students, one hostel with a single and a double
// room.
type fixtures struct {
	course     models.Course
	student    models.Student
	student2   models.Student
	hostel     models.Hostel
	roomSingle models.Room
	roomDouble models.Room
}

func newTestStore(t *testing.T) (*store.Store, fixtures) {
	t.Helper()

	now := time.Now()
	fx := fixtures{
		course: models.Course{
			ID: uuid.New(), Name: "Computer Science Engineering", Code: "CS",
			Duration: 4, Fees: 50000, Department: "Engineering", IsActive: true, CreatedAt: now,
		},
		hostel: models.Hostel{
			ID: uuid.New(), Name: "Sunrise Boys Hostel", Type: models.HostelBoys,
			TotalRooms: 2, WardenName: "Rajesh Kumar", WardenPhone: "9876500001", IsActive: true,
		},
	}
	fx.student = models.Student{
		ID: uuid.New(), RollNumber: "2026CS001", Name: "Arun Verma",
		Email: "arun@college.edu", Phone: "9876512345", AdmissionDate: now,
		CourseID: fx.course.ID, Year: 1, Semester: 1, Status: models.StudentActive,
		CreatedAt: now, UpdatedAt: now,
	}
	fx.student2 = models.Student{
		ID: uuid.New(), RollNumber: "2026CS002", Name: "Vikram Singh",
		Email: "vikram@college.edu", Phone: "9876512346", AdmissionDate: now,
		CourseID: fx.course.ID, Year: 1, Semester: 1, Status: models.StudentActive,
		CreatedAt: now, UpdatedAt: now,
	}
	fx.roomSingle = models.Room{
		ID: uuid.New(), HostelID: fx.hostel.ID, RoomNumber: "102", Floor: 1,
		Capacity: 1, Type: models.RoomSingle, Rent: 8000, IsActive: true,
	}
	fx.roomDouble = models.Room{
		ID: uuid.New(), HostelID: fx.hostel.ID, RoomNumber: "101", Floor: 1,
		Capacity: 2, Type: models.RoomDouble, Rent: 5000, IsActive: true,
	}

	st := store.New()
	err := st.Update(func(tx *store.Tx) error {
		c, h := fx.course, fx.hostel
		s1, s2 := fx.student, fx.student2
		r1, r2 := fx.roomSingle, fx.roomDouble
		tx.InsertCourse(&c)
		tx.InsertHostel(&h)
		tx.InsertStudent(&s1)
		tx.InsertStudent(&s2)
		tx.InsertRoom(&r1)
		tx.InsertRoom(&r2)
		return nil
	})
	if err != nil {
		t.Fatalf("seeding test store: %v", err)
	}
	return st, fx
}

func testLedgerConfig() LedgerConfig {
	return LedgerConfig{
		FeeCap:      500000,
		LateFeeMode: LateFeeFlat,
		LateFeeFlat: 500,
	}
}

// occupantsOf reads the live counter for a room.
func occupantsOf(t *testing.T, st *store.Store, roomID uuid.UUID) int {
	t.Helper()
	var n int
	st.View(func(tx *store.Tx) error {
		r, ok := tx.Room(roomID)
		if !ok {
			t.Fatalf("room %s not in store", roomID)
		}
		n = r.CurrentOccupants
		return nil
	})
	return n
}

// allocatedCount counts allocations with status=allocated for a room.
func allocatedCount(t *testing.T, st *store.Store, roomID uuid.UUID) int {
	t.Helper()
	var n int
	st.View(func(tx *store.Tx) error {
		n = tx.AllocatedCount(roomID)
		return nil
	})
	return n
}

func deactivateRoom(t *testing.T, st *store.Store, roomID uuid.UUID) {
	t.Helper()
	st.Update(func(tx *store.Tx) error {
		r, ok := tx.Room(roomID)
		if !ok {
			t.Fatalf("room %s not in store", roomID)
		}
		r.IsActive = false
		return nil
	})
}

func occupiedRoomsOf(t *testing.T, st *store.Store, hostelID uuid.UUID) int {
	t.Helper()
	var n int
	st.View(func(tx *store.Tx) error {
		h, ok := tx.Hostel(hostelID)
		if !ok {
			t.Fatalf("hostel %s not in store", hostelID)
		}
		n = h.OccupiedRooms
		return nil
	})
	return n
}
