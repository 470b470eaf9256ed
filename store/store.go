package store

import (
	"sort"
	"sync"

	"github.com/campuskit/college_admin/models"
	"github.com/google/uuid"
)

// Store is the in-memory state shared by the engine services. It is
// constructed explicitly and handed to each service, there is no package
// global. A single mutex guards all mutations so that multi-entity
// effects (allocation insert + room counter + hostel counter) commit as
// one atomic step and a capacity check can never race its increment.
type Store struct {
	mu sync.RWMutex

	courses      map[uuid.UUID]*models.Course
	hostels      map[uuid.UUID]*models.Hostel
	rooms        map[uuid.UUID]*models.Room
	students     map[uuid.UUID]*models.Student
	fees         map[uuid.UUID]*models.Fee
	allocations  map[uuid.UUID]*models.HostelAllocation
	admissions   map[uuid.UUID]*models.Admission
	examinations map[uuid.UUID]*models.Examination
	users        map[uuid.UUID]*models.User
}

func New() *Store {
	return &Store{
		courses:      make(map[uuid.UUID]*models.Course),
		hostels:      make(map[uuid.UUID]*models.Hostel),
		rooms:        make(map[uuid.UUID]*models.Room),
		students:     make(map[uuid.UUID]*models.Student),
		fees:         make(map[uuid.UUID]*models.Fee),
		allocations:  make(map[uuid.UUID]*models.HostelAllocation),
		admissions:   make(map[uuid.UUID]*models.Admission),
		examinations: make(map[uuid.UUID]*models.Examination),
		users:        make(map[uuid.UUID]*models.User),
	}
}

// Tx is the view the callback of Update/View works against. Pointers it
// hands out are live store records; they must not escape the callback.
type Tx struct {
	s *Store
}

// Update runs fn while holding the write lock. Every engine mutation
// goes through here. fn must validate before it mutates: there is no
// rollback, so returning an error after a partial write would leak it.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// View runs fn under the read lock. fn must not mutate anything it
// reaches through the Tx.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

func (tx *Tx) Course(id uuid.UUID) (*models.Course, bool) {
	c, ok := tx.s.courses[id]
	return c, ok
}

func (tx *Tx) Hostel(id uuid.UUID) (*models.Hostel, bool) {
	h, ok := tx.s.hostels[id]
	return h, ok
}

func (tx *Tx) Room(id uuid.UUID) (*models.Room, bool) {
	r, ok := tx.s.rooms[id]
	return r, ok
}

func (tx *Tx) Student(id uuid.UUID) (*models.Student, bool) {
	st, ok := tx.s.students[id]
	return st, ok
}

func (tx *Tx) Fee(id uuid.UUID) (*models.Fee, bool) {
	f, ok := tx.s.fees[id]
	return f, ok
}

func (tx *Tx) Allocation(id uuid.UUID) (*models.HostelAllocation, bool) {
	a, ok := tx.s.allocations[id]
	return a, ok
}

func (tx *Tx) Admission(id uuid.UUID) (*models.Admission, bool) {
	a, ok := tx.s.admissions[id]
	return a, ok
}

func (tx *Tx) UserByEmail(email string) (*models.User, bool) {
	for _, u := range tx.s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (tx *Tx) StudentByRoll(roll string) (*models.Student, bool) {
	for _, st := range tx.s.students {
		if st.RollNumber == roll {
			return st, true
		}
	}
	return nil, false
}

func (tx *Tx) InsertCourse(c *models.Course)            { tx.s.courses[c.ID] = c }
func (tx *Tx) InsertHostel(h *models.Hostel)            { tx.s.hostels[h.ID] = h }
func (tx *Tx) InsertRoom(r *models.Room)                { tx.s.rooms[r.ID] = r }
func (tx *Tx) InsertStudent(st *models.Student)         { tx.s.students[st.ID] = st }
func (tx *Tx) InsertFee(f *models.Fee)                  { tx.s.fees[f.ID] = f }
func (tx *Tx) InsertAdmission(a *models.Admission)      { tx.s.admissions[a.ID] = a }
func (tx *Tx) InsertExamination(e *models.Examination)  { tx.s.examinations[e.ID] = e }
func (tx *Tx) InsertUser(u *models.User)                { tx.s.users[u.ID] = u }
func (tx *Tx) InsertAllocation(a *models.HostelAllocation) {
	tx.s.allocations[a.ID] = a
}

// ActiveAllocationFor returns the student's allocation with
// status=allocated, if any. The engine guarantees there is at most one.
func (tx *Tx) ActiveAllocationFor(studentID uuid.UUID) (*models.HostelAllocation, bool) {
	for _, a := range tx.s.allocations {
		if a.StudentID == studentID && a.Status == models.AllocationAllocated {
			return a, true
		}
	}
	return nil, false
}

// AllocatedCount counts allocations with status=allocated for a room.
// Room.CurrentOccupants must always equal this.
func (tx *Tx) AllocatedCount(roomID uuid.UUID) int {
	n := 0
	for _, a := range tx.s.allocations {
		if a.RoomID == roomID && a.Status == models.AllocationAllocated {
			n++
		}
	}
	return n
}

// RecomputeHostelOccupancy refreshes Hostel.OccupiedRooms (rooms at full
// capacity) from room state. Called inside the same Update that changed
// occupancy so the two derived counters can never drift apart.
func (tx *Tx) RecomputeHostelOccupancy(hostelID uuid.UUID) {
	h, ok := tx.s.hostels[hostelID]
	if !ok {
		return
	}
	full := 0
	for _, r := range tx.s.rooms {
		if r.HostelID == hostelID && r.Capacity > 0 && r.CurrentOccupants >= r.Capacity {
			full++
		}
	}
	h.OccupiedRooms = full
}

func (tx *Tx) ForEachStudent(fn func(*models.Student)) {
	for _, st := range tx.s.students {
		fn(st)
	}
}

func (tx *Tx) ForEachFee(fn func(*models.Fee)) {
	for _, f := range tx.s.fees {
		fn(f)
	}
}

func (tx *Tx) ForEachHostel(fn func(*models.Hostel)) {
	for _, h := range tx.s.hostels {
		fn(h)
	}
}

func (tx *Tx) ForEachAllocation(fn func(*models.HostelAllocation)) {
	for _, a := range tx.s.allocations {
		fn(a)
	}
}

func (tx *Tx) ForEachAdmission(fn func(*models.Admission)) {
	for _, a := range tx.s.admissions {
		fn(a)
	}
}

func (tx *Tx) ForEachExamination(fn func(*models.Examination)) {
	for _, e := range tx.s.examinations {
		fn(e)
	}
}

// RoomsSorted returns rooms ordered by hostel then room number so
// listings are stable across calls.
func (tx *Tx) RoomsSorted() []*models.Room {
	out := make([]*models.Room, 0, len(tx.s.rooms))
	for _, r := range tx.s.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HostelID != out[j].HostelID {
			return out[i].HostelID.String() < out[j].HostelID.String()
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out
}

func (tx *Tx) ReceiptNumberTaken(number string) bool {
	for _, f := range tx.s.fees {
		if f.Payment != nil && f.Payment.ReceiptNumber == number {
			return true
		}
	}
	return false
}

func (tx *Tx) ApplicationNumberTaken(number string) bool {
	for _, a := range tx.s.admissions {
		if a.ApplicationNumber == number {
			return true
		}
	}
	return false
}
