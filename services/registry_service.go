package services

import (
	"sort"
	"time"

	"github.com/campuskit/college_admin/core"
	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/store"
	"github.com/campuskit/college_admin/utils"
	"github.com/google/uuid"
)

// StudentRegistry owns Student records. Students enter the registry only
// through admission approval (the admission desk calls into the same
// creation path); afterwards only their status moves, following the
// lifecycle encoded on StudentStatus.
type StudentRegistry struct {
	store *store.Store
}

func NewStudentRegistry(st *store.Store) *StudentRegistry {
	return &StudentRegistry{store: st}
}

// NewStudent is the data needed to enroll a student against a course.
type NewStudent struct {
	Name          string
	Email         string
	Phone         string
	Gender        string
	GuardianName  string
	GuardianPhone string
	CourseID      uuid.UUID
	Year          int
	Semester      int
}

// createStudentLocked inserts a student inside an already-held store
// update. Shared with the admission desk so approval and enrollment
// commit in one atomic step.
func createStudentLocked(tx *store.Tx, ns NewStudent) (*models.Student, error) {
	course, ok := tx.Course(ns.CourseID)
	if !ok {
		return nil, core.ErrUnknownCourse
	}

	now := time.Now()
	roll := nextRollNumber(tx, course.Code, now.Year())

	st := &models.Student{
		ID:            uuid.New(),
		RollNumber:    roll,
		Name:          ns.Name,
		Email:         ns.Email,
		Phone:         ns.Phone,
		Gender:        ns.Gender,
		GuardianName:  ns.GuardianName,
		GuardianPhone: ns.GuardianPhone,
		AdmissionDate: now,
		CourseID:      ns.CourseID,
		Year:          ns.Year,
		Semester:      ns.Semester,
		Status:        models.StudentActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	tx.InsertStudent(st)
	return st, nil
}

func nextRollNumber(tx *store.Tx, courseCode string, year int) string {
	seq := 1
	for {
		roll := utils.FormatRollNumber(year, courseCode, seq)
		if _, taken := tx.StudentByRoll(roll); !taken {
			return roll
		}
		seq++
	}
}

func (r *StudentRegistry) AddStudent(ns NewStudent) (models.Student, error) {
	var created models.Student
	err := r.store.Update(func(tx *store.Tx) error {
		st, err := createStudentLocked(tx, ns)
		if err != nil {
			return err
		}
		created = *st
		return nil
	})
	return created, err
}

func (r *StudentRegistry) GetStudent(id uuid.UUID) (models.Student, error) {
	var out models.Student
	err := r.store.View(func(tx *store.Tx) error {
		st, ok := tx.Student(id)
		if !ok {
			return core.ErrUnknownStudent
		}
		out = *st
		return nil
	})
	return out, err
}

func (r *StudentRegistry) GetByRollNumber(roll string) (models.Student, error) {
	var out models.Student
	err := r.store.View(func(tx *store.Tx) error {
		st, ok := tx.StudentByRoll(roll)
		if !ok {
			return core.ErrUnknownStudent
		}
		out = *st
		return nil
	})
	return out, err
}

// ChangeStatus applies a lifecycle transition. Transitions are one-way
// except active<->suspended; anything else fails with InvalidTransition.
func (r *StudentRegistry) ChangeStatus(id uuid.UUID, next models.StudentStatus) (models.Student, error) {
	if !next.Valid() {
		return models.Student{}, core.ErrInvalidTransition
	}
	var out models.Student
	err := r.store.Update(func(tx *store.Tx) error {
		st, ok := tx.Student(id)
		if !ok {
			return core.ErrUnknownStudent
		}
		if !st.Status.CanTransitionTo(next) {
			return core.ErrInvalidTransition
		}
		st.Status = next
		st.UpdatedAt = time.Now()
		out = *st
		return nil
	})
	return out, err
}

func (r *StudentRegistry) ListStudents() []models.Student {
	var out []models.Student
	r.store.View(func(tx *store.Tx) error {
		tx.ForEachStudent(func(st *models.Student) {
			out = append(out, *st)
		})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].RollNumber < out[j].RollNumber })
	return out
}
