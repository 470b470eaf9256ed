package models

import (
	"time"

	"github.com/google/uuid"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
	StudentSuspended StudentStatus = "suspended"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated, StudentSuspended:
		return true
	}
	return false
}

// CanTransitionTo encodes the student lifecycle: transitions are
// one-way except active<->suspended. Inactive and graduated are terminal.
func (s StudentStatus) CanTransitionTo(next StudentStatus) bool {
	switch s {
	case StudentActive:
		return next == StudentInactive || next == StudentGraduated || next == StudentSuspended
	case StudentSuspended:
		return next == StudentActive || next == StudentInactive
	}
	return false
}

type Student struct {
	ID            uuid.UUID     `json:"id"`
	RollNumber    string        `json:"roll_number"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Gender        string        `json:"gender,omitempty"`
	GuardianName  string        `json:"guardian_name,omitempty"`
	GuardianPhone string        `json:"guardian_phone,omitempty"`
	AdmissionDate time.Time     `json:"admission_date"`
	CourseID      uuid.UUID     `json:"course_id"`
	Year          int           `json:"year"`
	Semester      int           `json:"semester"`
	Status        StudentStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
