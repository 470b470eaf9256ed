package models

import (
	"time"

	"github.com/google/uuid"
)

type ExamType string

const (
	ExamInternal      ExamType = "internal"
	ExamSemester      ExamType = "semester"
	ExamAnnual        ExamType = "annual"
	ExamSupplementary ExamType = "supplementary"
)

type ExamStatus string

const (
	ExamScheduled ExamStatus = "scheduled"
	ExamOngoing   ExamStatus = "ongoing"
	ExamCompleted ExamStatus = "completed"
	ExamCancelled ExamStatus = "cancelled"
)

type Examination struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Type         ExamType   `json:"type"`
	CourseID     uuid.UUID  `json:"course_id"`
	Semester     int        `json:"semester"`
	AcademicYear string     `json:"academic_year"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	TotalMarks   int        `json:"total_marks"`
	PassingMarks int        `json:"passing_marks"`
	Status       ExamStatus `json:"status"`
}

// Upcoming reports whether the exam is still ahead of now and has not
// been cancelled.
func (e *Examination) Upcoming(now time.Time) bool {
	return e.Status == ExamScheduled && e.StartDate.After(now)
}
