package models

import (
	"time"

	"github.com/google/uuid"
)

type AdmissionStatus string

const (
	AdmissionPending            AdmissionStatus = "pending"
	AdmissionUnderReview        AdmissionStatus = "under_review"
	AdmissionInterviewScheduled AdmissionStatus = "interview_scheduled"
	AdmissionApproved           AdmissionStatus = "approved"
	AdmissionRejected           AdmissionStatus = "rejected"
	AdmissionConfirmed          AdmissionStatus = "confirmed"
)

func (s AdmissionStatus) Valid() bool {
	switch s {
	case AdmissionPending, AdmissionUnderReview, AdmissionInterviewScheduled,
		AdmissionApproved, AdmissionRejected, AdmissionConfirmed:
		return true
	}
	return false
}

func (s AdmissionStatus) CanTransitionTo(next AdmissionStatus) bool {
	switch s {
	case AdmissionPending:
		return next == AdmissionUnderReview || next == AdmissionRejected
	case AdmissionUnderReview:
		return next == AdmissionInterviewScheduled || next == AdmissionApproved || next == AdmissionRejected
	case AdmissionInterviewScheduled:
		return next == AdmissionApproved || next == AdmissionRejected
	case AdmissionApproved:
		return next == AdmissionConfirmed
	}
	return false
}

// Admission is one application for a course seat. StudentID is set when
// the application is approved and the registry record is created.
type Admission struct {
	ID                uuid.UUID       `json:"id"`
	ApplicationNumber string          `json:"application_number"`
	ApplicantName     string          `json:"applicant_name"`
	ApplicantEmail    string          `json:"applicant_email"`
	ApplicantPhone    string          `json:"applicant_phone"`
	CourseID          uuid.UUID       `json:"course_id"`
	ApplicationDate   time.Time       `json:"application_date"`
	Status            AdmissionStatus `json:"status"`
	InterviewDate     *time.Time      `json:"interview_date,omitempty"`
	InterviewScore    *int            `json:"interview_score,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	ProcessedBy       string          `json:"processed_by,omitempty"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
	StudentID         *uuid.UUID      `json:"student_id,omitempty"`
}
