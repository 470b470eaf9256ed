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

// AdmissionDesk runs the application pipeline:
// pending -> under_review -> interview_scheduled -> approved -> confirmed,
// with rejection possible until a decision lands. Approval is the only
// path that creates a Student; the application and the registry record
// are written in the same store update.
type AdmissionDesk struct {
	store *store.Store
}

func NewAdmissionDesk(st *store.Store) *AdmissionDesk {
	return &AdmissionDesk{store: st}
}

type NewApplication struct {
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone string
	Gender         string
	GuardianName   string
	GuardianPhone  string
	CourseID       uuid.UUID
}

func (d *AdmissionDesk) SubmitApplication(app NewApplication) (models.Admission, error) {
	var created models.Admission
	err := d.store.Update(func(tx *store.Tx) error {
		course, ok := tx.Course(app.CourseID)
		if !ok || !course.IsActive {
			return core.ErrUnknownCourse
		}

		now := time.Now()
		created = models.Admission{
			ID:                uuid.New(),
			ApplicationNumber: utils.GenerateApplicationNumber(now.Year(), tx.ApplicationNumberTaken),
			ApplicantName:     app.ApplicantName,
			ApplicantEmail:    app.ApplicantEmail,
			ApplicantPhone:    app.ApplicantPhone,
			CourseID:          app.CourseID,
			ApplicationDate:   now,
			Status:            models.AdmissionPending,
		}
		a := created
		tx.InsertAdmission(&a)
		return nil
	})
	return created, err
}

// StatusUpdate carries the reviewer's decision. InterviewDate is only
// meaningful when moving to interview_scheduled.
type StatusUpdate struct {
	Status        models.AdmissionStatus
	ProcessedBy   string
	Remarks       string
	InterviewDate *time.Time
}

// UpdateStatus advances an application. Moving to approved enrolls the
// applicant as an active student atomically with the status change.
func (d *AdmissionDesk) UpdateStatus(admissionID uuid.UUID, upd StatusUpdate) (models.Admission, error) {
	if !upd.Status.Valid() {
		return models.Admission{}, core.ErrInvalidTransition
	}

	var updated models.Admission
	err := d.store.Update(func(tx *store.Tx) error {
		adm, ok := tx.Admission(admissionID)
		if !ok {
			return core.ErrAdmissionNotFound
		}
		if !adm.Status.CanTransitionTo(upd.Status) {
			return core.ErrInvalidTransition
		}

		if upd.Status == models.AdmissionApproved {
			st, err := createStudentLocked(tx, NewStudent{
				Name:     adm.ApplicantName,
				Email:    adm.ApplicantEmail,
				Phone:    adm.ApplicantPhone,
				CourseID: adm.CourseID,
				Year:     1,
				Semester: 1,
			})
			if err != nil {
				return err
			}
			adm.StudentID = &st.ID
		}

		now := time.Now()
		adm.Status = upd.Status
		adm.ProcessedBy = upd.ProcessedBy
		adm.ProcessedAt = &now
		if upd.Remarks != "" {
			adm.Remarks = upd.Remarks
		}
		if upd.Status == models.AdmissionInterviewScheduled && upd.InterviewDate != nil {
			adm.InterviewDate = upd.InterviewDate
		}
		updated = *adm
		return nil
	})
	return updated, err
}

func (d *AdmissionDesk) GetApplication(id uuid.UUID) (models.Admission, error) {
	var out models.Admission
	err := d.store.View(func(tx *store.Tx) error {
		a, ok := tx.Admission(id)
		if !ok {
			return core.ErrAdmissionNotFound
		}
		out = *a
		return nil
	})
	return out, err
}

func (d *AdmissionDesk) ListApplications() []models.Admission {
	var out []models.Admission
	d.store.View(func(tx *store.Tx) error {
		tx.ForEachAdmission(func(a *models.Admission) {
			out = append(out, *a)
		})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ApplicationDate.After(out[j].ApplicationDate) })
	return out
}
