package services

import (
	"strings"
	"testing"

	"github.com/campuskit/college_admin/core"
	"github.com/campuskit/college_admin/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitApplication(t *testing.T, desk *AdmissionDesk, courseID uuid.UUID) models.Admission {
	t.Helper()
	adm, err := desk.SubmitApplication(NewApplication{
		ApplicantName:  "Priya Nair",
		ApplicantEmail: "priya@example.com",
		ApplicantPhone: "9876540001",
		CourseID:       courseID,
	})
	require.NoError(t, err)
	return adm
}

func TestSubmitApplication(t *testing.T) {
	st, fx := newTestStore(t)
	desk := NewAdmissionDesk(st)

	adm := submitApplication(t, desk, fx.course.ID)
	assert.Equal(t, models.AdmissionPending, adm.Status)
	assert.True(t, strings.HasPrefix(adm.ApplicationNumber, "APP-"))
	assert.Nil(t, adm.StudentID)

	_, err := desk.SubmitApplication(NewApplication{
		ApplicantName:  "Nobody",
		ApplicantEmail: "nobody@example.com",
		ApplicantPhone: "9876540002",
		CourseID:       uuid.New(),
	})
	assert.ErrorIs(t, err, core.ErrUnknownCourse)
}

func TestAdmissionApprovalCreatesStudent(t *testing.T) {
	st, fx := newTestStore(t)
	desk := NewAdmissionDesk(st)
	registry := NewStudentRegistry(st)

	adm := submitApplication(t, desk, fx.course.ID)

	_, err := desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionUnderReview, ProcessedBy: "Staff Member"})
	require.NoError(t, err)

	approved, err := desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionApproved, ProcessedBy: "Staff Member"})
	require.NoError(t, err)
	require.NotNil(t, approved.StudentID)

	st2, err := registry.GetStudent(*approved.StudentID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, st2.Status)
	assert.Equal(t, adm.ApplicantName, st2.Name)
	// Fixtures already hold 2026CS001 and 2026CS002.
	assert.Regexp(t, `^\d{4}CS\d{3}$`, st2.RollNumber)

	confirmed, err := desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionConfirmed, ProcessedBy: "Staff Member"})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionConfirmed, confirmed.Status)
}

func TestAdmissionInvalidTransitions(t *testing.T) {
	st, fx := newTestStore(t)
	desk := NewAdmissionDesk(st)

	adm := submitApplication(t, desk, fx.course.ID)

	// Approval requires review first.
	_, err := desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionConfirmed})
	assert.ErrorIs(t, err, core.ErrInvalidTransition)

	_, err = desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionRejected})
	require.NoError(t, err)

	// Rejection is terminal.
	_, err = desk.UpdateStatus(adm.ID, StatusUpdate{Status: models.AdmissionUnderReview})
	assert.ErrorIs(t, err, core.ErrInvalidTransition)

	_, err = desk.UpdateStatus(uuid.New(), StatusUpdate{Status: models.AdmissionUnderReview})
	assert.ErrorIs(t, err, core.ErrAdmissionNotFound)
}

func TestStudentStatusLifecycle(t *testing.T) {
	st, fx := newTestStore(t)
	registry := NewStudentRegistry(st)

	// Suspension is the only reversible transition.
	s, err := registry.ChangeStatus(fx.student.ID, models.StudentSuspended)
	require.NoError(t, err)
	assert.Equal(t, models.StudentSuspended, s.Status)

	s, err = registry.ChangeStatus(fx.student.ID, models.StudentActive)
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, s.Status)

	_, err = registry.ChangeStatus(fx.student.ID, models.StudentGraduated)
	require.NoError(t, err)

	_, err = registry.ChangeStatus(fx.student.ID, models.StudentActive)
	assert.ErrorIs(t, err, core.ErrInvalidTransition, "graduation is terminal")

	_, err = registry.ChangeStatus(uuid.New(), models.StudentSuspended)
	assert.ErrorIs(t, err, core.ErrUnknownStudent)
}

func TestAddStudentRollNumbers(t *testing.T) {
	st, fx := newTestStore(t)
	registry := NewStudentRegistry(st)

	a, err := registry.AddStudent(NewStudent{
		Name: "Kiran Rao", Email: "kiran@example.com", Phone: "9876540003",
		CourseID: fx.course.ID, Year: 1, Semester: 1,
	})
	require.NoError(t, err)
	b, err := registry.AddStudent(NewStudent{
		Name: "Divya Menon", Email: "divya@example.com", Phone: "9876540004",
		CourseID: fx.course.ID, Year: 1, Semester: 1,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^\d{4}[A-Z]{2,4}\d{3}$`, a.RollNumber)
	assert.Regexp(t, `^\d{4}[A-Z]{2,4}\d{3}$`, b.RollNumber)
	assert.NotEqual(t, a.RollNumber, b.RollNumber)

	_, err = registry.AddStudent(NewStudent{Name: "No Course", CourseID: uuid.New()})
	assert.ErrorIs(t, err, core.ErrUnknownCourse)
}
