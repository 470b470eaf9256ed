package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/services"
	"github.com/campuskit/college_admin/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv wires the engine services onto a bare fiber app, without the
// auth middleware, so handler behavior can be exercised directly.
type testEnv struct {
	app     *fiber.App
	store   *store.Store
	ledger  *services.FeeLedger
	student models.Student
	room    models.Room
	course  models.Course
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	st := store.New()
	now := time.Now()
	course := models.Course{
		ID: uuid.New(), Name: "Computer Science Engineering", Code: "CS",
		Duration: 4, Fees: 50000, Department: "Engineering", IsActive: true, CreatedAt: now,
	}
	hostel := models.Hostel{
		ID: uuid.New(), Name: "Sunrise Boys Hostel", Type: models.HostelBoys,
		TotalRooms: 1, WardenName: "Rajesh Kumar", WardenPhone: "9876500001", IsActive: true,
	}
	student := models.Student{
		ID: uuid.New(), RollNumber: "2026CS001", Name: "Arun Verma",
		Email: "arun@college.edu", Phone: "9876512345", AdmissionDate: now,
		CourseID: course.ID, Year: 1, Semester: 1, Status: models.StudentActive,
		CreatedAt: now, UpdatedAt: now,
	}
	room := models.Room{
		ID: uuid.New(), HostelID: hostel.ID, RoomNumber: "102", Floor: 1,
		Capacity: 1, Type: models.RoomSingle, Rent: 8000, IsActive: true,
	}
	err := st.Update(func(tx *store.Tx) error {
		c, h, s, r := course, hostel, student, room
		tx.InsertCourse(&c)
		tx.InsertHostel(&h)
		tx.InsertStudent(&s)
		tx.InsertRoom(&r)
		return nil
	})
	require.NoError(t, err)

	ledger := services.NewFeeLedger(st, services.LedgerConfig{
		FeeCap:      500000,
		LateFeeMode: services.LateFeeFlat,
		LateFeeFlat: 500,
	})
	registry := services.NewStudentRegistry(st)
	occupancy := services.NewOccupancyManager(st)
	desk := services.NewAdmissionDesk(st)
	reporting := services.NewReporting(st)

	app := fiber.New()
	feeH := NewFeeHandler(ledger)
	app.Post("/fees", feeH.ScheduleFee)
	app.Post("/fees/:feeId/pay", feeH.PayFee)
	app.Post("/fees/:feeId/pay-partial", feeH.RecordPartialPayment)
	app.Get("/fees/:feeId/receipt", feeH.GetReceipt)

	hostelH := NewHostelHandler(occupancy)
	app.Get("/hostel/rooms/available", hostelH.AvailableRooms)
	app.Post("/hostel/allocations", hostelH.AllocateRoom)
	app.Post("/hostel/allocations/:allocationId/vacate", hostelH.VacateRoom)

	studentH := NewStudentHandler(registry, ledger)
	app.Get("/students/:studentId/fees/totals", studentH.GetFeeTotals)
	app.Get("/students/roll/:rollNumber", studentH.GetByRollNumber)

	admissionH := NewAdmissionHandler(desk)
	app.Post("/admissions", admissionH.SubmitApplication)
	app.Post("/admissions/:admissionId/status", admissionH.UpdateStatus)

	app.Get("/dashboard/stats", NewDashboardHandler(reporting).GetStats)

	return &testEnv{app: app, store: st, ledger: ledger, student: student, room: room, course: course}
}

// newStudentInStore enrolls one more active student and returns its id.
func newStudentInStore(t *testing.T, env *testEnv) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now()
	err := env.store.Update(func(tx *store.Tx) error {
		tx.InsertStudent(&models.Student{
			ID: id, RollNumber: "2026CS099", Name: "Vikram Singh",
			Email: "vikram@college.edu", Phone: "9876512346", AdmissionDate: now,
			CourseID: env.course.ID, Year: 1, Semester: 1, Status: models.StudentActive,
			CreatedAt: now, UpdatedAt: now,
		})
		return nil
	})
	require.NoError(t, err)
	return id
}

func (env *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}
