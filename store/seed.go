package store

import (
	"fmt"
	"log"
	"time"

	config "github.com/campuskit/college_admin/configs"
	"github.com/campuskit/college_admin/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial admin user from the environment if no
// user with that email exists yet.
func (s *Store) SeedAdmin() {
	adminEmail := config.ConfigDefault("ADMIN_EMAIL", "admin@college.edu")
	adminPassword := config.ConfigDefault("ADMIN_PASSWORD", "admin123")

	err := s.Update(func(tx *Tx) error {
		if _, ok := tx.UserByEmail(adminEmail); ok {
			log.Println("Admin user already exists.")
			return nil
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now()
		tx.InsertUser(&models.User{
			ID:        uuid.New(),
			Name:      config.ConfigDefault("ADMIN_FULL_NAME", "System Administrator"),
			Email:     adminEmail,
			Password:  string(hashedPassword),
			Role:      models.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedCatalog loads the demo reference data: courses, hostels, rooms and
// the examination calendar. Reference data is immutable once loaded.
func (s *Store) SeedCatalog() {
	now := time.Now()

	cs := &models.Course{
		ID: uuid.New(), Name: "Computer Science Engineering", Code: "CS",
		Duration: 4, Fees: 50000, Department: "Engineering", IsActive: true, CreatedAt: now,
	}
	me := &models.Course{
		ID: uuid.New(), Name: "Mechanical Engineering", Code: "ME",
		Duration: 4, Fees: 45000, Department: "Engineering", IsActive: true, CreatedAt: now,
	}
	ba := &models.Course{
		ID: uuid.New(), Name: "Business Administration", Code: "BA",
		Duration: 3, Fees: 35000, Department: "Management", IsActive: true, CreatedAt: now,
	}

	boys := &models.Hostel{
		ID: uuid.New(), Name: "Sunrise Boys Hostel", Type: models.HostelBoys,
		TotalRooms: 3, WardenName: "Rajesh Kumar", WardenPhone: "9876500001",
		Facilities: []string{"wifi", "mess", "laundry"}, IsActive: true,
	}
	girls := &models.Hostel{
		ID: uuid.New(), Name: "Lotus Girls Hostel", Type: models.HostelGirls,
		TotalRooms: 2, WardenName: "Meena Sharma", WardenPhone: "9876500002",
		Facilities: []string{"wifi", "mess", "library"}, IsActive: true,
	}

	rooms := []*models.Room{
		{ID: uuid.New(), HostelID: boys.ID, RoomNumber: "101", Floor: 1, Capacity: 2, Type: models.RoomDouble, Rent: 5000, IsActive: true},
		{ID: uuid.New(), HostelID: boys.ID, RoomNumber: "102", Floor: 1, Capacity: 1, Type: models.RoomSingle, Rent: 8000, IsActive: true},
		{ID: uuid.New(), HostelID: boys.ID, RoomNumber: "201", Floor: 2, Capacity: 4, Type: models.RoomDormitory, Rent: 3000, IsActive: true},
		{ID: uuid.New(), HostelID: girls.ID, RoomNumber: "101", Floor: 1, Capacity: 2, Type: models.RoomDouble, Rent: 5500, IsActive: true},
		{ID: uuid.New(), HostelID: girls.ID, RoomNumber: "102", Floor: 1, Capacity: 3, Type: models.RoomTriple, Rent: 4000, IsActive: true},
	}

	year := now.Year()
	exams := []*models.Examination{
		{
			ID: uuid.New(), Name: "Mid Semester Examination", Type: models.ExamInternal,
			CourseID: cs.ID, Semester: 1, AcademicYear: academicYear(year),
			StartDate: now.AddDate(0, 1, 0), EndDate: now.AddDate(0, 1, 7),
			TotalMarks: 50, PassingMarks: 20, Status: models.ExamScheduled,
		},
		{
			ID: uuid.New(), Name: "End Semester Examination", Type: models.ExamSemester,
			CourseID: cs.ID, Semester: 1, AcademicYear: academicYear(year),
			StartDate: now.AddDate(0, 4, 0), EndDate: now.AddDate(0, 4, 14),
			TotalMarks: 100, PassingMarks: 40, Status: models.ExamScheduled,
		},
	}

	err := s.Update(func(tx *Tx) error {
		for _, c := range []*models.Course{cs, me, ba} {
			tx.InsertCourse(c)
		}
		for _, h := range []*models.Hostel{boys, girls} {
			tx.InsertHostel(h)
		}
		for _, r := range rooms {
			tx.InsertRoom(r)
		}
		for _, e := range exams {
			tx.InsertExamination(e)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("🔥 Failed to seed catalog: %v", err)
	}
	log.Println("✅ Catalog seeded successfully")
}

func academicYear(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}
