package services

import (
	"time"

	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/store"
)

// DashboardStats is the aggregate snapshot the admin dashboard renders.
type DashboardStats struct {
	TotalStudents      int     `json:"total_students"`
	ActiveStudents     int     `json:"active_students"`
	TotalAdmissions    int     `json:"total_admissions"`
	PendingAdmissions  int     `json:"pending_admissions"`
	TotalFeeCollection float64 `json:"total_fee_collection"`
	PendingFees        float64 `json:"pending_fees"`
	HostelOccupancy    float64 `json:"hostel_occupancy"`
	TotalRooms         int     `json:"total_rooms"`
	OccupiedRooms      int     `json:"occupied_rooms"`
	UpcomingExams      int     `json:"upcoming_exams"`
}

// Reporting is the read side over the other components. Stats are
// recomputed from store state on every call; nothing here mutates, and
// nothing is cached.
type Reporting struct {
	store *store.Store
}

func NewReporting(st *store.Store) *Reporting {
	return &Reporting{store: st}
}

func (r *Reporting) DashboardStats() DashboardStats {
	var stats DashboardStats
	now := time.Now()

	r.store.View(func(tx *store.Tx) error {
		tx.ForEachStudent(func(st *models.Student) {
			stats.TotalStudents++
			if st.Status == models.StudentActive {
				stats.ActiveStudents++
			}
		})

		tx.ForEachAdmission(func(a *models.Admission) {
			stats.TotalAdmissions++
			switch a.Status {
			case models.AdmissionPending, models.AdmissionUnderReview, models.AdmissionInterviewScheduled:
				stats.PendingAdmissions++
			}
		})

		tx.ForEachFee(func(f *models.Fee) {
			stats.TotalFeeCollection += f.PaidAmount
			if f.Status != models.FeePaid {
				stats.PendingFees += f.TotalDue()
			}
		})

		var beds, occupiedBeds int
		for _, room := range tx.RoomsSorted() {
			if !room.IsActive {
				continue
			}
			stats.TotalRooms++
			beds += room.Capacity
			occupiedBeds += room.CurrentOccupants
		}
		if beds > 0 {
			stats.HostelOccupancy = float64(occupiedBeds) / float64(beds) * 100
		}

		tx.ForEachHostel(func(h *models.Hostel) {
			stats.OccupiedRooms += h.OccupiedRooms
		})

		tx.ForEachExamination(func(e *models.Examination) {
			if e.Upcoming(now) {
				stats.UpcomingExams++
			}
		})
		return nil
	})

	return stats
}
