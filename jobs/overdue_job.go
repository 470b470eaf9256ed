package jobs

import (
	"log"

	"github.com/campuskit/college_admin/services"
)

// OverdueSweep moves pending fees past their due date to overdue and
// accrues late fees. Scheduled via cron; the overdue transition is never
// triggered by a user request.
type OverdueSweep struct {
	Ledger *services.FeeLedger
}

func (j *OverdueSweep) Run() {
	log.Println("Running job: OverdueSweep...")

	moved := j.Ledger.SweepOverdue()
	if moved == 0 {
		log.Println("No fees became overdue.")
		return
	}
	log.Printf("Marked %d fee(s) as overdue.", moved)
}
