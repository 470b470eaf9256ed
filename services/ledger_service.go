package services

import (
	"sort"
	"time"

	config "github.com/campuskit/college_admin/configs"
	"github.com/campuskit/college_admin/core"
	"github.com/campuskit/college_admin/models"
	"github.com/campuskit/college_admin/store"
	"github.com/campuskit/college_admin/utils"
	"github.com/google/uuid"
)

const (
	LateFeeFlat    = "flat"
	LateFeePercent = "percent"
)

// LedgerConfig is read from the environment at startup. FeeCap bounds a
// single obligation; the late-fee fields pick the accrual policy applied
// when a pending fee passes its due date.
type LedgerConfig struct {
	FeeCap         float64
	LateFeeMode    string
	LateFeeFlat    float64
	LateFeePercent float64
}

func LedgerConfigFromEnv() LedgerConfig {
	return LedgerConfig{
		FeeCap:         config.ConfigFloat("FEE_AMOUNT_CAP", 500000),
		LateFeeMode:    config.ConfigDefault("LATE_FEE_MODE", LateFeeFlat),
		LateFeeFlat:    config.ConfigFloat("LATE_FEE_FLAT", 500),
		LateFeePercent: config.ConfigFloat("LATE_FEE_PERCENT", 5),
	}
}

// FeeLedger owns Fee records. Fee state moves one way: pending fees can
// become overdue or paid, overdue fees can be paid, and paid is terminal.
// A correction to a paid fee means scheduling a new fee, never editing
// the old one.
type FeeLedger struct {
	store *store.Store
	cfg   LedgerConfig
}

func NewFeeLedger(st *store.Store, cfg LedgerConfig) *FeeLedger {
	return &FeeLedger{store: st, cfg: cfg}
}

func (l *FeeLedger) ScheduleFee(studentID uuid.UUID, feeType models.FeeType, amount float64, dueDate time.Time, semester int, academicYear string) (models.Fee, error) {
	if !feeType.Valid() {
		return models.Fee{}, core.ErrInvalidFeeType
	}
	if amount <= 0 || amount > l.cfg.FeeCap {
		return models.Fee{}, core.ErrInvalidAmount
	}

	var fee models.Fee
	err := l.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Student(studentID); !ok {
			return core.ErrUnknownStudent
		}
		now := time.Now()
		fee = models.Fee{
			ID:           uuid.New(),
			StudentID:    studentID,
			Type:         feeType,
			Amount:       amount,
			DueDate:      dueDate,
			Status:       models.FeePending,
			Semester:     semester,
			AcademicYear: academicYear,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		f := fee
		tx.InsertFee(&f)
		return nil
	})
	return fee, err
}

// ApplyPayment settles the full outstanding balance (principal plus any
// accrued late fee, minus prior partial payments) and issues a receipt.
// The receipt fields and the paid status are written in the same store
// update, so a half-paid fee is never observable. Retrying a payment
// that already went through fails with AlreadyPaid instead of charging
// twice.
func (l *FeeLedger) ApplyPayment(feeID uuid.UUID, method models.PaymentMethod) (models.Fee, error) {
	if !method.Valid() {
		return models.Fee{}, core.ErrInvalidPaymentMethod
	}

	var paid models.Fee
	err := l.store.Update(func(tx *store.Tx) error {
		fee, ok := tx.Fee(feeID)
		if !ok {
			return core.ErrFeeNotFound
		}
		if fee.Status == models.FeePaid {
			return core.ErrAlreadyPaid
		}

		now := time.Now()
		receipt := utils.GenerateReceiptNumber(now.Year(), tx.ReceiptNumberTaken)

		fee.PaidAmount = fee.Amount + fee.LateFee
		fee.Status = models.FeePaid
		fee.Payment = &models.PaymentRecord{
			PaidDate:      now,
			ReceiptNumber: receipt,
			Method:        method,
		}
		fee.UpdatedAt = now
		paid = *fee
		return nil
	})
	return paid, err
}

// RecordPartialPayment applies part of the outstanding balance. The
// original Amount is kept; PaidAmount accumulates, and the fee flips to
// paid (with a receipt) exactly when the balance reaches zero.
func (l *FeeLedger) RecordPartialPayment(feeID uuid.UUID, method models.PaymentMethod, amount float64) (models.Fee, error) {
	if !method.Valid() {
		return models.Fee{}, core.ErrInvalidPaymentMethod
	}
	if amount <= 0 {
		return models.Fee{}, core.ErrInvalidAmount
	}

	var updated models.Fee
	err := l.store.Update(func(tx *store.Tx) error {
		fee, ok := tx.Fee(feeID)
		if !ok {
			return core.ErrFeeNotFound
		}
		if fee.Status == models.FeePaid {
			return core.ErrAlreadyPaid
		}
		if amount > fee.TotalDue() {
			return core.ErrInvalidAmount
		}

		now := time.Now()
		fee.PaidAmount += amount
		if fee.TotalDue() <= 0 {
			fee.Status = models.FeePaid
			fee.Payment = &models.PaymentRecord{
				PaidDate:      now,
				ReceiptNumber: utils.GenerateReceiptNumber(now.Year(), tx.ReceiptNumberTaken),
				Method:        method,
			}
		} else {
			fee.Status = models.FeePartial
		}
		fee.UpdatedAt = now
		updated = *fee
		return nil
	})
	return updated, err
}

// MarkOverdue moves a pending fee past its due date to overdue and
// accrues the late fee once. Calling it on a paid fee, an already
// overdue fee, or a fee not yet due returns the record unchanged; the
// paid case is the one silent no-op the ledger permits.
func (l *FeeLedger) MarkOverdue(feeID uuid.UUID) (models.Fee, error) {
	var updated models.Fee
	err := l.store.Update(func(tx *store.Tx) error {
		fee, ok := tx.Fee(feeID)
		if !ok {
			return core.ErrFeeNotFound
		}
		l.markOverdueLocked(fee, time.Now())
		updated = *fee
		return nil
	})
	return updated, err
}

// SweepOverdue runs the overdue transition across the whole ledger and
// reports how many fees moved. Driven by the cron job, never by users.
func (l *FeeLedger) SweepOverdue() int {
	moved := 0
	now := time.Now()
	l.store.Update(func(tx *store.Tx) error {
		tx.ForEachFee(func(fee *models.Fee) {
			if l.markOverdueLocked(fee, now) {
				moved++
			}
		})
		return nil
	})
	return moved
}

func (l *FeeLedger) markOverdueLocked(fee *models.Fee, now time.Time) bool {
	if fee.Status != models.FeePending || !fee.DueDate.Before(now) {
		return false
	}
	fee.Status = models.FeeOverdue
	fee.LateFee = l.lateFeeFor(fee.Amount)
	fee.UpdatedAt = now
	return true
}

func (l *FeeLedger) lateFeeFor(amount float64) float64 {
	if l.cfg.LateFeeMode == LateFeePercent {
		return amount * l.cfg.LateFeePercent / 100
	}
	return l.cfg.LateFeeFlat
}

// Receipt is the read-only view handed to the presentation layer once a
// fee is fully paid.
type Receipt struct {
	ReceiptNumber string               `json:"receipt_number"`
	StudentID     uuid.UUID            `json:"student_id"`
	StudentName   string               `json:"student_name"`
	RollNumber    string               `json:"roll_number"`
	FeeType       models.FeeType       `json:"fee_type"`
	Amount        float64              `json:"amount"`
	LateFee       float64              `json:"late_fee,omitempty"`
	Total         float64              `json:"total"`
	PaidDate      time.Time            `json:"paid_date"`
	Method        models.PaymentMethod `json:"payment_method"`
	AcademicYear  string               `json:"academic_year"`
	Semester      int                  `json:"semester"`
}

func (l *FeeLedger) GenerateReceipt(feeID uuid.UUID) (Receipt, error) {
	var rcpt Receipt
	err := l.store.View(func(tx *store.Tx) error {
		fee, ok := tx.Fee(feeID)
		if !ok {
			return core.ErrFeeNotFound
		}
		if fee.Status != models.FeePaid || fee.Payment == nil {
			return core.ErrFeeNotPaid
		}
		rcpt = Receipt{
			ReceiptNumber: fee.Payment.ReceiptNumber,
			StudentID:     fee.StudentID,
			FeeType:       fee.Type,
			Amount:        fee.Amount,
			LateFee:       fee.LateFee,
			Total:         fee.Amount + fee.LateFee,
			PaidDate:      fee.Payment.PaidDate,
			Method:        fee.Payment.Method,
			AcademicYear:  fee.AcademicYear,
			Semester:      fee.Semester,
		}
		if st, ok := tx.Student(fee.StudentID); ok {
			rcpt.StudentName = st.Name
			rcpt.RollNumber = st.RollNumber
		}
		return nil
	})
	return rcpt, err
}

// FeeTotals is the per-student ledger summary: what is still owed across
// pending, overdue and partially paid fees, and what has been collected.
type FeeTotals struct {
	PendingTotal float64 `json:"pending_total"`
	PaidTotal    float64 `json:"paid_total"`
}

func (l *FeeLedger) TotalsFor(studentID uuid.UUID) (FeeTotals, error) {
	var totals FeeTotals
	err := l.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Student(studentID); !ok {
			return core.ErrUnknownStudent
		}
		tx.ForEachFee(func(fee *models.Fee) {
			if fee.StudentID != studentID {
				return
			}
			totals.PaidTotal += fee.PaidAmount
			if fee.Status != models.FeePaid {
				totals.PendingTotal += fee.TotalDue()
			}
		})
		return nil
	})
	return totals, err
}

// StudentFees lists a student's ledger entries, newest first.
func (l *FeeLedger) StudentFees(studentID uuid.UUID) ([]models.Fee, error) {
	var out []models.Fee
	err := l.store.View(func(tx *store.Tx) error {
		if _, ok := tx.Student(studentID); !ok {
			return core.ErrUnknownStudent
		}
		tx.ForEachFee(func(fee *models.Fee) {
			if fee.StudentID == studentID {
				out = append(out, *fee)
			}
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
