package models

import (
	"time"

	"github.com/google/uuid"
)

type FeeType string

const (
	FeeTuition       FeeType = "tuition"
	FeeHostel        FeeType = "hostel"
	FeeLibrary       FeeType = "library"
	FeeLaboratory    FeeType = "laboratory"
	FeeExamination   FeeType = "examination"
	FeeDevelopment   FeeType = "development"
	FeeMiscellaneous FeeType = "miscellaneous"
)

func (t FeeType) Valid() bool {
	switch t {
	case FeeTuition, FeeHostel, FeeLibrary, FeeLaboratory, FeeExamination, FeeDevelopment, FeeMiscellaneous:
		return true
	}
	return false
}

type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
	FeePartial FeeStatus = "partial"
)

type PaymentMethod string

const (
	PayCash         PaymentMethod = "cash"
	PayCard         PaymentMethod = "card"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayUPI          PaymentMethod = "upi"
	PayCheck        PaymentMethod = "check"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayBankTransfer, PayUPI, PayCheck:
		return true
	}
	return false
}

// PaymentRecord carries the fields that only exist once a fee is fully
// paid. Bundling them keeps a half-set paid state unrepresentable: a fee
// either has no record, or a complete one.
type PaymentRecord struct {
	PaidDate      time.Time     `json:"paid_date"`
	ReceiptNumber string        `json:"receipt_number"`
	Method        PaymentMethod `json:"payment_method"`
}

// Fee is one scheduled obligation for one student. Amount is the original
// principal and never changes; PaidAmount accumulates across partial
// payments. A paid fee is never edited again, corrections get a new Fee.
type Fee struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"student_id"`
	Type         FeeType   `json:"type"`
	Amount       float64   `json:"amount"`
	PaidAmount   float64   `json:"paid_amount"`
	LateFee      float64   `json:"late_fee,omitempty"`
	DueDate      time.Time `json:"due_date"`
	Status       FeeStatus `json:"status"`
	Semester     int       `json:"semester"`
	AcademicYear string    `json:"academic_year"`

	Payment *PaymentRecord `json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalDue is principal plus any accrued late fee, minus what has
// already been applied.
func (f *Fee) TotalDue() float64 {
	return f.Amount + f.LateFee - f.PaidAmount
}
