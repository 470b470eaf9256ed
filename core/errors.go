package core

import "errors"

// Kind groups engine errors into the four classes the API layer maps to
// HTTP codes. Every error the engine returns is one of these; none are
// fatal to the process.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidState
	KindCapacityExceeded
	KindConstraintViolation
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	ErrUnknownStudent     = &Error{KindNotFound, "student not found"}
	ErrUnknownCourse      = &Error{KindNotFound, "course not found"}
	ErrUnknownRoom        = &Error{KindNotFound, "room not found"}
	ErrUnknownHostel      = &Error{KindNotFound, "hostel not found"}
	ErrFeeNotFound        = &Error{KindNotFound, "fee record not found"}
	ErrAllocationNotFound = &Error{KindNotFound, "allocation not found"}
	ErrAdmissionNotFound  = &Error{KindNotFound, "admission application not found"}

	ErrAlreadyPaid       = &Error{KindInvalidState, "fee has already been paid"}
	ErrFeeNotPaid        = &Error{KindInvalidState, "fee has not been paid yet"}
	ErrAlreadyVacated    = &Error{KindInvalidState, "allocation has already been vacated"}
	ErrInvalidTransition = &Error{KindInvalidState, "status transition not allowed"}
	ErrRoomInactive      = &Error{KindInvalidState, "room is not active"}

	ErrRoomFull = &Error{KindCapacityExceeded, "room is at full capacity"}

	ErrStudentAlreadyAllocated = &Error{KindConstraintViolation, "student already holds an active allocation"}
	ErrInvalidAmount           = &Error{KindConstraintViolation, "amount must be positive and within the configured cap"}
	ErrInvalidPaymentMethod    = &Error{KindConstraintViolation, "unsupported payment method"}
	ErrInvalidFeeType          = &Error{KindConstraintViolation, "unsupported fee type"}
	ErrDuplicateRollNumber     = &Error{KindConstraintViolation, "a student with this roll number already exists"}
)

// KindOf extracts the Kind from any error produced by the engine,
// returning KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
