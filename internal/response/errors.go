package response

import (
	"errors"

	"github.com/stemsi/studentbook/internal/service"
)

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation    ErrCode = "VALIDATION_ERROR"
	ErrInvalidNumber ErrCode = "INVALID_NUMBER"
	ErrGradeRange    ErrCode = "GRADE_OUT_OF_RANGE"
	ErrInvalidField  ErrCode = "INVALID_FIELD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"
	ErrSubjectNotFound ErrCode = "SUBJECT_NOT_FOUND"
	ErrStudentExists   ErrCode = "STUDENT_EXISTS"
	ErrSubjectExists   ErrCode = "SUBJECT_EXISTS"
	ErrAlreadyEnrolled ErrCode = "ALREADY_ENROLLED"

	// ─── Storage ───────────────────────────────────────────────────────
	ErrPersist ErrCode = "PERSIST_FAILED"

	// ─── Menu ──────────────────────────────────────────────────────────
	ErrInvalidChoice ErrCode = "INVALID_CHOICE"

	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Invalid input. Please check the value you entered."
	case ErrInvalidNumber:
		return "Invalid number. Please enter a whole number."
	case ErrGradeRange:
		return "Grade must be between 0 and 100."
	case ErrInvalidField:
		return "IDs and text cannot contain '|', line breaks or surrounding spaces, and IDs cannot be empty or start with '#'."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrStudentNotFound:
		return "Student not found."
	case ErrSubjectNotFound:
		return "Subject not found."
	case ErrStudentExists:
		return "A student with this ID already exists."
	case ErrSubjectExists:
		return "A subject with this ID already exists."
	case ErrAlreadyEnrolled:
		return "Student is already enrolled in this subject."

	// ─── Storage ───────────────────────────────────────────────────────
	case ErrPersist:
		return "Change applied, but the data files could not be saved."

	// ─── Menu ──────────────────────────────────────────────────────────
	case ErrInvalidChoice:
		return "Invalid choice. Please enter a number between 1 and 9."

	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}

// FromError maps a service error onto its code.
func FromError(err error) ErrCode {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return ErrStudentNotFound
	case errors.Is(err, service.ErrSubjectNotFound):
		return ErrSubjectNotFound
	case errors.Is(err, service.ErrStudentExists):
		return ErrStudentExists
	case errors.Is(err, service.ErrSubjectExists):
		return ErrSubjectExists
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return ErrAlreadyEnrolled
	case errors.Is(err, service.ErrGradeOutOfRange):
		return ErrGradeRange
	case errors.Is(err, service.ErrInvalidField):
		return ErrInvalidField
	case errors.Is(err, service.ErrPersist):
		return ErrPersist
	default:
		return ErrInternal
	}
}

// Message is GetMessage(FromError(err)).
func Message(err error) string {
	return GetMessage(FromError(err))
}
