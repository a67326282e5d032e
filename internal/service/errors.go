package service

import (
	"errors"
	"fmt"

	"github.com/be3health/patient-registry/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
)

// ValidationError carries the full ordered field-error list from a
// failed validation. The handler layer turns it into a 400 with the
// structured list; nothing in between inspects it.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

// NotFoundError carries the user-facing message for a missing record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func patientNotFound(id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Paciente com ID %d não encontrado.", id)}
}
