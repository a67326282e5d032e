package patient

import "context"

type Repository interface {
	// ListAll returns every patient with its plan resolved, ordered by name.
	ListAll(ctx context.Context) ([]*Patient, error)

	// GetByID retrieves a patient with its plan resolved.
	// Returns ErrPatientNotFound if no such id exists.
	GetByID(ctx context.Context, id int64) (*Patient, error)

	// GetByCPF retrieves the active patient holding the given normalized CPF.
	// Returns ErrPatientNotFound if none exists.
	GetByCPF(ctx context.Context, cpf string) (*Patient, error)

	// ExistsByCPF reports whether an active patient other than excludeID
	// holds the given normalized CPF. excludeID nil means no exclusion.
	ExistsByCPF(ctx context.Context, cpf string, excludeID *int64) (bool, error)

	// Insert persists a new patient and fills in the store-assigned id.
	// Returns ErrCPFTaken if the unique CPF constraint is violated.
	Insert(ctx context.Context, p *Patient) error

	// Update persists field changes to an existing patient. The active
	// flag is never touched here; use SetActive.
	Update(ctx context.Context, p *Patient) error

	// SetActive flips the soft-delete flag.
	SetActive(ctx context.Context, id int64, active bool) error
}
