package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/mapper"
	"github.com/be3health/patient-registry/internal/validation"
	"github.com/be3health/patient-registry/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor identifies who is performing an operation, for audit purposes.
type Actor struct {
	UserID    uuid.UUID
	IP        string
	RequestID string
}

type PatientService struct {
	repo      patient.Repository
	validator *validation.PatientValidator
	auditSvc  *AuditService
	collector *metrics.Collector
	log       *zap.Logger
}

func NewPatientService(
	repo patient.Repository,
	validator *validation.PatientValidator,
	auditSvc *AuditService,
	collector *metrics.Collector,
	log *zap.Logger,
) *PatientService {
	return &PatientService{
		repo:      repo,
		validator: validator,
		auditSvc:  auditSvc,
		collector: collector,
		log:       log,
	}
}

// List returns all patients with their plan resolved.
func (s *PatientService) List(ctx context.Context) ([]*dto.PatientOutput, error) {
	patients, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing patients: %w", err)
	}
	return mapper.ToPatientOutputs(patients), nil
}

// Get returns the patient with its plan resolved, or nil (no error)
// when the id does not exist.
func (s *PatientService) Get(ctx context.Context, id int64) (*dto.PatientOutput, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, patient.ErrPatientNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching patient %d: %w", id, err)
	}
	return mapper.ToPatientOutput(p), nil
}

func (s *PatientService) Create(ctx context.Context, in *dto.PatientInput, actor Actor) (*dto.PatientOutput, error) {
	res, err := s.validator.ValidateCreate(ctx, in)
	if err != nil {
		s.log.Error("patient validation failed on store lookup", zap.Error(err))
		return nil, fmt.Errorf("validating patient: %w", err)
	}
	if !res.Valid() {
		s.collector.ValidationFailuresTotal.Inc()
		return nil, &ValidationError{Errors: res.Errors()}
	}

	p, err := mapper.ToEntity(in)
	if err != nil {
		return nil, fmt.Errorf("mapping patient: %w", err)
	}

	if err := s.repo.Insert(ctx, p); err != nil {
		// The partial unique index on cpf is the real uniqueness
		// guarantee; a concurrent create can slip past the validator's
		// read but not past the constraint.
		if errors.Is(err, patient.ErrCPFTaken) {
			s.collector.ValidationFailuresTotal.Inc()
			return nil, &ValidationError{Errors: []validation.FieldError{
				{Field: "CPF", Message: "CPF já cadastrado no sistema."},
			}}
		}
		s.log.Error("failed to insert patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	created, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching created patient %d: %w", p.ID, err)
	}

	s.collector.PatientsCreatedTotal.Inc()
	s.audit(actor, "create", created.ID)
	s.log.Info("patient created",
		zap.Int64("patient_id", created.ID),
		zap.String("created_by", actor.UserID.String()),
	)

	return mapper.ToPatientOutput(created), nil
}

func (s *PatientService) Update(ctx context.Context, id int64, in *dto.PatientInput, actor Actor) (*dto.PatientOutput, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, patient.ErrPatientNotFound) {
		return nil, patientNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching patient %d: %w", id, err)
	}

	res, err := s.validator.ValidateUpdate(ctx, id, in)
	if err != nil {
		s.log.Error("patient validation failed on store lookup", zap.Error(err))
		return nil, fmt.Errorf("validating patient: %w", err)
	}
	if !res.Valid() {
		s.collector.ValidationFailuresTotal.Inc()
		return nil, &ValidationError{Errors: res.Errors()}
	}

	if err := mapper.ApplyUpdate(existing, in); err != nil {
		return nil, fmt.Errorf("mapping patient: %w", err)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, patient.ErrCPFTaken) {
			s.collector.ValidationFailuresTotal.Inc()
			return nil, &ValidationError{Errors: []validation.FieldError{
				{Field: "CPF", Message: "CPF já cadastrado no sistema."},
			}}
		}
		s.log.Error("failed to update patient", zap.Int64("patient_id", id), zap.Error(err))
		return nil, fmt.Errorf("updating patient %d: %w", id, err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching updated patient %d: %w", id, err)
	}

	s.audit(actor, "update", id)
	return mapper.ToPatientOutput(updated), nil
}

// Deactivate soft-deletes: the record stays in the store with
// active=false and can be reactivated at any time.
func (s *PatientService) Deactivate(ctx context.Context, id int64, actor Actor) error {
	return s.setActive(ctx, id, false, "deactivate", actor)
}

func (s *PatientService) Activate(ctx context.Context, id int64, actor Actor) error {
	return s.setActive(ctx, id, true, "activate", actor)
}

func (s *PatientService) setActive(ctx context.Context, id int64, active bool, action string, actor Actor) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, patient.ErrPatientNotFound) {
		return patientNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("fetching patient %d: %w", id, err)
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		s.log.Error("failed to set patient active flag",
			zap.Int64("patient_id", id),
			zap.Bool("active", active),
			zap.Error(err),
		)
		return fmt.Errorf("setting active flag for patient %d: %w", id, err)
	}

	s.audit(actor, action, id)
	return nil
}

func (s *PatientService) audit(actor Actor, action string, patientID int64) {
	s.auditSvc.LogAsync(AuditEntry{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: "patient",
		ResourceID:   fmt.Sprintf("%d", patientID),
		IPAddress:    actor.IP,
		RequestID:    actor.RequestID,
	})
}
