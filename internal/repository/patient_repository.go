package repository

import (
	"context"
	"errors"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

var _ patient.Repository = (*PatientRepository)(nil)

func (r *PatientRepository) ListAll(ctx context.Context) ([]*patient.Patient, error) {
	var patients []*patient.Patient
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Order("first_name, last_name").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	var p patient.Patient
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, patient.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) GetByCPF(ctx context.Context, cpf string) (*patient.Patient, error) {
	var p patient.Patient
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("cpf = ? AND active", cpf).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, patient.ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepository) ExistsByCPF(ctx context.Context, cpf string, excludeID *int64) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&patient.Patient{}).
		Where("cpf = ? AND active", cpf)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PatientRepository) Insert(ctx context.Context, p *patient.Patient) error {
	err := r.db.WithContext(ctx).Omit("Plan").Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return patient.ErrCPFTaken
	}
	return err
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	// Select lists the mutable columns explicitly: the active flag only
	// changes through SetActive, and zeroed optional fields must still
	// be written out.
	err := r.db.WithContext(ctx).
		Model(p).
		Select(
			"first_name", "last_name", "birth_date", "gender",
			"cpf", "rg", "rg_state", "email",
			"mobile_phone", "landline_phone",
			"plan_id", "card_number", "card_expiry",
		).
		Updates(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return patient.ErrCPFTaken
	}
	return err
}

func (r *PatientRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&patient.Patient{}).
		Where("id = ?", id).
		Update("active", active).Error
}
