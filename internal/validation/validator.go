package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/be3health/patient-registry/internal/dto"
)

// PatientValidator runs the field rules plus the store-backed
// uniqueness and existence checks. Field failures accumulate into the
// Result and never surface as errors; only store I/O failures do.
type PatientValidator struct {
	patients patient.Repository
	plans    plan.Repository
}

func NewPatientValidator(patients patient.Repository, plans plan.Repository) *PatientValidator {
	return &PatientValidator{patients: patients, plans: plans}
}

func (v *PatientValidator) ValidateCreate(ctx context.Context, in *dto.PatientInput) (*Result, error) {
	return v.validate(ctx, in, nil)
}

// ValidateUpdate excludes the record's own id from the CPF uniqueness
// check so an unchanged CPF does not collide with itself.
func (v *PatientValidator) ValidateUpdate(ctx context.Context, id int64, in *dto.PatientInput) (*Result, error) {
	return v.validate(ctx, in, &id)
}

func (v *PatientValidator) validate(ctx context.Context, in *dto.PatientInput, excludeID *int64) (*Result, error) {
	res := &Result{}

	checkRequired(in, res)
	checkEmail(in.Email, res)
	checkPhones(in.MobilePhone, in.LandlinePhone, res)
	checkBirthDate(in.BirthDate, res)
	checkUF(in.StateCode, res)
	checkCardExpiry(in.CardExpiry, res)

	if strings.TrimSpace(in.CPF) != "" {
		if checkCPF(in.CPF, res) {
			exists, err := v.patients.ExistsByCPF(ctx, DigitsOnly(in.CPF), excludeID)
			if err != nil {
				return nil, fmt.Errorf("checking CPF uniqueness: %w", err)
			}
			if exists {
				res.Add("CPF", "CPF já cadastrado no sistema.")
			}
		}
	}

	if in.PlanID != nil {
		_, err := v.plans.GetByID(ctx, *in.PlanID)
		if errors.Is(err, plan.ErrPlanNotFound) {
			res.Add("ConvenioId", "Convênio não encontrado.")
		} else if err != nil {
			return nil, fmt.Errorf("looking up plan %d: %w", *in.PlanID, err)
		}
	}

	return res, nil
}
