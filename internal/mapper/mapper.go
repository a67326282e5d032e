// Package mapper converts between persistence entities and transfer
// shapes. Conversions are written out field by field on purpose: every
// coercion (enum codes, date formats, CPF normalization) is visible
// and reviewable here rather than hidden in reflection.
package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/validation"
)

// ToEntity builds a new patient from a create input. The id stays
// unset (the store assigns it), the record starts active, and the plan
// association is left to be resolved on the post-insert fetch.
func ToEntity(in *dto.PatientInput) (*patient.Patient, error) {
	birth, err := time.Parse(dto.DateLayout, strings.TrimSpace(in.BirthDate))
	if err != nil {
		return nil, fmt.Errorf("parsing birth date %q: %w", in.BirthDate, err)
	}

	expiry, err := parseOptionalDate(in.CardExpiry)
	if err != nil {
		return nil, fmt.Errorf("parsing card expiry %q: %w", in.CardExpiry, err)
	}

	return &patient.Patient{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		BirthDate:     birth,
		Gender:        patient.Gender(in.Gender),
		CPF:           validation.DigitsOnly(in.CPF),
		RG:            strings.TrimSpace(in.RG),
		RGState:       patient.UF(in.StateCode),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		MobilePhone:   strings.TrimSpace(in.MobilePhone),
		LandlinePhone: strings.TrimSpace(in.LandlinePhone),
		PlanID:        in.PlanID,
		CardNumber:    strings.TrimSpace(in.CardNumber),
		CardExpiry:    expiry,
		Active:        true,
	}, nil
}

// ApplyUpdate copies the input fields onto an existing record. The id
// and active flag are immutable through update; the loaded plan
// association is dropped so the next fetch re-resolves it from PlanID.
func ApplyUpdate(p *patient.Patient, in *dto.PatientInput) error {
	birth, err := time.Parse(dto.DateLayout, strings.TrimSpace(in.BirthDate))
	if err != nil {
		return fmt.Errorf("parsing birth date %q: %w", in.BirthDate, err)
	}

	expiry, err := parseOptionalDate(in.CardExpiry)
	if err != nil {
		return fmt.Errorf("parsing card expiry %q: %w", in.CardExpiry, err)
	}

	p.FirstName = strings.TrimSpace(in.FirstName)
	p.LastName = strings.TrimSpace(in.LastName)
	p.BirthDate = birth
	p.Gender = patient.Gender(in.Gender)
	p.CPF = validation.DigitsOnly(in.CPF)
	p.RG = strings.TrimSpace(in.RG)
	p.RGState = patient.UF(in.StateCode)
	p.Email = strings.ToLower(strings.TrimSpace(in.Email))
	p.MobilePhone = strings.TrimSpace(in.MobilePhone)
	p.LandlinePhone = strings.TrimSpace(in.LandlinePhone)
	p.PlanID = in.PlanID
	p.CardNumber = strings.TrimSpace(in.CardNumber)
	p.CardExpiry = expiry
	p.Plan = nil

	return nil
}

func ToPatientOutput(p *patient.Patient) *dto.PatientOutput {
	out := &dto.PatientOutput{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		BirthDate:     p.BirthDate.Format(dto.DateLayout),
		Gender:        int(p.Gender),
		CPF:           p.CPF,
		RG:            p.RG,
		StateCode:     int(p.RGState),
		Email:         p.Email,
		MobilePhone:   p.MobilePhone,
		LandlinePhone: p.LandlinePhone,
		PlanID:        p.PlanID,
		CardNumber:    p.CardNumber,
		Active:        p.Active,
	}

	if p.CardExpiry != nil {
		out.CardExpiry = p.CardExpiry.Format(dto.DateLayout)
	}
	if p.Plan != nil {
		out.Plan = ToPlanOutput(p.Plan)
	}

	return out
}

func ToPatientOutputs(patients []*patient.Patient) []*dto.PatientOutput {
	outs := make([]*dto.PatientOutput, 0, len(patients))
	for _, p := range patients {
		outs = append(outs, ToPatientOutput(p))
	}
	return outs
}

func ToPlanOutput(pl *plan.Plan) *dto.PlanOutput {
	return &dto.PlanOutput{ID: pl.ID, Name: pl.Name}
}

func ToPlanOutputs(plans []*plan.Plan) []*dto.PlanOutput {
	outs := make([]*dto.PlanOutput, 0, len(plans))
	for _, pl := range plans {
		outs = append(outs, ToPlanOutput(pl))
	}
	return outs
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
