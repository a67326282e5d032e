package mapper

import (
	"testing"
	"time"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/be3health/patient-registry/internal/dto"
)

func sampleInput() *dto.PatientInput {
	return &dto.PatientInput{
		FirstName:   "  João ",
		LastName:    "Silva",
		BirthDate:   "1990-05-20",
		Gender:      1,
		CPF:         "111.444.777-35",
		RG:          "1234567",
		StateCode:   25,
		Email:       "Joao.Silva@Email.com ",
		MobilePhone: "(11) 99999-9999",
		CardNumber:  "9876543210",
		CardExpiry:  "2030-12-31",
	}
}

func TestToEntity(t *testing.T) {
	p, err := ToEntity(sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.ID != 0 {
		t.Errorf("id should stay unset, got %d", p.ID)
	}
	if !p.Active {
		t.Error("new patient should start active")
	}
	if p.FirstName != "João" {
		t.Errorf("first name not trimmed: %q", p.FirstName)
	}
	if p.CPF != "11144477735" {
		t.Errorf("CPF not normalized to digits: %q", p.CPF)
	}
	if p.Email != "joao.silva@email.com" {
		t.Errorf("email not lowercased/trimmed: %q", p.Email)
	}
	if p.Gender != patient.GenderMale {
		t.Errorf("gender = %v, want %v", p.Gender, patient.GenderMale)
	}
	if p.RGState != patient.UFSP {
		t.Errorf("rg state = %v, want %v", p.RGState, patient.UFSP)
	}
	if got := p.BirthDate.Format(dto.DateLayout); got != "1990-05-20" {
		t.Errorf("birth date = %q", got)
	}
	if p.CardExpiry == nil || p.CardExpiry.Format(dto.DateLayout) != "2030-12-31" {
		t.Errorf("card expiry = %v", p.CardExpiry)
	}
	if p.Plan != nil {
		t.Error("plan association should not be set at build time")
	}
}

func TestToEntityOptionalFieldsEmpty(t *testing.T) {
	in := sampleInput()
	in.CPF = ""
	in.CardExpiry = ""
	in.CardNumber = ""

	p, err := ToEntity(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CPF != "" {
		t.Errorf("CPF = %q, want empty", p.CPF)
	}
	if p.CardExpiry != nil {
		t.Errorf("card expiry = %v, want nil", p.CardExpiry)
	}
}

func TestToEntityBadBirthDate(t *testing.T) {
	in := sampleInput()
	in.BirthDate = "20/05/1990"

	if _, err := ToEntity(in); err == nil {
		t.Fatal("expected error for malformed birth date")
	}
}

func TestApplyUpdatePreservesIDAndActive(t *testing.T) {
	planID := int64(3)
	existing := &patient.Patient{
		ID:        42,
		FirstName: "Maria",
		Active:    false,
		PlanID:    &planID,
		Plan:      &plan.Plan{ID: 3, Name: "Amil"},
	}

	in := sampleInput()
	in.PlanID = nil
	if err := ApplyUpdate(existing, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if existing.ID != 42 {
		t.Errorf("id changed to %d", existing.ID)
	}
	if existing.Active {
		t.Error("active flag must not change through update")
	}
	if existing.FirstName != "João" {
		t.Errorf("first name = %q", existing.FirstName)
	}
	if existing.PlanID != nil {
		t.Errorf("plan id = %v, want nil", existing.PlanID)
	}
	if existing.Plan != nil {
		t.Error("stale plan association should be dropped")
	}
}

func TestToPatientOutput(t *testing.T) {
	planID := int64(7)
	expiry := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	p := &patient.Patient{
		ID:          5,
		FirstName:   "João",
		LastName:    "Silva",
		BirthDate:   time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderMale,
		CPF:         "11144477735",
		RG:          "1234567",
		RGState:     patient.UFSP,
		Email:       "joao.silva@email.com",
		MobilePhone: "11999999999",
		PlanID:      &planID,
		CardExpiry:  &expiry,
		Active:      true,
		Plan:        &plan.Plan{ID: 7, Name: "Unimed", Active: true},
	}

	out := ToPatientOutput(p)
	if out.ID != 5 || !out.Active {
		t.Errorf("id/active = %d/%v", out.ID, out.Active)
	}
	if out.BirthDate != "1990-05-20" {
		t.Errorf("birth date = %q", out.BirthDate)
	}
	if out.CardExpiry != "2030-12-31" {
		t.Errorf("card expiry = %q", out.CardExpiry)
	}
	if out.StateCode != 25 || out.Gender != 1 {
		t.Errorf("state/gender codes = %d/%d", out.StateCode, out.Gender)
	}
	if out.Plan == nil || out.Plan.ID != 7 || out.Plan.Name != "Unimed" {
		t.Errorf("plan = %+v", out.Plan)
	}
}

func TestToPatientOutputNoPlan(t *testing.T) {
	p := &patient.Patient{
		ID:        5,
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	out := ToPatientOutput(p)
	if out.Plan != nil {
		t.Errorf("plan = %+v, want nil", out.Plan)
	}
	if out.CardExpiry != "" {
		t.Errorf("card expiry = %q, want empty", out.CardExpiry)
	}
}

func TestToPlanOutputs(t *testing.T) {
	outs := ToPlanOutputs([]*plan.Plan{
		{ID: 1, Name: "Amil", Active: true},
		{ID: 2, Name: "Unimed", Active: true},
	})
	if len(outs) != 2 {
		t.Fatalf("got %d outputs", len(outs))
	}
	if outs[0].Name != "Amil" || outs[1].Name != "Unimed" {
		t.Errorf("outputs = %+v", outs)
	}
}
