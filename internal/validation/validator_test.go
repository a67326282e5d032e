package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/testutil"
)

func validInput() *dto.PatientInput {
	return &dto.PatientInput{
		FirstName:   "João",
		LastName:    "Silva",
		BirthDate:   "1990-05-20",
		Gender:      1,
		CPF:         "111.444.777-35",
		RG:          "1234567",
		StateCode:   25,
		Email:       "joao.silva@email.com",
		MobilePhone: "(11) 99999-9999",
	}
}

func newValidator(patients *testutil.FakePatientRepo, plans *testutil.FakePlanRepo) *PatientValidator {
	if plans == nil {
		plans = testutil.NewFakePlanRepo()
	}
	if patients == nil {
		patients = testutil.NewFakePatientRepo(plans)
	}
	return NewPatientValidator(patients, plans)
}

func TestValidateCreateValidInput(t *testing.T) {
	v := newValidator(nil, nil)

	res, err := v.ValidateCreate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("expected no field errors, got %v", res.Errors())
	}
}

func TestValidateCreateMissingFields(t *testing.T) {
	v := newValidator(nil, nil)

	res, err := v.ValidateCreate(context.Background(), &dto.PatientInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"Nome":           "Nome é obrigatório.",
		"Sobrenome":      "Sobrenome é obrigatório.",
		"RG":             "RG é obrigatório.",
		"Email":          "Email é obrigatório.",
		"Telefone":       "Pelo menos um telefone (Celular ou Fixo) deve ser informado.",
		"DataNascimento": "Data de nascimento inválida.",
		"UfRG":           "UF do RG inválida.",
	}
	for field, msg := range want {
		found := false
		for _, fe := range res.Errors() {
			if fe.Field == field && fe.Message == msg {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing error %q / %q in %v", field, msg, res.Errors())
		}
	}
}

func TestValidateCreateCPFAlreadyRegistered(t *testing.T) {
	patients := testutil.NewFakePatientRepo(nil)
	if err := patients.Insert(context.Background(), &patient.Patient{
		FirstName: "Maria", LastName: "Souza", CPF: "11144477735", Active: true,
	}); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	v := newValidator(patients, nil)

	res, err := v.ValidateCreate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Has("CPF") {
		t.Fatalf("expected CPF error, got %v", res.Errors())
	}
	found := false
	for _, fe := range res.Errors() {
		if fe.Field == "CPF" && fe.Message == "CPF já cadastrado no sistema." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate-CPF message, got %v", res.Errors())
	}
}

func TestValidateUpdateExcludesOwnCPF(t *testing.T) {
	patients := testutil.NewFakePatientRepo(nil)
	existing := &patient.Patient{
		FirstName: "João", LastName: "Silva", CPF: "11144477735", Active: true,
	}
	if err := patients.Insert(context.Background(), existing); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	v := newValidator(patients, nil)

	res, err := v.ValidateUpdate(context.Background(), existing.ID, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("own CPF should not collide with itself, got %v", res.Errors())
	}
}

func TestValidateSkipsUniquenessOnMalformedCPF(t *testing.T) {
	patients := testutil.NewFakePatientRepo(nil)
	v := newValidator(patients, nil)

	in := validInput()
	in.CPF = "12345678901"

	res, err := v.ValidateCreate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Has("CPF") {
		t.Fatalf("expected CPF error, got %v", res.Errors())
	}
	if patients.ExistsByCPFCalls != 0 {
		t.Fatalf("uniqueness lookup ran %d times on a malformed CPF", patients.ExistsByCPFCalls)
	}
}

func TestValidateSkipsUniquenessOnBlankCPF(t *testing.T) {
	patients := testutil.NewFakePatientRepo(nil)
	v := newValidator(patients, nil)

	in := validInput()
	in.CPF = ""

	res, err := v.ValidateCreate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("blank CPF should be accepted, got %v", res.Errors())
	}
	if patients.ExistsByCPFCalls != 0 {
		t.Fatalf("uniqueness lookup ran %d times on a blank CPF", patients.ExistsByCPFCalls)
	}
}

func TestValidatePlanNotFound(t *testing.T) {
	plans := testutil.NewFakePlanRepo(plan.Plan{ID: 1, Name: "Unimed", Active: true})
	v := newValidator(nil, plans)

	in := validInput()
	missing := int64(99)
	in.PlanID = &missing

	res, err := v.ValidateCreate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, fe := range res.Errors() {
		if fe.Field == "ConvenioId" && fe.Message == "Convênio não encontrado." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ConvenioId error, got %v", res.Errors())
	}
}

func TestValidatePlanFound(t *testing.T) {
	plans := testutil.NewFakePlanRepo(plan.Plan{ID: 1, Name: "Unimed", Active: true})
	v := newValidator(nil, plans)

	in := validInput()
	id := int64(1)
	in.PlanID = &id

	res, err := v.ValidateCreate(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid() {
		t.Fatalf("expected no field errors, got %v", res.Errors())
	}
}

func TestValidateStoreErrorSurfaces(t *testing.T) {
	boom := errors.New("connection refused")
	patients := testutil.NewFakePatientRepo(nil)
	patients.Err = boom
	v := newValidator(patients, nil)

	_, err := v.ValidateCreate(context.Background(), validInput())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
