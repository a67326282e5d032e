// Package testutil provides in-memory stand-ins for the store
// interfaces so service and handler tests run without a database.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/be3health/patient-registry/internal/domain"
	"github.com/be3health/patient-registry/internal/domain/patient"
	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/google/uuid"
)

type FakePlanRepo struct {
	mu    sync.Mutex
	Plans map[int64]plan.Plan

	// Err, when set, fails every call.
	Err error
}

func NewFakePlanRepo(plans ...plan.Plan) *FakePlanRepo {
	r := &FakePlanRepo{Plans: make(map[int64]plan.Plan)}
	for _, pl := range plans {
		r.Plans[pl.ID] = pl
	}
	return r
}

func (r *FakePlanRepo) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []*plan.Plan
	for _, pl := range r.Plans {
		if pl.Active {
			cp := pl
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FakePlanRepo) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	pl, ok := r.Plans[id]
	if !ok {
		return nil, plan.ErrPlanNotFound
	}
	cp := pl
	return &cp, nil
}

type FakePatientRepo struct {
	mu       sync.Mutex
	nextID   int64
	Patients map[int64]patient.Patient

	// PlanRepo, when set, resolves the Plan association on reads the
	// way the real repository's eager load does.
	PlanRepo *FakePlanRepo

	// ExistsByCPFCalls counts uniqueness lookups, so tests can assert
	// the validator was (or was not) reached.
	ExistsByCPFCalls int

	// Err, when set, fails every call.
	Err error
}

func NewFakePatientRepo(planRepo *FakePlanRepo) *FakePatientRepo {
	return &FakePatientRepo{
		Patients: make(map[int64]patient.Patient),
		PlanRepo: planRepo,
	}
}

func (r *FakePatientRepo) resolve(p patient.Patient) *patient.Patient {
	p.Plan = nil
	if p.PlanID != nil && r.PlanRepo != nil {
		if pl, ok := r.PlanRepo.Plans[*p.PlanID]; ok {
			cp := pl
			p.Plan = &cp
		}
	}
	return &p
}

func (r *FakePatientRepo) ListAll(ctx context.Context) ([]*patient.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	var out []*patient.Patient
	for _, p := range r.Patients {
		out = append(out, r.resolve(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].LastName < out[j].LastName
	})
	return out, nil
}

func (r *FakePatientRepo) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	p, ok := r.Patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	return r.resolve(p), nil
}

func (r *FakePatientRepo) GetByCPF(ctx context.Context, cpf string) (*patient.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for _, p := range r.Patients {
		if p.Active && p.CPF == cpf {
			return r.resolve(p), nil
		}
	}
	return nil, patient.ErrPatientNotFound
}

func (r *FakePatientRepo) ExistsByCPF(ctx context.Context, cpf string, excludeID *int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ExistsByCPFCalls++
	if r.Err != nil {
		return false, r.Err
	}

	for id, p := range r.Patients {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if p.Active && p.CPF != "" && p.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakePatientRepo) Insert(ctx context.Context, p *patient.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	// Mirrors the partial unique index on active CPFs.
	if p.CPF != "" && p.Active {
		for _, existing := range r.Patients {
			if existing.Active && existing.CPF == p.CPF {
				return patient.ErrCPFTaken
			}
		}
	}

	r.nextID++
	p.ID = r.nextID
	r.Patients[p.ID] = *p
	return nil
}

func (r *FakePatientRepo) Update(ctx context.Context, p *patient.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	existing, ok := r.Patients[p.ID]
	if !ok {
		return patient.ErrPatientNotFound
	}

	cp := *p
	cp.Active = existing.Active // active only changes through SetActive
	cp.Plan = nil
	r.Patients[p.ID] = cp
	return nil
}

func (r *FakePatientRepo) SetActive(ctx context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	p, ok := r.Patients[id]
	if !ok {
		return patient.ErrPatientNotFound
	}
	p.Active = active
	r.Patients[id] = p
	return nil
}

var ErrUserNotFound = errors.New("user not found")

type FakeUserRepo struct {
	mu    sync.Mutex
	Users map[string]domain.User // keyed by email
}

func NewFakeUserRepo(users ...domain.User) *FakeUserRepo {
	r := &FakeUserRepo{Users: make(map[string]domain.User)}
	for _, u := range users {
		r.Users[u.Email] = u
	}
	return r
}

func (r *FakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := u
	return &cp, nil
}

func (r *FakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *FakeUserRepo) RecordLogin(ctx context.Context, id uuid.UUID) error {
	return nil
}

type FakeAuditRepo struct {
	mu      sync.Mutex
	Entries []*domain.AuditLog
}

func (r *FakeAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, entry)
	return nil
}

func (r *FakeAuditRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Entries)
}
