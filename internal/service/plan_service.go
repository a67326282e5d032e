package service

import (
	"context"
	"fmt"

	"github.com/be3health/patient-registry/internal/domain/plan"
	"github.com/be3health/patient-registry/internal/dto"
	"github.com/be3health/patient-registry/internal/mapper"
)

// PlanService exposes the insurance-plan reference data. Read-only:
// plans are maintained outside this API.
type PlanService struct {
	repo plan.Repository
}

func NewPlanService(repo plan.Repository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) ListActive(ctx context.Context) ([]*dto.PlanOutput, error) {
	plans, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active plans: %w", err)
	}
	return mapper.ToPlanOutputs(plans), nil
}
