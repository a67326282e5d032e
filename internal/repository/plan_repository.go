package repository

import (
	"context"
	"errors"

	"github.com/be3health/patient-registry/internal/domain/plan"
	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

var _ plan.Repository = (*PlanRepository)(nil)

func (r *PlanRepository) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	var plans []*plan.Plan
	err := r.db.WithContext(ctx).
		Where("active").
		Order("name").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id int64) (*plan.Plan, error) {
	var pl plan.Plan
	err := r.db.WithContext(ctx).First(&pl, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, plan.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pl, nil
}
