package plan

import "context"

type Repository interface {
	// ListActive returns active plans ordered by name.
	ListActive(ctx context.Context) ([]*Plan, error)

	// GetByID returns ErrPlanNotFound if no such id exists.
	GetByID(ctx context.Context, id int64) (*Plan, error)
}
