package leave

import (
	"context"
	"time"
)

// Repository defines data access for leave requests.
type Repository interface {
	Create(ctx context.Context, request Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	// FindOverlapping returns requests in the given statuses whose
	// inclusive date range overlaps [start, end]. A nil employeeID matches
	// every employee.
	FindOverlapping(ctx context.Context, employeeID *string, start, end time.Time, statuses []Status) ([]Request, error)

	List(ctx context.Context, employeeID *string) ([]Request, error)

	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (Request, error)
}
