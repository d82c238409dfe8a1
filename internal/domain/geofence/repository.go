package geofence

import "context"

// WorkSiteRepository defines data access for employer work-site
// configuration.
type WorkSiteRepository interface {
	Create(ctx context.Context, site WorkSite) (WorkSite, error)

	GetByID(ctx context.Context, id string) (WorkSite, error)

	List(ctx context.Context) ([]WorkSite, error)

	// ListByEmployee returns the sites assigned to an employee. An empty
	// slice is a valid answer and means the employee cannot check in
	// anywhere.
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkSite, error)

	AssignEmployee(ctx context.Context, siteID, employeeID string) error

	Delete(ctx context.Context, id string) error
}
