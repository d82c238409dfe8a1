package geofence

import "context"

// Validator decides whether a live reading falls inside any of an
// employee's authorized work sites. Pure and stateless per call.
type Validator interface {
	Validate(reading Reading, sites []WorkSite) Result
}

// SiteService manages employer work-site configuration.
type SiteService interface {
	Create(ctx context.Context, req CreateWorkSiteRequest) (WorkSiteResponse, error)
	List(ctx context.Context) ([]WorkSiteResponse, error)
	AssignEmployee(ctx context.Context, siteID, employeeID string) error
	Delete(ctx context.Context, id string) error
}
