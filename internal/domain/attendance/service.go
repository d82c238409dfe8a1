package attendance

import "context"

// Service is the attendance surface: geofence-gated intake plus the
// reconciler.
type Service interface {
	// CheckIn records a geofence-validated check-in for the employee's
	// current day.
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (EventResponse, error)

	// CheckOut completes the employee's open event for the current day.
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (EventResponse, error)

	// ValidateLocation runs the geofence check without recording anything.
	ValidateLocation(ctx context.Context, req ValidateLocationRequest) (LocationCheckResponse, error)

	// Reconcile merges events, approved leave and the holiday/working-day
	// model into one canonical status per employee-day, plus aggregate
	// statistics.
	Reconcile(ctx context.Context, req ReconcileRequest) (ReconcileResponse, error)
}
