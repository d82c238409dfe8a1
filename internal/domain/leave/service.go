package leave

import "context"

// Service covers the thin leave workflow the reconciler and payroll engine
// read from: create, list, decide.
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, employeeID *string) ([]LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
