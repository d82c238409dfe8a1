package payroll

import "context"

// Service runs payroll computation for a period.
type Service interface {
	// Run computes payroll for every active employee (optionally filtered
	// to an explicit id list) for the given month. Per-employee failures
	// are isolated; one bad record never aborts the run.
	Run(ctx context.Context, req RunRequest) (RunResponse, error)

	// Estimate is the explicitly-named unadjusted variant: tax and
	// pension on the raw gross, no attendance or leave consulted.
	Estimate(ctx context.Context, req EstimateRequest) (EstimateResponse, error)
}
