package payroll

import (
	"github.com/elia-nu/geo-sub002/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunRequest struct {
	Month       int      `json:"month"`
	Year        int      `json:"year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 1900 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1900 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EstimateRequest feeds the unadjusted quick-estimate variant, which
// applies tax and pension directly to the raw gross with no deduction-day
// scan. It is a distinct operation and never substitutes for a full run.
type EstimateRequest struct {
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must not be negative",
		})
	}
	if r.TransportAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "transport_allowance",
			Message: "transport_allowance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RunResponse struct {
	Lines   []Line  `json:"lines"`
	Summary Summary `json:"summary"`
}

type EstimateResponse struct {
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	EmployeePension    decimal.Decimal `json:"employee_pension"`
	EmployerPension    decimal.Decimal `json:"employer_pension"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	NetSalary          decimal.Decimal `json:"net_salary"`
}
