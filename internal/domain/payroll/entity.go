package payroll

import "github.com/shopspring/decimal"

// Line is one employee's payroll result for a period. Monetary values are
// rounded to 2 decimal places when the line is built, which is the
// external exposure point; everything upstream computes unrounded.
type Line struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	Department         string          `json:"department"`
	PeriodMonth        int             `json:"period_month"`
	PeriodYear         int             `json:"period_year"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	AdjustedGross      decimal.Decimal `json:"adjusted_gross"`
	TotalWorkingDays   int             `json:"total_working_days"`
	TotalDaysInMonth   int             `json:"total_days_in_month"`
	DeductionDays      int             `json:"deduction_days"`
	DeductionAmount    decimal.Decimal `json:"deduction_amount"`
	EmployeePension    decimal.Decimal `json:"employee_pension"`
	EmployerPension    decimal.Decimal `json:"employer_pension"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	NetSalary          decimal.Decimal `json:"net_salary"`
}

// Summary sums a batch run, rounded the same way as the lines.
type Summary struct {
	Employees               int             `json:"employees"`
	TotalGross              decimal.Decimal `json:"total_gross"`
	TotalIncomeTax          decimal.Decimal `json:"total_income_tax"`
	TotalEmployeePension    decimal.Decimal `json:"total_employee_pension"`
	TotalEmployerPension    decimal.Decimal `json:"total_employer_pension"`
	TotalTransportAllowance decimal.Decimal `json:"total_transport_allowance"`
	TotalNet                decimal.Decimal `json:"total_net"`
}
