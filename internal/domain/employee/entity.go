package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// Employee is the canonical employee shape. The repository normalizes the
// stored record into this form at the data-access boundary so the
// reconciler and payroll engine never see partially-shaped profiles.
type Employee struct {
	ID                 string
	FullName           string
	Department         string
	GrossSalary        decimal.Decimal
	TransportAllowance decimal.Decimal
	EmploymentStatus   EmploymentStatus
	HireDate           time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Filter narrows employee lookups. Zero value matches everyone.
type Filter struct {
	IDs        []string
	Department *string
	ActiveOnly bool
}
