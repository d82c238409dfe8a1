package attendance

import "time"

// Event is one raw check-in/check-out record. One event exists per
// employee per calendar day; check-in creates it, check-out updates it.
type Event struct {
	ID                string
	EmployeeID        string
	Date              time.Time // day identity, UTC midnight
	CheckIn           *time.Time
	CheckOut          *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DayStatus is the canonical classification of an employee-day. Exactly
// one applies per day.
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusPartial DayStatus = "partial"
	StatusAbsent  DayStatus = "absent"
	StatusOnLeave DayStatus = "on_leave"
	StatusHoliday DayStatus = "holiday"
	StatusWeekend DayStatus = "weekend"
)

// LeaveInfo links an on_leave day back to the approved request covering it.
type LeaveInfo struct {
	LeaveID   string `json:"leave_id"`
	LeaveType string `json:"leave_type"`
}

// ReconciledDay is the reconciler's per-day output. Derived on every
// query, never persisted.
type ReconciledDay struct {
	EmployeeID     string     `json:"employee_id"`
	Date           string     `json:"date"`
	Status         DayStatus  `json:"status"`
	WorkingHours   float64    `json:"working_hours"`
	DeductionUnits float64    `json:"payroll_deduction_units"`
	LeaveInfo      *LeaveInfo `json:"leave_info,omitempty"`
}

// EmployeeStats aggregates one employee's reconciled days.
type EmployeeStats struct {
	EmployeeID   string            `json:"employee_id"`
	FullName     string            `json:"full_name"`
	Department   string            `json:"department"`
	WorkingHours float64           `json:"working_hours"`
	StatusCounts map[DayStatus]int `json:"status_counts"`
}

// TrendPoint is one date in the reconciliation trend series.
type TrendPoint struct {
	Date         string  `json:"date"`
	Present      int     `json:"present"`
	Partial      int     `json:"partial"`
	Absent       int     `json:"absent"`
	OnLeave      int     `json:"on_leave"`
	WorkingHours float64 `json:"working_hours"`
}

// Statistics is a single-pass reduction over the reconciled records.
type Statistics struct {
	TotalWorkingHours   float64                      `json:"total_working_hours"`
	AverageWorkingHours float64                      `json:"average_working_hours"`
	StatusCounts        map[DayStatus]int            `json:"status_counts"`
	ByDepartment        map[string]map[DayStatus]int `json:"by_department"`
	ByEmployee          []EmployeeStats              `json:"by_employee"`
	Trend               []TrendPoint                 `json:"trend"`
}
