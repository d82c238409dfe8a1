package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
	"github.com/elia-nu/geo-sub002/internal/domain/payroll"
	calendarsvc "github.com/elia-nu/geo-sub002/internal/service/calendar"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (r *stubEmployeeRepo) Find(_ context.Context, filter employee.Filter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if filter.ActiveOnly && e.EmploymentStatus != employee.EmploymentStatusActive {
			continue
		}
		if len(filter.IDs) > 0 {
			match := false
			for _, id := range filter.IDs {
				if id == e.ID {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubEventRepo struct {
	events []attendance.Event
}

func (r *stubEventRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	r.events = append(r.events, event)
	return event, nil
}

func (r *stubEventRepo) Update(_ context.Context, _ attendance.Event) error { return nil }

func (r *stubEventRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Event, error) {
	for i := range r.events {
		if r.events[i].EmployeeID == employeeID && r.events[i].Date.Equal(date) {
			return &r.events[i], nil
		}
	}
	return nil, nil
}

func (r *stubEventRepo) FindRange(_ context.Context, employeeID *string, start, end time.Time) ([]attendance.Event, error) {
	var out []attendance.Event
	for _, ev := range r.events {
		if employeeID != nil && ev.EmployeeID != *employeeID {
			continue
		}
		if ev.Date.Before(start) || ev.Date.After(end) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *stubEventRepo) FindOpenBefore(_ context.Context, _ time.Time) ([]attendance.Event, error) {
	return nil, nil
}

type stubLeaveRepo struct {
	requests []leave.Request
}

func (r *stubLeaveRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	r.requests = append(r.requests, request)
	return request, nil
}

func (r *stubLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	for _, lr := range r.requests {
		if lr.ID == id {
			return lr, nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (r *stubLeaveRepo) FindOverlapping(_ context.Context, employeeID *string, start, end time.Time, statuses []leave.Status) ([]leave.Request, error) {
	var out []leave.Request
	for _, lr := range r.requests {
		if employeeID != nil && lr.EmployeeID != *employeeID {
			continue
		}
		if lr.EndDate.Before(start) || lr.StartDate.After(end) {
			continue
		}
		for _, st := range statuses {
			if lr.Status == st {
				out = append(out, lr)
				break
			}
		}
	}
	return out, nil
}

func (r *stubLeaveRepo) List(_ context.Context, _ *string) ([]leave.Request, error) {
	return r.requests, nil
}

func (r *stubLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, decidedBy string) (leave.Request, error) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].DecidedBy = &decidedBy
			return r.requests[i], nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func testEmployee(id, name string, gross, transport int64) employee.Employee {
	return employee.Employee{
		ID:                 id,
		FullName:           name,
		Department:         "Engineering",
		GrossSalary:        decimal.NewFromInt(gross),
		TransportAllowance: decimal.NewFromInt(transport),
		EmploymentStatus:   employee.EmploymentStatusActive,
	}
}

func newTestService(emps []employee.Employee, events []attendance.Event, leaves []leave.Request) payroll.Service {
	return NewPayrollService(
		&stubEmployeeRepo{employees: emps},
		&stubEventRepo{events: events},
		&stubLeaveRepo{requests: leaves},
		calendarsvc.NewCalendarService(),
	)
}

func TestPayrollService_Run_WorkedExample(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 5000, 800),
	}, nil, nil)

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.Equal(t, "emp-1", line.EmployeeID)
	assert.Equal(t, 6, line.PeriodMonth)
	assert.Equal(t, 2025, line.PeriodYear)
	assert.Equal(t, 30, line.TotalDaysInMonth)
	// June 2025 has 21 weekdays.
	assert.Equal(t, 21, line.TotalWorkingDays)
	assert.Equal(t, 0, line.DeductionDays)
	assert.True(t, line.IncomeTax.Equal(decimal.NewFromInt(500)), "tax, got %s", line.IncomeTax)
	assert.True(t, line.EmployeePension.Equal(decimal.NewFromInt(350)), "pension, got %s", line.EmployeePension)
	assert.True(t, line.NetSalary.Equal(decimal.NewFromInt(4950)), "net, got %s", line.NetSalary)
}

func TestPayrollService_Run_PendingLeaveDeduction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pending := leave.Request{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}

	// gross 4200 over 21 working days gives a daily rate of 200.
	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 4200, 0),
	}, nil, []leave.Request{pending})

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)

	line := resp.Lines[0]
	assert.Equal(t, 2, line.DeductionDays)
	assert.True(t, line.DeductionAmount.Equal(decimal.NewFromInt(400)), "deduction, got %s", line.DeductionAmount)
	assert.True(t, line.AdjustedGross.Equal(decimal.NewFromInt(3800)), "adjusted, got %s", line.AdjustedGross)
}

func TestPayrollService_Run_CheckInSuppressesDeduction(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	day := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	checkIn := day.Add(9 * time.Hour)
	pending := leave.Request{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  day,
		EndDate:    day,
		Status:     leave.StatusPending,
	}
	event := attendance.Event{
		ID:         "ev-1",
		EmployeeID: "emp-1",
		Date:       day,
		CheckIn:    &checkIn,
	}

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 4200, 0),
	}, []attendance.Event{event}, []leave.Request{pending})

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 0, resp.Lines[0].DeductionDays)
}

func TestPayrollService_Run_ApprovedLeaveNotPenalized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	approved := leave.Request{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 4200, 0),
	}, nil, []leave.Request{approved})

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 0, resp.Lines[0].DeductionDays)
}

func TestPayrollService_Run_BatchSummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 5000, 800),
		testEmployee("emp-2", "Tirunesh Dibaba", 10000, 1000),
	}, nil, nil)

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)

	assert.Equal(t, 2, resp.Summary.Employees)
	assert.True(t, resp.Summary.TotalGross.Equal(decimal.NewFromInt(15000)))
	// tax: 500 + 1650; employee pension: 350 + 700
	assert.True(t, resp.Summary.TotalIncomeTax.Equal(decimal.NewFromInt(2150)), "tax, got %s", resp.Summary.TotalIncomeTax)
	assert.True(t, resp.Summary.TotalEmployeePension.Equal(decimal.NewFromInt(1050)))
	// net: 4950 + (10000 - 2350 + 1000)
	assert.True(t, resp.Summary.TotalNet.Equal(decimal.NewFromInt(13600)), "net, got %s", resp.Summary.TotalNet)
}

func TestPayrollService_Run_FiltersToRequestedIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 5000, 0),
		testEmployee("emp-2", "Tirunesh Dibaba", 10000, 0),
	}, nil, nil)

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025, EmployeeIDs: []string{"emp-2"}})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "emp-2", resp.Lines[0].EmployeeID)
}

func TestPayrollService_Run_SkipsInactiveEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	resigned := testEmployee("emp-2", "Tirunesh Dibaba", 10000, 0)
	resigned.EmploymentStatus = employee.EmploymentStatusResigned

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 5000, 0),
		resigned,
	}, nil, nil)

	resp, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "emp-1", resp.Lines[0].EmployeeID)
}

func TestPayrollService_Run_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	pending := leave.Request{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusRejected,
	}

	svc := newTestService([]employee.Employee{
		testEmployee("emp-1", "Abebe Bikila", 7777, 123),
	}, nil, []leave.Request{pending})

	first, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	second, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPayrollService_Run_InvalidPeriod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(nil, nil, nil)

	_, err := svc.Run(ctx, payroll.RunRequest{Month: 13, Year: 2025})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 1800})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestPayrollService_Run_NoEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(nil, nil, nil)

	_, err := svc.Run(ctx, payroll.RunRequest{Month: 6, Year: 2025})
	assert.ErrorIs(t, err, payroll.ErrNoEmployees)
}

func TestPayrollService_Estimate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(nil, nil, nil)

	resp, err := svc.Estimate(ctx, payroll.EstimateRequest{
		GrossSalary:        decimal.NewFromInt(5000),
		TransportAllowance: decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	assert.True(t, resp.IncomeTax.Equal(decimal.NewFromInt(500)))
	assert.True(t, resp.EmployeePension.Equal(decimal.NewFromInt(350)))
	assert.True(t, resp.EmployerPension.Equal(decimal.NewFromInt(550)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(4950)))
}
