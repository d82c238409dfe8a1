package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
	"github.com/elia-nu/geo-sub002/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	employeeRepo employee.Repository
	eventRepo    attendance.EventRepository
	leaveRepo    leave.Repository
	calendarSvc  calendar.Service
}

func NewPayrollService(
	employeeRepo employee.Repository,
	eventRepo attendance.EventRepository,
	leaveRepo leave.Repository,
	calendarSvc calendar.Service,
) payroll.Service {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		leaveRepo:    leaveRepo,
		calendarSvc:  calendarSvc,
	}
}

var _ payroll.Service = (*PayrollServiceImpl)(nil)

func (s *PayrollServiceImpl) Run(ctx context.Context, req payroll.RunRequest) (payroll.RunResponse, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1900 || req.Year > 2100 {
		return payroll.RunResponse{}, payroll.ErrInvalidPeriod
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	totalWorkingDays := s.calendarSvc.WorkingDaysBetween(monthStart, monthEnd)
	totalDaysInMonth := monthEnd.Day()

	employees, err := s.employeeRepo.Find(ctx, employee.Filter{
		IDs:        req.EmployeeIDs,
		ActiveOnly: true,
	})
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to find employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.RunResponse{}, payroll.ErrNoEmployees
	}

	events, err := s.eventRepo.FindRange(ctx, nil, monthStart, monthEnd)
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to find attendance events: %w", err)
	}
	checkedInByEmployee := make(map[string]map[string]bool)
	for _, ev := range events {
		if ev.CheckIn == nil {
			continue
		}
		days := checkedInByEmployee[ev.EmployeeID]
		if days == nil {
			days = make(map[string]bool)
			checkedInByEmployee[ev.EmployeeID] = days
		}
		days[ev.Date.Format(time.DateOnly)] = true
	}

	unapproved, err := s.leaveRepo.FindOverlapping(ctx, nil, monthStart, monthEnd,
		[]leave.Status{leave.StatusPending, leave.StatusRejected})
	if err != nil {
		return payroll.RunResponse{}, fmt.Errorf("failed to find leave requests: %w", err)
	}
	unapprovedByEmployee := make(map[string][]leave.Request)
	for _, lr := range unapproved {
		unapprovedByEmployee[lr.EmployeeID] = append(unapprovedByEmployee[lr.EmployeeID], lr)
	}

	resp := payroll.RunResponse{Lines: make([]payroll.Line, 0, len(employees))}
	var totalGross, totalTax, totalEmployeePension, totalEmployerPension, totalTransport, totalNet decimal.Decimal

	for _, emp := range employees {
		deductionDays := DeductionDays(req.Year, time.Month(req.Month),
			checkedInByEmployee[emp.ID], unapprovedByEmployee[emp.ID])
		c := compute(emp.GrossSalary, emp.TransportAllowance, totalWorkingDays, deductionDays)

		resp.Lines = append(resp.Lines, payroll.Line{
			EmployeeID:         emp.ID,
			EmployeeName:       emp.FullName,
			Department:         emp.Department,
			PeriodMonth:        req.Month,
			PeriodYear:         req.Year,
			GrossSalary:        c.gross.Round(2),
			AdjustedGross:      c.adjustedGross.Round(2),
			TotalWorkingDays:   totalWorkingDays,
			TotalDaysInMonth:   totalDaysInMonth,
			DeductionDays:      c.deductionDays,
			DeductionAmount:    c.deductionAmount.Round(2),
			EmployeePension:    c.employeePension.Round(2),
			EmployerPension:    c.employerPension.Round(2),
			IncomeTax:          c.incomeTax.Round(2),
			TransportAllowance: c.transportAllowance.Round(2),
			NetSalary:          c.net.Round(2),
		})

		totalGross = totalGross.Add(c.gross)
		totalTax = totalTax.Add(c.incomeTax)
		totalEmployeePension = totalEmployeePension.Add(c.employeePension)
		totalEmployerPension = totalEmployerPension.Add(c.employerPension)
		totalTransport = totalTransport.Add(c.transportAllowance)
		totalNet = totalNet.Add(c.net)

		if deductionDays > 0 {
			slog.Debug("payroll deduction applied",
				"employee_id", emp.ID,
				"period", fmt.Sprintf("%04d-%02d", req.Year, req.Month),
				"deduction_days", deductionDays)
		}
	}

	resp.Summary = payroll.Summary{
		Employees:               len(resp.Lines),
		TotalGross:              totalGross.Round(2),
		TotalIncomeTax:          totalTax.Round(2),
		TotalEmployeePension:    totalEmployeePension.Round(2),
		TotalEmployerPension:    totalEmployerPension.Round(2),
		TotalTransportAllowance: totalTransport.Round(2),
		TotalNet:                totalNet.Round(2),
	}

	return resp, nil
}

func (s *PayrollServiceImpl) Estimate(_ context.Context, req payroll.EstimateRequest) (payroll.EstimateResponse, error) {
	c := computeUnadjusted(req.GrossSalary, req.TransportAllowance)

	return payroll.EstimateResponse{
		GrossSalary:        c.gross.Round(2),
		IncomeTax:          c.incomeTax.Round(2),
		EmployeePension:    c.employeePension.Round(2),
		EmployerPension:    c.employerPension.Round(2),
		TransportAllowance: c.transportAllowance.Round(2),
		NetSalary:          c.net.Round(2),
	}, nil
}
