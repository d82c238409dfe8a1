package attendance

import (
	"math"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
)

// Check-ins without a matching check-out are bounded at this local hour
// when computing partial-day hours.
const dayEndCutoffHour = 18

// reconcileDay classifies one employee-day. Precedence is strict:
// holiday, then weekend, then approved leave, then the raw event. The
// first rule that matches stops the evaluation, so a weekend check-in is
// never inspected and an approved leave during a holiday is credited as
// the holiday.
func reconcileDay(
	employeeID string,
	day time.Time,
	cal calendar.Service,
	approved []leave.Request,
	event *attendance.Event,
) attendance.ReconciledDay {
	rec := attendance.ReconciledDay{
		EmployeeID: employeeID,
		Date:       day.Format(time.DateOnly),
	}

	if cal.IsHoliday(day) != nil {
		rec.Status = attendance.StatusHoliday
		return rec
	}

	if !cal.IsWorkingDay(day) {
		rec.Status = attendance.StatusWeekend
		return rec
	}

	for i := range approved {
		if approved[i].Covers(day) {
			rec.Status = attendance.StatusOnLeave
			rec.LeaveInfo = &attendance.LeaveInfo{
				LeaveID:   approved[i].ID,
				LeaveType: approved[i].LeaveType,
			}
			return rec
		}
	}

	switch {
	case event == nil || event.CheckIn == nil:
		rec.Status = attendance.StatusAbsent
		rec.DeductionUnits = 1
	case event.CheckOut == nil:
		rec.Status = attendance.StatusPartial
		rec.WorkingHours = roundHours(hoursUntilCutoff(*event.CheckIn))
		rec.DeductionUnits = 0.5
	default:
		rec.Status = attendance.StatusPresent
		rec.WorkingHours = roundHours(event.CheckOut.Sub(*event.CheckIn).Hours())
	}

	return rec
}

// hoursUntilCutoff measures from a check-in to the same day's cutoff,
// floored at zero for check-ins after the cutoff.
func hoursUntilCutoff(checkIn time.Time) float64 {
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(),
		dayEndCutoffHour, 0, 0, 0, checkIn.Location())
	h := cutoff.Sub(checkIn).Hours()
	if h < 0 {
		return 0
	}
	return h
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// aggregate reduces reconciled days into reporting statistics in a single
// pass. The employee map supplies names and departments; days whose
// employee is missing from it still count in the global totals.
func aggregate(records []attendance.ReconciledDay, employees map[string]employee.Employee) attendance.Statistics {
	stats := attendance.Statistics{
		StatusCounts: make(map[attendance.DayStatus]int),
		ByDepartment: make(map[string]map[attendance.DayStatus]int),
	}

	perEmployee := make(map[string]*attendance.EmployeeStats)
	perDate := make(map[string]*attendance.TrendPoint)
	var employeeOrder, dateOrder []string

	for _, rec := range records {
		stats.TotalWorkingHours += rec.WorkingHours
		stats.StatusCounts[rec.Status]++

		emp, known := employees[rec.EmployeeID]
		if known {
			dept := stats.ByDepartment[emp.Department]
			if dept == nil {
				dept = make(map[attendance.DayStatus]int)
				stats.ByDepartment[emp.Department] = dept
			}
			dept[rec.Status]++
		}

		es := perEmployee[rec.EmployeeID]
		if es == nil {
			es = &attendance.EmployeeStats{
				EmployeeID:   rec.EmployeeID,
				FullName:     emp.FullName,
				Department:   emp.Department,
				StatusCounts: make(map[attendance.DayStatus]int),
			}
			perEmployee[rec.EmployeeID] = es
			employeeOrder = append(employeeOrder, rec.EmployeeID)
		}
		es.WorkingHours = roundHours(es.WorkingHours + rec.WorkingHours)
		es.StatusCounts[rec.Status]++

		tp := perDate[rec.Date]
		if tp == nil {
			tp = &attendance.TrendPoint{Date: rec.Date}
			perDate[rec.Date] = tp
			dateOrder = append(dateOrder, rec.Date)
		}
		switch rec.Status {
		case attendance.StatusPresent:
			tp.Present++
		case attendance.StatusPartial:
			tp.Partial++
		case attendance.StatusAbsent:
			tp.Absent++
		case attendance.StatusOnLeave:
			tp.OnLeave++
		}
		tp.WorkingHours = roundHours(tp.WorkingHours + rec.WorkingHours)
	}

	stats.TotalWorkingHours = roundHours(stats.TotalWorkingHours)
	if len(employeeOrder) > 0 {
		stats.AverageWorkingHours = roundHours(stats.TotalWorkingHours / float64(len(employeeOrder)))
	}

	stats.ByEmployee = make([]attendance.EmployeeStats, 0, len(employeeOrder))
	for _, id := range employeeOrder {
		stats.ByEmployee = append(stats.ByEmployee, *perEmployee[id])
	}
	stats.Trend = make([]attendance.TrendPoint, 0, len(dateOrder))
	for _, d := range dateOrder {
		stats.Trend = append(stats.Trend, *perDate[d])
	}

	return stats
}
