package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
	calendarsvc "github.com/elia-nu/geo-sub002/internal/service/calendar"
)

func ts(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func dayOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcileDay_Present(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	day := dayOf(2025, time.June, 2) // Monday
	checkIn := ts(2025, time.June, 2, 9, 0)
	checkOut := ts(2025, time.June, 2, 17, 30)
	event := &attendance.Event{EmployeeID: "emp-1", Date: day, CheckIn: &checkIn, CheckOut: &checkOut}

	rec := reconcileDay("emp-1", day, cal, nil, event)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 8.5, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.DeductionUnits)
}

func TestReconcileDay_PartialUsesCutoff(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	day := dayOf(2025, time.June, 2)
	checkIn := ts(2025, time.June, 2, 9, 15)
	event := &attendance.Event{EmployeeID: "emp-1", Date: day, CheckIn: &checkIn}

	rec := reconcileDay("emp-1", day, cal, nil, event)

	assert.Equal(t, attendance.StatusPartial, rec.Status)
	// 09:15 to the 18:00 cutoff
	assert.Equal(t, 8.75, rec.WorkingHours)
	assert.Equal(t, 0.5, rec.DeductionUnits)
}

func TestReconcileDay_PartialCheckInAfterCutoff(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	day := dayOf(2025, time.June, 2)
	checkIn := ts(2025, time.June, 2, 19, 0)
	event := &attendance.Event{EmployeeID: "emp-1", Date: day, CheckIn: &checkIn}

	rec := reconcileDay("emp-1", day, cal, nil, event)

	assert.Equal(t, attendance.StatusPartial, rec.Status)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.Equal(t, 0.5, rec.DeductionUnits)
}

func TestReconcileDay_Absent(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	rec := reconcileDay("emp-1", dayOf(2025, time.June, 2), cal, nil, nil)

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Equal(t, 1.0, rec.DeductionUnits)
}

func TestReconcileDay_WeekendBeatsCheckIn(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	day := dayOf(2025, time.June, 14)
	require.Equal(t, time.Saturday, day.Weekday())

	checkIn := ts(2025, time.June, 14, 9, 0)
	checkOut := ts(2025, time.June, 14, 17, 0)
	event := &attendance.Event{EmployeeID: "emp-1", Date: day, CheckIn: &checkIn, CheckOut: &checkOut}

	rec := reconcileDay("emp-1", day, cal, nil, event)

	assert.Equal(t, attendance.StatusWeekend, rec.Status)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.DeductionUnits)
}

func TestReconcileDay_ApprovedLeave(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	day := dayOf(2025, time.June, 2)
	approved := []leave.Request{{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  dayOf(2025, time.June, 2),
		EndDate:    dayOf(2025, time.June, 6),
		LeaveType:  "annual",
		Status:     leave.StatusApproved,
	}}

	rec := reconcileDay("emp-1", day, cal, approved, nil)

	assert.Equal(t, attendance.StatusOnLeave, rec.Status)
	assert.Equal(t, 0.0, rec.DeductionUnits)
	require.NotNil(t, rec.LeaveInfo)
	assert.Equal(t, "lr-1", rec.LeaveInfo.LeaveID)
	assert.Equal(t, "annual", rec.LeaveInfo.LeaveType)
}

func TestReconcileDay_HolidayBeatsApprovedLeave(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	// Genna falls on January 7.
	day := dayOf(2025, time.January, 7)
	require.NotNil(t, cal.IsHoliday(day))

	approved := []leave.Request{{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		StartDate:  dayOf(2025, time.January, 6),
		EndDate:    dayOf(2025, time.January, 10),
		LeaveType:  "annual",
		Status:     leave.StatusApproved,
	}}

	rec := reconcileDay("emp-1", day, cal, approved, nil)

	assert.Equal(t, attendance.StatusHoliday, rec.Status)
	assert.Nil(t, rec.LeaveInfo)
	assert.Equal(t, 0.0, rec.DeductionUnits)
}

func TestReconcileDay_HolidayBeatsAbsence(t *testing.T) {
	t.Parallel()
	cal := calendarsvc.NewCalendarService()

	// Adwa Victory Day 2026 falls on Monday March 2.
	day := dayOf(2026, time.March, 2)
	require.NotNil(t, cal.IsHoliday(day))
	require.True(t, cal.IsWorkingDay(day))

	rec := reconcileDay("emp-1", day, cal, nil, nil)

	assert.Equal(t, attendance.StatusHoliday, rec.Status)
	assert.Equal(t, 0.0, rec.DeductionUnits)
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	employees := map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Abebe Bikila", Department: "Engineering"},
		"emp-2": {ID: "emp-2", FullName: "Tirunesh Dibaba", Department: "Finance"},
	}
	records := []attendance.ReconciledDay{
		{EmployeeID: "emp-1", Date: "2025-06-02", Status: attendance.StatusPresent, WorkingHours: 8},
		{EmployeeID: "emp-1", Date: "2025-06-03", Status: attendance.StatusPartial, WorkingHours: 4, DeductionUnits: 0.5},
		{EmployeeID: "emp-2", Date: "2025-06-02", Status: attendance.StatusAbsent, DeductionUnits: 1},
		{EmployeeID: "emp-2", Date: "2025-06-03", Status: attendance.StatusOnLeave},
	}

	stats := aggregate(records, employees)

	assert.Equal(t, 12.0, stats.TotalWorkingHours)
	assert.Equal(t, 6.0, stats.AverageWorkingHours)
	assert.Equal(t, 1, stats.StatusCounts[attendance.StatusPresent])
	assert.Equal(t, 1, stats.StatusCounts[attendance.StatusPartial])
	assert.Equal(t, 1, stats.StatusCounts[attendance.StatusAbsent])
	assert.Equal(t, 1, stats.StatusCounts[attendance.StatusOnLeave])

	assert.Equal(t, 1, stats.ByDepartment["Engineering"][attendance.StatusPresent])
	assert.Equal(t, 1, stats.ByDepartment["Finance"][attendance.StatusAbsent])

	require.Len(t, stats.ByEmployee, 2)
	assert.Equal(t, "Abebe Bikila", stats.ByEmployee[0].FullName)
	assert.Equal(t, 12.0, stats.ByEmployee[0].WorkingHours)

	require.Len(t, stats.Trend, 2)
	assert.Equal(t, "2025-06-02", stats.Trend[0].Date)
	assert.Equal(t, 1, stats.Trend[0].Present)
	assert.Equal(t, 1, stats.Trend[0].Absent)
	assert.Equal(t, 1, stats.Trend[1].Partial)
	assert.Equal(t, 1, stats.Trend[1].OnLeave)
}
