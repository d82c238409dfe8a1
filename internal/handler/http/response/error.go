package response

import (
	"errors"
	"net/http"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
	"github.com/elia-nu/geo-sub002/internal/domain/payroll"
	"github.com/elia-nu/geo-sub002/internal/pkg/ethiopian"
	"github.com/elia-nu/geo-sub002/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in recorded today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Geofence domain errors
	case errors.Is(err, geofence.ErrOutsideAllSites):
		Forbidden(w, "Location is outside every authorized work site")
	case errors.Is(err, geofence.ErrNoSitesConfigured):
		Conflict(w, "No work sites configured for this employee")
	case errors.Is(err, geofence.ErrWorkSiteNotFound):
		NotFound(w, "Work site not found")
	case errors.Is(err, geofence.ErrWorkSiteNameExists):
		Conflict(w, "Work site name already exists")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, "Invalid leave request status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNoEmployees):
		NotFound(w, "No employees matched the payroll run")

	// Calendar errors
	case errors.Is(err, ethiopian.ErrOutOfRange):
		BadRequest(w, "Date is outside the supported calendar range", nil)
	case errors.Is(err, ethiopian.ErrInvalidDate):
		BadRequest(w, "Invalid Ethiopian date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
