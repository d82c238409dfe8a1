package attendance

import (
	"github.com/elia-nu/geo-sub002/internal/pkg/validator"
)

type CheckInRequest struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validateCoordinate(r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
}

func (r *CheckOutRequest) Validate() error {
	return validateCoordinate(r.Latitude, r.Longitude)
}

type ValidateLocationRequest struct {
	EmployeeID     string  `json:"employee_id"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
}

func (r *ValidateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if err := validateCoordinate(r.Latitude, r.Longitude); err != nil {
		if coordErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, coordErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateCoordinate(latitude, longitude float64) error {
	var errs validator.ValidationErrors

	if latitude < -90 || latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if longitude < -180 || longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReconcileRequest struct {
	EmployeeID *string
	StartDate  string
	EndDate    string
	Department *string
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	CheckInTime  *string  `json:"check_in_time,omitempty"`
	CheckOutTime *string  `json:"check_out_time,omitempty"`
	WorkSiteName *string  `json:"work_site_name,omitempty"`
	DistanceM    *float64 `json:"distance_meters,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

type ReconcileResponse struct {
	Records    []ReconciledDay `json:"records"`
	Statistics Statistics      `json:"statistics"`
}

type LocationCheckResponse struct {
	Valid          bool     `json:"valid"`
	Reason         string   `json:"reason"`
	SiteID         *string  `json:"site_id,omitempty"`
	SiteName       *string  `json:"site_name,omitempty"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}
