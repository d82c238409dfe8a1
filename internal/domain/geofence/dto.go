package geofence

import (
	"github.com/elia-nu/geo-sub002/internal/pkg/validator"
)

type CreateWorkSiteRequest struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters,omitempty"`
}

func (r *CreateWorkSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidCoordinate(r.Latitude, r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "coordinate is out of range",
		})
	}
	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *AssignEmployeeRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) {
		return validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}
	return nil
}

type WorkSiteResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}
