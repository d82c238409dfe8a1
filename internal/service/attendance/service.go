package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/geofence"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
)

type AttendanceServiceImpl struct {
	eventRepo    attendance.EventRepository
	employeeRepo employee.Repository
	leaveRepo    leave.Repository
	siteRepo     geofence.WorkSiteRepository
	validator    geofence.Validator
	calendarSvc  calendar.Service
	now          func() time.Time
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	employeeRepo employee.Repository,
	leaveRepo leave.Repository,
	siteRepo geofence.WorkSiteRepository,
	validator geofence.Validator,
	calendarSvc calendar.Service,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		siteRepo:     siteRepo,
		validator:    validator,
		calendarSvc:  calendarSvc,
		now:          time.Now,
	}
}

var _ attendance.Service = (*AttendanceServiceImpl)(nil)

func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.EventResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.EventResponse{}, err
	}

	result, err := s.validateReading(ctx, employeeID, geofence.Reading{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	now := s.now().UTC()
	today := truncateToDay(now)

	existing, err := s.eventRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to load attendance event: %w", err)
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.EventResponse{}, attendance.ErrAlreadyCheckedIn
	}

	event := attendance.Event{
		EmployeeID:       employeeID,
		Date:             today,
		CheckIn:          &now,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		Notes:            req.Notes,
	}
	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	slog.Info("employee checked in",
		"employee_id", employeeID,
		"site", result.Site.Name,
		"distance_m", result.DistanceMeters)

	return eventResponse(created, result), nil
}

func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.EventResponse, error) {
	result, err := s.validateReading(ctx, employeeID, geofence.Reading{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	now := s.now().UTC()
	today := truncateToDay(now)

	event, err := s.eventRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to load attendance event: %w", err)
	}
	if event == nil || event.CheckIn == nil {
		return attendance.EventResponse{}, attendance.ErrNotCheckedIn
	}
	if event.CheckOut != nil {
		return attendance.EventResponse{}, attendance.ErrAlreadyCheckedOut
	}

	event.CheckOut = &now
	event.CheckOutLatitude = &req.Latitude
	event.CheckOutLongitude = &req.Longitude
	if err := s.eventRepo.Update(ctx, *event); err != nil {
		return attendance.EventResponse{}, fmt.Errorf("failed to update attendance event: %w", err)
	}

	return eventResponse(*event, result), nil
}

func (s *AttendanceServiceImpl) ValidateLocation(ctx context.Context, req attendance.ValidateLocationRequest) (attendance.LocationCheckResponse, error) {
	sites, err := s.siteRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.LocationCheckResponse{}, fmt.Errorf("failed to list work sites: %w", err)
	}

	result := s.validator.Validate(geofence.Reading{
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	}, sites)

	resp := attendance.LocationCheckResponse{
		Valid:  result.Valid,
		Reason: string(result.Reason),
	}
	if result.Site != nil {
		resp.SiteID = &result.Site.ID
		resp.SiteName = &result.Site.Name
		resp.DistanceMeters = &result.DistanceMeters
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) Reconcile(ctx context.Context, req attendance.ReconcileRequest) (attendance.ReconcileResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ReconcileResponse{}, err
	}
	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	filter := employee.Filter{Department: req.Department}
	if req.EmployeeID != nil {
		filter.IDs = []string{*req.EmployeeID}
	}
	employees, err := s.employeeRepo.Find(ctx, filter)
	if err != nil {
		return attendance.ReconcileResponse{}, fmt.Errorf("failed to find employees: %w", err)
	}

	// An id that matches no profile is silently excluded rather than an
	// error; it is outside the filtered population.
	employeeByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeeByID[emp.ID] = emp
	}

	events, err := s.eventRepo.FindRange(ctx, req.EmployeeID, start, end)
	if err != nil {
		return attendance.ReconcileResponse{}, fmt.Errorf("failed to find attendance events: %w", err)
	}
	eventByKey := make(map[string]*attendance.Event, len(events))
	for i := range events {
		ev := &events[i]
		eventByKey[ev.EmployeeID+"|"+ev.Date.Format(time.DateOnly)] = ev
	}

	approved, err := s.leaveRepo.FindOverlapping(ctx, req.EmployeeID, start, end,
		[]leave.Status{leave.StatusApproved})
	if err != nil {
		return attendance.ReconcileResponse{}, fmt.Errorf("failed to find leave requests: %w", err)
	}
	approvedByEmployee := make(map[string][]leave.Request)
	for _, lr := range approved {
		approvedByEmployee[lr.EmployeeID] = append(approvedByEmployee[lr.EmployeeID], lr)
	}

	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })

	var records []attendance.ReconciledDay
	for _, emp := range employees {
		for day := truncateToDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
			event := eventByKey[emp.ID+"|"+day.Format(time.DateOnly)]
			records = append(records, reconcileDay(emp.ID, day, s.calendarSvc, approvedByEmployee[emp.ID], event))
		}
	}

	return attendance.ReconcileResponse{
		Records:    records,
		Statistics: aggregate(records, employeeByID),
	}, nil
}

// validateReading runs the geofence check against the employee's assigned
// sites and converts failures to domain errors.
func (s *AttendanceServiceImpl) validateReading(ctx context.Context, employeeID string, reading geofence.Reading) (geofence.Result, error) {
	sites, err := s.siteRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return geofence.Result{}, fmt.Errorf("failed to list work sites: %w", err)
	}

	result := s.validator.Validate(reading, sites)
	if result.Valid {
		return result, nil
	}

	switch result.Reason {
	case geofence.ReasonNoSitesConfigured:
		return result, geofence.ErrNoSitesConfigured
	default:
		slog.Info("geofence rejection",
			"employee_id", employeeID,
			"nearest_site", result.Site.Name,
			"distance_m", result.DistanceMeters)
		return result, geofence.ErrOutsideAllSites
	}
}

func eventResponse(event attendance.Event, result geofence.Result) attendance.EventResponse {
	resp := attendance.EventResponse{
		ID:         event.ID,
		EmployeeID: event.EmployeeID,
		Date:       event.Date.Format(time.DateOnly),
		Notes:      event.Notes,
	}
	if event.CheckIn != nil {
		v := event.CheckIn.Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if event.CheckOut != nil {
		v := event.CheckOut.Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	if result.Site != nil {
		resp.WorkSiteName = &result.Site.Name
		resp.DistanceM = &result.DistanceMeters
	}
	return resp
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
