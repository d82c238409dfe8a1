package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

var _ leave.Service = (*LeaveServiceImpl)(nil)

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  req.LeaveType,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}
	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leaveResponse(created), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, employeeID *string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.List(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leaveResponse(r))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status), req.DecidedBy)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return leaveResponse(updated), nil
}

func leaveResponse(r leave.Request) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format(time.DateOnly),
		EndDate:    r.EndDate.Format(time.DateOnly),
		LeaveType:  r.LeaveType,
		Status:     string(r.Status),
		Reason:     r.Reason,
		DecidedBy:  r.DecidedBy,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
	if r.DecidedAt != nil {
		v := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
