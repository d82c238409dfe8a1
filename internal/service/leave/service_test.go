package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elia-nu/geo-sub002/internal/domain/employee"
	"github.com/elia-nu/geo-sub002/internal/domain/leave"
)

type memLeaveRepo struct {
	requests []leave.Request
	nextID   int
}

func (r *memLeaveRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	r.nextID++
	request.ID = "lr-" + string(rune('0'+r.nextID))
	request.CreatedAt = time.Now()
	r.requests = append(r.requests, request)
	return request, nil
}

func (r *memLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	for _, lr := range r.requests {
		if lr.ID == id {
			return lr, nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (r *memLeaveRepo) FindOverlapping(_ context.Context, _ *string, _, _ time.Time, _ []leave.Status) ([]leave.Request, error) {
	return nil, nil
}

func (r *memLeaveRepo) List(_ context.Context, employeeID *string) ([]leave.Request, error) {
	if employeeID == nil {
		return r.requests, nil
	}
	var out []leave.Request
	for _, lr := range r.requests {
		if lr.EmployeeID == *employeeID {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, decidedBy string) (leave.Request, error) {
	for i := range r.requests {
		if r.requests[i].ID == id {
			now := time.Now()
			r.requests[i].Status = status
			r.requests[i].DecidedBy = &decidedBy
			r.requests[i].DecidedAt = &now
			return r.requests[i], nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

type memEmployeeRepo struct {
	ids map[string]bool
}

func (r *memEmployeeRepo) Find(_ context.Context, _ employee.Filter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if r.ids[id] {
		return employee.Employee{ID: id}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func newTestService() (leave.Service, *memLeaveRepo) {
	repo := &memLeaveRepo{}
	return NewLeaveService(repo, &memEmployeeRepo{ids: map[string]bool{"emp-1": true}}), repo
}

func TestLeaveService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	resp, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-06",
		LeaveType:  "annual",
		Reason:     "family visit",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2025-06-02", resp.StartDate)
	assert.Equal(t, "2025-06-06", resp.EndDate)
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "ghost",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-06",
		LeaveType:  "annual",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveService_Create_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-10",
		EndDate:    "2025-06-02",
		LeaveType:  "annual",
	})
	assert.Error(t, err)
}

func TestLeaveService_Decide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-06",
		LeaveType:  "annual",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, leave.DecideLeaveRequest{
		ID:        created.ID,
		DecidedBy: "mgr-1",
		Status:    string(leave.StatusApproved),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "mgr-1", *decided.DecidedBy)

	// Second decision on the same request is rejected.
	_, err = svc.Decide(ctx, leave.DecideLeaveRequest{
		ID:        created.ID,
		DecidedBy: "mgr-1",
		Status:    string(leave.StatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_Decide_InvalidStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Decide(ctx, leave.DecideLeaveRequest{
		ID:        "lr-1",
		DecidedBy: "mgr-1",
		Status:    "maybe",
	})
	assert.Error(t, err)
}

func TestLeaveService_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	for _, dates := range [][2]string{
		{"2025-06-02", "2025-06-03"},
		{"2025-07-07", "2025-07-11"},
	} {
		_, err := svc.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: "emp-1",
			StartDate:  dates[0],
			EndDate:    dates[1],
			LeaveType:  "annual",
		})
		require.NoError(t, err)
	}

	empID := "emp-1"
	out, err := svc.List(ctx, &empID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
