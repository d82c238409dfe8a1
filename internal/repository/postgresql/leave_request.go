package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elia-nu/geo-sub002/internal/domain/leave"
	"github.com/elia-nu/geo-sub002/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `id, employee_id, start_date, end_date, leave_type, status,
	   reason, decided_by, decided_at, created_at, updated_at`

// Create implements leave.Repository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, leave_type, status, reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.StartDate, request.EndDate,
		request.LeaveType, request.Status, request.Reason,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	request, err := scanLeaveRequest(q.QueryRow(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}
	return request, nil
}

// FindOverlapping implements leave.Repository.
func (r *leaveRequestRepository) FindOverlapping(ctx context.Context, employeeID *string, start, end time.Time, statuses []leave.Status) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE start_date <= $2 AND end_date >= $1 AND status = ANY($3)
	`
	args := []interface{}{start, end, statusStrings}
	if employeeID != nil {
		query += " AND employee_id = $4"
		args = append(args, *employeeID)
	}
	query += " ORDER BY start_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// List implements leave.Repository.
func (r *leaveRequestRepository) List(ctx context.Context, employeeID *string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests`
	var args []interface{}
	if employeeID != nil {
		query += " WHERE employee_id = $1"
		args = append(args, *employeeID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.Repository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedBy string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns + `
	`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id, status, decidedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, err
	}
	return request, nil
}

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var request leave.Request
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate,
		&request.LeaveType, &request.Status, &request.Reason,
		&request.DecidedBy, &request.DecidedAt, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, err
		}
		return leave.Request{}, fmt.Errorf("failed to scan leave request: %w", err)
	}
	return request, nil
}
