package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
	"github.com/elia-nu/geo-sub002/internal/pkg/database"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepository{db: db}
}

const eventColumns = `id, employee_id, date, check_in, check_out,
	   check_in_latitude, check_in_longitude, check_out_latitude, check_out_longitude,
	   notes, created_at, updated_at`

// Create implements attendance.EventRepository.
func (r *attendanceEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, employee_id, date, check_in,
			check_in_latitude, check_in_longitude, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	event.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		event.ID, event.EmployeeID, event.Date, event.CheckIn,
		event.CheckInLatitude, event.CheckInLongitude, event.Notes,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// Update implements attendance.EventRepository.
func (r *attendanceEventRepository) Update(ctx context.Context, event attendance.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_events
		SET check_out = $2, check_out_latitude = $3, check_out_longitude = $4,
			notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		event.ID, event.CheckOut, event.CheckOutLatitude, event.CheckOutLongitude, event.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}
	return nil
}

// GetByEmployeeAndDate implements attendance.EventRepository.
func (r *attendanceEventRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM attendance_events WHERE employee_id = $1 AND date = $2`

	event, err := scanEvent(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// FindRange implements attendance.EventRepository.
func (r *attendanceEventRepository) FindRange(ctx context.Context, employeeID *string, start, end time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + ` FROM attendance_events WHERE date BETWEEN $1 AND $2`
	args := []interface{}{start, end}
	if employeeID != nil {
		query += " AND employee_id = $3"
		args = append(args, *employeeID)
	}
	query += " ORDER BY employee_id, date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// FindOpenBefore implements attendance.EventRepository.
func (r *attendanceEventRepository) FindOpenBefore(ctx context.Context, cutoffDate time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE date < $1 AND check_in IS NOT NULL AND check_out IS NULL
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, cutoffDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find open attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var event attendance.Event
	err := row.Scan(
		&event.ID, &event.EmployeeID, &event.Date, &event.CheckIn, &event.CheckOut,
		&event.CheckInLatitude, &event.CheckInLongitude,
		&event.CheckOutLatitude, &event.CheckOutLongitude,
		&event.Notes, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Event{}, err
		}
		return attendance.Event{}, fmt.Errorf("failed to scan attendance event: %w", err)
	}
	return event, nil
}
