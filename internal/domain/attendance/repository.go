package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for raw attendance events.
type EventRepository interface {
	// Create inserts the check-in row for an employee-day.
	Create(ctx context.Context, event Event) (Event, error)

	// Update writes check-out and note changes back to an existing row.
	Update(ctx context.Context, event Event) error

	// GetByEmployeeAndDate returns the single event for an employee-day,
	// or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Event, error)

	// FindRange returns events with date in [start, end]. A nil employeeID
	// matches every employee.
	FindRange(ctx context.Context, employeeID *string, start, end time.Time) ([]Event, error)

	// FindOpenBefore returns events from days strictly before cutoffDate
	// that have a check-in but no check-out.
	FindOpenBefore(ctx context.Context, cutoffDate time.Time) ([]Event, error)
}
