package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/attendance"
)

// Check-outs are synthesized at this local hour for events left open on a
// previous day, matching the reconciler's partial-day cutoff.
const autoCloseHour = 18

type AttendanceJobs struct {
	eventRepo attendance.EventRepository
}

func NewAttendanceJobs(eventRepo attendance.EventRepository) *AttendanceJobs {
	return &AttendanceJobs{
		eventRepo: eventRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_attendance_events", 1*time.Hour, j.AutoCloseStaleEvents)
}

// AutoCloseStaleEvents closes events from previous days that have a
// check-in but no check-out, stamping the check-out at the day's cutoff.
// Today's open events are left alone; the employee may still check out.
func (j *AttendanceJobs) AutoCloseStaleEvents(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	stale, err := j.eventRepo.FindOpenBefore(ctx, today)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	closed := 0
	for _, event := range stale {
		cutoff := time.Date(event.Date.Year(), event.Date.Month(), event.Date.Day(),
			autoCloseHour, 0, 0, 0, time.UTC)
		if cutoff.Before(*event.CheckIn) {
			cutoff = *event.CheckIn
		}
		event.CheckOut = &cutoff

		if err := j.eventRepo.Update(ctx, event); err != nil {
			slog.Error("Cron: failed to auto-close attendance event",
				"event_id", event.ID, "employee_id", event.EmployeeID, "error", err)
			continue
		}
		closed++
	}

	slog.Info("Cron: auto-closed stale attendance events", "found", len(stale), "closed", closed)
	return nil
}
