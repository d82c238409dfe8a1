package calendar

import (
	"time"

	"github.com/elia-nu/geo-sub002/internal/pkg/ethiopian"
)

// Service answers calendar questions for the reconciler, the payroll engine
// and the HTTP layer. Implementations must be safe for concurrent use; any
// holiday caching lives inside the injected instance, never in package state.
type Service interface {
	// ToEthiopian converts a Gregorian date. It fails only outside the
	// supported proleptic range.
	ToEthiopian(t time.Time) (ethiopian.Date, error)

	// ToGregorian is the exact inverse of ToEthiopian for valid inputs.
	// The result is normalized to UTC midnight.
	ToGregorian(year, month, day int) (time.Time, error)

	// HolidaysForYear enumerates the holidays falling inside a Gregorian
	// year, ordered by date. A month whose holidays fail to compute is
	// skipped rather than aborting the whole year.
	HolidaysForYear(year int) []Holiday

	// IsHoliday returns the holiday on the given date, or nil.
	IsHoliday(t time.Time) *Holiday

	// IsWorkingDay reports whether t is neither Saturday nor Sunday. It
	// deliberately ignores the holiday table; callers that care about
	// holidays must check IsHoliday as well.
	IsWorkingDay(t time.Time) bool

	// WorkingDaysBetween counts working days in the inclusive range.
	WorkingDaysBetween(start, end time.Time) int

	NextWorkingDay(t time.Time) time.Time
	PreviousWorkingDay(t time.Time) time.Time
}
