package calendar

import (
	"testing"
	"time"

	domain "github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func holidayOn(holidays []domain.Holiday, t time.Time) *domain.Holiday {
	for _, h := range holidays {
		if h.Date.Equal(t) {
			match := h
			return &match
		}
	}
	return nil
}

func TestHolidaysForYear_FixedHolidays2025(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	holidays := svc.HolidaysForYear(2025)
	require.NotEmpty(t, holidays)

	expected := map[string]time.Time{
		"Genna (Ethiopian Christmas)":       day(2025, time.January, 7),
		"Timket (Epiphany)":                 day(2025, time.January, 19),
		"Adwa Victory Day":                  day(2025, time.March, 2),
		"International Labour Day":          day(2025, time.May, 1),
		"Patriots' Victory Day":             day(2025, time.May, 5),
		"Downfall of the Derg":              day(2025, time.May, 28),
		"Enkutatash (Ethiopian New Year)":   day(2025, time.September, 11),
		"Meskel (Finding of the True Cross)": day(2025, time.September, 27),
	}

	for name, date := range expected {
		h := holidayOn(holidays, date)
		require.NotNil(t, h, "expected %s on %s", name, date.Format("2006-01-02"))
		assert.Equal(t, name, h.Name)
	}
}

func TestHolidaysForYear_MovableFeasts2025(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	holidays := svc.HolidaysForYear(2025)

	fasika := holidayOn(holidays, day(2025, time.April, 20))
	require.NotNil(t, fasika)
	assert.Equal(t, "Fasika (Ethiopian Easter)", fasika.Name)
	assert.Equal(t, domain.CategoryReligious, fasika.Category)

	goodFriday := holidayOn(holidays, day(2025, time.April, 18))
	require.NotNil(t, goodFriday)
	assert.Equal(t, "Good Friday (Siklet)", goodFriday.Name)

	// Tabular Islamic calendar dates
	eidAlFitr := holidayOn(holidays, day(2025, time.March, 31))
	require.NotNil(t, eidAlFitr)
	assert.Equal(t, "Eid al-Fitr", eidAlFitr.Name)
}

func TestHolidaysForYear_OrderedByDate(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	holidays := svc.HolidaysForYear(2024)
	require.NotEmpty(t, holidays)

	for i := 1; i < len(holidays); i++ {
		assert.False(t, holidays[i].Date.Before(holidays[i-1].Date),
			"holidays out of order: %s before %s", holidays[i].Name, holidays[i-1].Name)
	}
	for _, h := range holidays {
		assert.Equal(t, 2024, h.Date.Year())
		assert.NotZero(t, h.Ethiopian.Year)
	}
}

func TestIsHoliday(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	h := svc.IsHoliday(day(2025, time.January, 7))
	require.NotNil(t, h)
	assert.Equal(t, "Genna (Ethiopian Christmas)", h.Name)
	assert.Equal(t, 4, h.Ethiopian.Month)
	assert.Equal(t, 29, h.Ethiopian.Day)

	assert.Nil(t, svc.IsHoliday(day(2025, time.January, 8)))
}

func TestIsWorkingDay_WeekendOnly(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	assert.True(t, svc.IsWorkingDay(day(2025, time.January, 6)))  // Monday
	assert.False(t, svc.IsWorkingDay(day(2025, time.January, 4))) // Saturday
	assert.False(t, svc.IsWorkingDay(day(2025, time.January, 5))) // Sunday

	// A weekday holiday is still a "working day" for this predicate;
	// callers must check IsHoliday separately.
	genna := day(2025, time.January, 7) // Tuesday
	require.NotNil(t, svc.IsHoliday(genna))
	assert.True(t, svc.IsWorkingDay(genna))
}

func TestWorkingDaysBetween(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	// Single-day range: 1 when the day is a working day, else 0.
	monday := day(2025, time.January, 6)
	saturday := day(2025, time.January, 4)
	assert.Equal(t, 1, svc.WorkingDaysBetween(monday, monday))
	assert.Equal(t, 0, svc.WorkingDaysBetween(saturday, saturday))

	// Full week Mon-Sun has 5 working days.
	assert.Equal(t, 5, svc.WorkingDaysBetween(monday, day(2025, time.January, 12)))

	// Inverted range is empty.
	assert.Equal(t, 0, svc.WorkingDaysBetween(monday, day(2025, time.January, 1)))
}

func TestNextAndPreviousWorkingDay(t *testing.T) {
	t.Parallel()
	svc := NewCalendarService()

	friday := day(2025, time.January, 3)
	monday := day(2025, time.January, 6)

	assert.True(t, svc.NextWorkingDay(friday).Equal(monday))
	assert.True(t, svc.PreviousWorkingDay(monday).Equal(friday))

	// Midweek is a single step.
	tuesday := day(2025, time.January, 7)
	assert.True(t, svc.NextWorkingDay(monday).Equal(tuesday))
}
