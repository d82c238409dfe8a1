package calendar

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/elia-nu/geo-sub002/internal/pkg/ethiopian"
)

// fixedHoliday is a holiday pinned to an Ethiopian calendar date.
type fixedHoliday struct {
	month       int
	day         int
	name        string
	amharicName string
	category    calendar.Category
	workingDay  bool
}

var fixedHolidays = []fixedHoliday{
	{1, 1, "Enkutatash (Ethiopian New Year)", "እንቁጣጣሽ", calendar.CategoryCivic, false},
	{1, 17, "Meskel (Finding of the True Cross)", "መስቀል", calendar.CategoryReligious, false},
	{4, 29, "Genna (Ethiopian Christmas)", "ገና", calendar.CategoryReligious, false},
	{5, 11, "Timket (Epiphany)", "ጥምቀት", calendar.CategoryReligious, false},
	{6, 23, "Adwa Victory Day", "የዓድዋ ድል በዓል", calendar.CategoryCivic, false},
	{8, 23, "International Labour Day", "የሰራተኞች ቀን", calendar.CategoryCivic, false},
	{8, 27, "Patriots' Victory Day", "የአርበኞች ድል ቀን", calendar.CategoryCivic, false},
	{9, 20, "Downfall of the Derg", "ደርግ የወደቀበት ቀን", calendar.CategoryCivic, false},
}

// islamicEpoch is the Julian Day Number of 1 Muharram 1 AH in the tabular
// (civil) Islamic calendar.
const islamicEpoch = 1948440

type islamicHoliday struct {
	month       int
	day         int
	name        string
	amharicName string
}

var islamicHolidays = []islamicHoliday{
	{3, 12, "Mawlid (Birth of the Prophet)", "መውሊድ"},
	{10, 1, "Eid al-Fitr", "ኢድ አልፈጥር"},
	{12, 10, "Eid al-Adha (Arefa)", "ዒድ አል አድሃ"},
}

type CalendarServiceImpl struct {
	mu     sync.RWMutex
	byYear map[int][]calendar.Holiday
}

func NewCalendarService() *CalendarServiceImpl {
	return &CalendarServiceImpl{byYear: make(map[int][]calendar.Holiday)}
}

// ToEthiopian implements calendar.Service.
func (s *CalendarServiceImpl) ToEthiopian(t time.Time) (ethiopian.Date, error) {
	return ethiopian.FromGregorian(t)
}

// ToGregorian implements calendar.Service.
func (s *CalendarServiceImpl) ToGregorian(year, month, day int) (time.Time, error) {
	return ethiopian.ToGregorian(year, month, day)
}

// HolidaysForYear implements calendar.Service. Results are cached per year
// inside the service instance.
func (s *CalendarServiceImpl) HolidaysForYear(year int) []calendar.Holiday {
	s.mu.RLock()
	cached, ok := s.byYear[year]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	var holidays []calendar.Holiday

	// A Gregorian year overlaps two Ethiopian years. Walk every Ethiopian
	// month of both; a month that fails to convert contributes nothing
	// instead of failing the whole enumeration.
	for _, ethYear := range []int{year - 8, year - 7} {
		for month := 1; month <= 13; month++ {
			monthHolidays, err := s.fixedHolidaysForMonth(ethYear, month)
			if err != nil {
				slog.Warn("skipping holidays for ethiopian month",
					"ethiopian_year", ethYear, "month", month, "error", err)
				continue
			}
			for _, h := range monthHolidays {
				if h.Date.Year() == year {
					holidays = append(holidays, h)
				}
			}
		}
	}

	holidays = append(holidays, s.movableHolidays(year)...)

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	s.mu.Lock()
	s.byYear[year] = holidays
	s.mu.Unlock()

	return holidays
}

func (s *CalendarServiceImpl) fixedHolidaysForMonth(ethYear, month int) ([]calendar.Holiday, error) {
	var out []calendar.Holiday
	for _, fh := range fixedHolidays {
		if fh.month != month {
			continue
		}

		date, err := ethiopian.ToGregorian(ethYear, fh.month, fh.day)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", fh.name, err)
		}
		ethDate, err := ethiopian.FromGregorian(date)
		if err != nil {
			return nil, fmt.Errorf("failed to derive ethiopian date for %s: %w", fh.name, err)
		}

		out = append(out, calendar.Holiday{
			Date:        date,
			Name:        fh.name,
			AmharicName: fh.amharicName,
			Category:    fh.category,
			WorkingDay:  fh.workingDay,
			Ethiopian:   ethDate,
		})
	}
	return out, nil
}

// movableHolidays returns the feasts that move against both calendars:
// Good Friday and Fasika from the Julian computus, and the Islamic holidays
// from the tabular Islamic calendar (observed dates may differ by a day
// depending on moon sighting).
func (s *CalendarServiceImpl) movableHolidays(year int) []calendar.Holiday {
	var out []calendar.Holiday

	easter := ethiopian.Easter(year)
	out = appendHoliday(out, year, easter.AddDate(0, 0, -2), "Good Friday (Siklet)", "ስቅለት", calendar.CategoryReligious)
	out = appendHoliday(out, year, easter, "Fasika (Ethiopian Easter)", "ፋሲካ", calendar.CategoryReligious)

	// Up to three Islamic years can touch a Gregorian year.
	base := (year - 622) * 33 / 32
	for _, ih := range islamicHolidays {
		for islamicYear := base - 1; islamicYear <= base+1; islamicYear++ {
			date := ethiopian.JDNToGregorian(islamicToJDN(islamicYear, ih.month, ih.day))
			out = appendHoliday(out, year, date, ih.name, ih.amharicName, calendar.CategoryReligious)
		}
	}

	return out
}

func appendHoliday(holidays []calendar.Holiday, year int, date time.Time, name, amharicName string, category calendar.Category) []calendar.Holiday {
	if date.Year() != year {
		return holidays
	}
	ethDate, err := ethiopian.FromGregorian(date)
	if err != nil {
		slog.Warn("skipping holiday outside supported range", "holiday", name, "error", err)
		return holidays
	}
	return append(holidays, calendar.Holiday{
		Date:        date,
		Name:        name,
		AmharicName: amharicName,
		Category:    category,
		Ethiopian:   ethDate,
	})
}

func islamicToJDN(year, month, day int) int {
	return day + (59*(month-1)+1)/2 + 354*(year-1) + (3+11*year)/30 + islamicEpoch - 1
}

// IsHoliday implements calendar.Service.
func (s *CalendarServiceImpl) IsHoliday(t time.Time) *calendar.Holiday {
	for _, h := range s.HolidaysForYear(t.Year()) {
		if h.Date.Year() == t.Year() && h.Date.Month() == t.Month() && h.Date.Day() == t.Day() {
			match := h
			return &match
		}
	}
	return nil
}

// IsWorkingDay implements calendar.Service. Weekend-only on purpose: a
// declared holiday on a weekday still reports true here.
func (s *CalendarServiceImpl) IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysBetween implements calendar.Service.
func (s *CalendarServiceImpl) WorkingDaysBetween(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if s.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// NextWorkingDay implements calendar.Service.
func (s *CalendarServiceImpl) NextWorkingDay(t time.Time) time.Time {
	d := truncateToDay(t).AddDate(0, 0, 1)
	for !s.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// PreviousWorkingDay implements calendar.Service.
func (s *CalendarServiceImpl) PreviousWorkingDay(t time.Time) time.Time {
	d := truncateToDay(t).AddDate(0, 0, -1)
	for !s.IsWorkingDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var _ calendar.Service = (*CalendarServiceImpl)(nil)
