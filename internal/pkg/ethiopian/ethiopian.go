// Package ethiopian implements conversion between the Gregorian and
// Ethiopian calendars via Julian Day Numbers. The Ethiopian calendar has
// twelve 30-day months plus a short 13th month (Pagume) of 5 days, or 6 in
// a leap year. Conversion is bijective inside the supported range, so a
// Gregorian date round-trips exactly.
package ethiopian

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrOutOfRange  = errors.New("date is outside the supported calendar range")
	ErrInvalidDate = errors.New("invalid ethiopian date")
)

// Supported Gregorian year range. Dates outside it are a programmer or
// configuration error, not something callers recover from.
const (
	MinGregorianYear = 1900
	MaxGregorianYear = 2100
)

// ameteMihretEpoch is the Julian Day Number offset of the Ethiopian
// "Year of Mercy" era.
const ameteMihretEpoch = 1723856

var monthNames = [13]string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit",
	"Megabit", "Miazia", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume",
}

var dayNames = [7]string{
	"Ehud", "Segno", "Maksegno", "Rob", "Hamus", "Arb", "Kidame",
}

// Date is a day in the Ethiopian calendar. Month runs 1-13 where 13 is
// Pagume. Immutable once constructed.
type Date struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name"`
	DayName   string `json:"day_name"`
}

func (d Date) String() string {
	return fmt.Sprintf("%s %d, %d", d.MonthName, d.Day, d.Year)
}

// IsLeapYear reports whether the Ethiopian year has a 6-day Pagume.
func IsLeapYear(year int) bool {
	return year%4 == 3
}

// DaysInMonth returns the length of an Ethiopian month.
func DaysInMonth(year, month int) int {
	if month < 13 {
		return 30
	}
	if IsLeapYear(year) {
		return 6
	}
	return 5
}

// FromGregorian converts a Gregorian date to its Ethiopian equivalent.
// The time-of-day portion of t is ignored.
func FromGregorian(t time.Time) (Date, error) {
	if t.Year() < MinGregorianYear || t.Year() > MaxGregorianYear {
		return Date{}, fmt.Errorf("%w: %s", ErrOutOfRange, t.Format("2006-01-02"))
	}

	jdn := GregorianToJDN(t.Year(), t.Month(), t.Day())
	year, month, day := ethiopianFromJDN(jdn)

	return Date{
		Year:      year,
		Month:     month,
		Day:       day,
		MonthName: monthNames[month-1],
		DayName:   dayNames[int(t.Weekday())],
	}, nil
}

// ToGregorian converts an Ethiopian date to a UTC-midnight Gregorian
// time.Time. It is the exact inverse of FromGregorian for valid inputs.
func ToGregorian(year, month, day int) (time.Time, error) {
	if month < 1 || month > 13 || day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("%w: year=%d month=%d day=%d", ErrInvalidDate, year, month, day)
	}

	t := JDNToGregorian(ethiopianToJDN(year, month, day))
	if t.Year() < MinGregorianYear || t.Year() > MaxGregorianYear {
		return time.Time{}, fmt.Errorf("%w: ethiopian %d-%02d-%02d", ErrOutOfRange, year, month, day)
	}
	return t, nil
}

// GregorianToJDN returns the Julian Day Number of a Gregorian calendar
// date (Fliegel & Van Flandern).
func GregorianToJDN(year int, month time.Month, day int) int {
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian returns the UTC-midnight Gregorian date of a Julian Day
// Number.
func JDNToGregorian(jdn int) time.Time {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// JulianToJDN returns the Julian Day Number of a Julian calendar date.
// Needed for the movable feasts, which are fixed by the Julian computus.
func JulianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

func ethiopianToJDN(year, month, day int) int {
	return ameteMihretEpoch + 365 + 365*(year-1) + year/4 + 30*(month-1) + day - 1
}

func ethiopianFromJDN(jdn int) (year, month, day int) {
	offset := jdn - ameteMihretEpoch
	cycle := offset / 1461 // 4-year cycles since the epoch
	r := offset % 1461
	n := r%365 + 365*(r/1460)

	year = 4*cycle + r/365 - r/1460
	month = n/30 + 1
	day = n%30 + 1
	return year, month, day
}

// Easter returns the Gregorian date of Ethiopian Easter (Fasika) for a
// Gregorian year. Fasika follows the Julian computus, so the Julian result
// is mapped back through its JDN.
func Easter(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	return JDNToGregorian(JulianToJDN(year, month, day))
}
