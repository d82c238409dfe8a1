package calendar

import (
	"time"

	"github.com/elia-nu/geo-sub002/internal/pkg/ethiopian"
)

// Category classifies a holiday.
type Category string

const (
	CategoryReligious Category = "religious"
	CategoryCivic     Category = "civic"
)

// Holiday is derived on demand from a year number and never persisted.
type Holiday struct {
	Date        time.Time      `json:"-"`
	Name        string         `json:"name"`
	AmharicName string         `json:"amharic_name"`
	Category    Category       `json:"category"`
	WorkingDay  bool           `json:"is_working_day"`
	Ethiopian   ethiopian.Date `json:"ethiopian_date"`
}

// DateString returns the holiday's Gregorian date in the wire format.
func (h Holiday) DateString() string {
	return h.Date.Format("2006-01-02")
}
