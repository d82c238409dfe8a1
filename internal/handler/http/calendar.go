package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/elia-nu/geo-sub002/internal/domain/calendar"
	"github.com/elia-nu/geo-sub002/internal/handler/http/response"
	"github.com/elia-nu/geo-sub002/internal/pkg/validator"
)

type CalendarHandler interface {
	ToEthiopian(w http.ResponseWriter, r *http.Request)
	Holidays(w http.ResponseWriter, r *http.Request)
	WorkingDays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// ToEthiopian implements CalendarHandler. Defaults to today when no date
// is supplied.
func (h *calendarHandlerImpl) ToEthiopian(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "date must be a valid date in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	eth, err := h.calendarService.ToEthiopian(date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"gregorian": date.Format(time.DateOnly),
		"ethiopian": eth,
	})
}

// Holidays implements CalendarHandler.
func (h *calendarHandlerImpl) Holidays(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	holidays := h.calendarService.HolidaysForYear(year)
	response.Success(w, map[string]interface{}{
		"year":     year,
		"holidays": holidays,
	})
}

// WorkingDays implements CalendarHandler.
func (h *calendarHandlerImpl) WorkingDays(w http.ResponseWriter, r *http.Request) {
	start, startOK := validator.IsValidDate(r.URL.Query().Get("start_date"))
	end, endOK := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !startOK || !endOK {
		response.BadRequest(w, "start_date and end_date must be valid dates in YYYY-MM-DD format", nil)
		return
	}

	response.Success(w, map[string]interface{}{
		"start_date":   start.Format(time.DateOnly),
		"end_date":     end.Format(time.DateOnly),
		"working_days": h.calendarService.WorkingDaysBetween(start, end),
	})
}
