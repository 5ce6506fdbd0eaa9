package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

type CalendarService interface {
	GetHolidays(ctx context.Context, year int) *api.Result
	AddHolidays(ctx context.Context, holidays []models.Holiday) *api.Result
	UpdateHolidays(ctx context.Context, holidays []models.HolidayUpdate) *api.Result
	// DeleteHolidays sends ids as one comma-separated query value.
	DeleteHolidays(ctx context.Context, ids []models.ID) *api.Result
}

type calendarService struct {
	caller Caller
}

func NewCalendarService(caller Caller) CalendarService {
	return &calendarService{caller: caller}
}

func (s *calendarService) GetHolidays(ctx context.Context, year int) *api.Result {
	return s.caller.Call(ctx, api.KeyGetHolidays, api.Options{
		Params: map[string]string{"year": strconv.Itoa(year)},
	})
}

func (s *calendarService) AddHolidays(ctx context.Context, holidays []models.Holiday) *api.Result {
	return s.caller.Call(ctx, api.KeyAddHolidays, api.Options{JSON: holidays})
}

func (s *calendarService) UpdateHolidays(ctx context.Context, holidays []models.HolidayUpdate) *api.Result {
	return s.caller.Call(ctx, api.KeyUpdateHolidays, api.Options{JSON: holidays})
}

func (s *calendarService) DeleteHolidays(ctx context.Context, ids []models.ID) *api.Result {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.QueryEscape(id.String())
	}
	return s.caller.Call(ctx, api.KeyDeleteHolidays, api.Options{
		RawQuery: "ids=" + strings.Join(escaped, ","),
	})
}
