package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

func (a *App) Holidays(ctx context.Context, args []string) error {
	year := a.now().Year()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return errUsage
		}
		year = y
	}
	res := a.svc.Calendar.GetHolidays(ctx, year)
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

func (a *App) AddHoliday(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	day, err := parseDate(args[0])
	if err != nil {
		return errUsage
	}
	kind := strings.ToLower(args[1])
	if kind != models.HolidayPublic && kind != models.HolidayOptional {
		return errUsage
	}

	res := a.svc.Calendar.AddHolidays(ctx, []models.Holiday{{
		Name:        strings.Join(args[2:], " "),
		HolidayDate: args[0],
		HolidayType: kind,
		Year:        day.Year(),
	}})
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Holiday added.\n")
	return nil
}

func (a *App) DeleteHolidays(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	var ids []models.ID
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, models.ID(id))
			}
		}
	}
	if len(ids) == 0 {
		return errUsage
	}

	if err := a.check(a.svc.Calendar.DeleteHolidays(ctx, ids)); err != nil {
		return err
	}
	a.printf("Deleted %d holiday(s).\n", len(ids))
	return nil
}
