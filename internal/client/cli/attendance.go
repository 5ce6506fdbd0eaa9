package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/common"
)

func (a *App) CheckIn(ctx context.Context, args []string) error {
	return a.mark(ctx, args, "check-in", a.svc.Attendance.CheckIn)
}

func (a *App) CheckOut(ctx context.Context, args []string) error {
	return a.mark(ctx, args, "check-out", a.svc.Attendance.CheckOut)
}

// mark validates a face capture read from a file and, if the backend accepts
// it, records the check-in or check-out at the current local time.
func (a *App) mark(ctx context.Context, args []string, what string,
	record func(context.Context, models.ID, time.Time) *api.Result) error {

	if len(args) != 1 {
		return errUsage
	}
	me := a.currentUser()
	if me == nil || me.ID == "" {
		a.printf("No cached profile; log in again.\n")
		return nil
	}

	image, err := a.readFile(args[0])
	if err != nil {
		a.printf("Cannot read %s: %v\n", args[0], err)
		return err
	}

	a.printf("Validating image...\n")
	if err := a.check(a.svc.Attendance.ValidateImage(ctx, me.ID, filepath.Base(args[0]), image)); err != nil {
		return err
	}

	at := a.now()
	if err := a.check(record(ctx, me.ID, at)); err != nil {
		return err
	}
	a.printf("%s recorded at %s\n", strings.ToUpper(what[:1])+what[1:], at.Format("15:04:05"))
	return nil
}

// Attendance shows one day's record, today and the current user by default.
func (a *App) Attendance(ctx context.Context, args []string) error {
	day := a.now()
	if len(args) > 0 {
		d, err := time.ParseInLocation(common.DateLayout, args[0], time.Local)
		if err != nil {
			return errUsage
		}
		day = d
	}

	var userID models.ID
	switch {
	case len(args) > 1:
		if !a.isManager() {
			a.printf("Only managers can view other users' attendance.\n")
			return nil
		}
		userID = models.ID(args[1])
	case a.currentUser() != nil:
		userID = a.myID()
	default:
		return errUsage
	}

	res := a.svc.Attendance.GetAttendance(ctx, userID, day)
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

func (a *App) TeamAnalysis(ctx context.Context, args []string) error {
	day := a.now()
	if len(args) > 0 {
		d, err := time.ParseInLocation(common.DateLayout, args[0], time.Local)
		if err != nil {
			return errUsage
		}
		day = d
	}

	res := a.svc.Attendance.GetTeamAnalysis(ctx, day)
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

// CorrectAttendance overrides a user's times for a day. "-" leaves a time
// unchanged.
func (a *App) CorrectAttendance(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errUsage
	}
	day, err := time.ParseInLocation(common.DateLayout, args[1], time.Local)
	if err != nil {
		return errUsage
	}

	checkIn, err := wallClock(day, args[2])
	if err != nil {
		return errUsage
	}
	checkOut, err := wallClock(day, args[3])
	if err != nil {
		return errUsage
	}
	if checkIn == "" && checkOut == "" {
		a.printf("Nothing to correct.\n")
		return errUsage
	}

	res := a.svc.Attendance.UpdateAttendance(ctx, models.AttendanceCorrection{
		UserID:          models.ID(args[0]),
		AttendanceDate:  day.Format(common.DateLayout),
		HRUserID:        a.myID(),
		HRComments:      strings.Join(args[4:], " "),
		NewCheckInTime:  checkIn,
		NewCheckOutTime: checkOut,
	})
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Attendance updated.\n")
	return nil
}

// wallClock combines day with an HH:MM time into a timestamp; "-" yields "".
func wallClock(day time.Time, hhmm string) (string, error) {
	if hhmm == "-" {
		return "", nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return "", fmt.Errorf("time %q: %w", hhmm, err)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
	return at.Format(common.TimestampLayout), nil
}
