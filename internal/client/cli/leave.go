package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/common"
)

func (a *App) LeaveHistory(ctx context.Context, args []string) error {
	userID, ok := a.targetUser(args)
	if !ok {
		return nil
	}
	res := a.svc.Leaves.GetUserLeaveHistory(ctx, userID)
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

// LeaveStats prints the yearly summary followed by the current month.
func (a *App) LeaveStats(ctx context.Context, args []string) error {
	year := a.now().Year()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return errUsage
		}
		year = y
	}
	me := a.currentUser()
	if me == nil {
		return errUsage
	}

	res := a.svc.Leaves.GetYearlyStats(ctx, me.ID, year)
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Year %d:\n", year)
	printData(a.out, res)

	res = a.svc.Leaves.GetMonthlyStats(ctx, me.ID)
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("This month:\n")
	printData(a.out, res)
	return nil
}

func (a *App) ApplyLeave(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	from, err := parseDate(args[0])
	if err != nil {
		return errUsage
	}
	to, err := parseDate(args[1])
	if err != nil || to.Before(from) {
		return errUsage
	}

	req := models.LeaveRequest{
		UserID:    a.myID(),
		StartDate: args[0],
		EndDate:   args[1],
	}

	rest := args[2:]
	if rest[0] == models.HalfDayMorning || rest[0] == models.HalfDayAfternoon {
		req.IsHalfDay = true
		req.HalfDayType = rest[0]
		req.HalfDayDate = args[0]
		rest = rest[1:]
		// An optional date picks the half day; it defaults to the first day.
		if len(rest) > 0 {
			if d, err := parseDate(rest[0]); err == nil {
				if d.Before(from) || d.After(to) {
					a.printf("Half day %s is outside the leave range.\n", rest[0])
					return errUsage
				}
				req.HalfDayDate = rest[0]
				rest = rest[1:]
			}
		}
	}
	if len(rest) == 0 {
		return errUsage
	}
	req.Description = strings.Join(rest, " ")

	if err := a.check(a.svc.Leaves.ApplyLeave(ctx, req)); err != nil {
		return err
	}
	a.printf("Leave application submitted.\n")
	return nil
}

func (a *App) ApplyPermission(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errUsage
	}
	if _, err := parseDate(args[0]); err != nil {
		return errUsage
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return errUsage
	}
	if args[2] != models.HalfDayMorning && args[2] != models.HalfDayAfternoon {
		return errUsage
	}

	res := a.svc.Leaves.ApplyPermission(ctx, a.myID(), models.PermissionRequest{
		PermissionDate:    args[0],
		PermissionMinutes: minutes,
		PermissionSlot:    args[2],
		PermissionUsedFor: strings.Join(args[3:], " "),
	})
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Permission request submitted.\n")
	return nil
}

func (a *App) Applications(ctx context.Context, _ []string) error {
	res := a.svc.Leaves.GetAllApplications(ctx)
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

func (a *App) ApplicationDetails(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	res := a.svc.Leaves.GetLeaveApplicationDetails(ctx, models.ID(args[0]))
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}

// ReviewLeave applies one action to every day of the range; approve is the
// default.
func (a *App) ReviewLeave(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errUsage
	}
	decisions, err := models.ExpandDecisions(args[1], args[2])
	if err != nil {
		a.printf("Invalid range: %v\n", err)
		return errUsage
	}

	if len(args) > 3 {
		action := models.NormalizeDecision(args[3])
		if action != models.ActionApprove && action != models.ActionReject {
			return errUsage
		}
		comment := strings.Join(args[4:], " ")
		for i := range decisions {
			decisions[i].Action = action
			if comment != "" {
				decisions[i].Comment = comment
			} else if action == models.ActionReject {
				decisions[i].Comment = "Rejected"
			}
		}
	}

	res := a.svc.Leaves.ReviewLeave(ctx, models.ID(args[0]), a.myID(), decisions)
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Review submitted for %d day(s).\n", len(decisions))
	return nil
}

func (a *App) ReviewPermission(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	action := models.NormalizeDecision(args[1])
	if action != models.ActionApprove && action != models.ActionReject {
		return errUsage
	}

	res := a.svc.Leaves.ReviewPermission(ctx, a.myID(), models.ID(args[0]), action, strings.Join(args[2:], " "))
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Permission %sd.\n", action)
	return nil
}

// targetUser picks the user a command is about: the argument for managers,
// the current user otherwise.
func (a *App) targetUser(args []string) (models.ID, bool) {
	if len(args) > 0 {
		if !a.isManager() {
			a.printf("Only managers can look up other users.\n")
			return "", false
		}
		return models.ID(args[0]), true
	}
	me := a.currentUser()
	if me == nil || me.ID == "" {
		a.printf("No cached profile; log in again.\n")
		return "", false
	}
	return me.ID, true
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(common.DateLayout, s, time.Local)
}
