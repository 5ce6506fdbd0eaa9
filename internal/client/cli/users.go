package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/client/services"
)

// ListUsers shows the users the current role may see, optionally narrowed
// to one role.
func (a *App) ListUsers(ctx context.Context, args []string) error {
	res := a.svc.Users.GetAllUsers(ctx)
	if err := a.check(res); err != nil {
		return err
	}

	users, err := decodeUsers(res)
	if err != nil {
		a.printf("Unexpected user list: %v\n", err)
		return err
	}

	me := a.currentUser()
	var filter models.Role
	if len(args) > 0 {
		filter = models.Role(args[0]).Normalize()
	}

	visible := users[:0]
	for _, u := range users {
		if me == nil || !me.Role.CanSee(u.Role) {
			continue
		}
		if filter != "" && u.Role.Normalize() != filter {
			continue
		}
		visible = append(visible, u)
	}

	printUsers(a.out, visible)
	return nil
}

func (a *App) TeamLeads(ctx context.Context, _ []string) error {
	res := a.svc.Users.GetTeamLeads(ctx)
	if err := a.check(res); err != nil {
		return err
	}
	users, err := decodeUsers(res)
	if err != nil {
		printData(a.out, res)
		return nil
	}
	printUsers(a.out, users)
	return nil
}

// AddUser walks through the create-user form. An optional argument names a
// profile photo to upload with it.
func (a *App) AddUser(ctx context.Context, args []string) error {
	me := a.currentUser()
	allowed := me.Role.CreatableRoles()
	if len(allowed) == 0 {
		a.printf("Your role cannot create users.\n")
		return nil
	}

	var files []services.File
	if len(args) > 0 {
		content, err := a.readFile(args[0])
		if err != nil {
			a.printf("Cannot read %s: %v\n", args[0], err)
			return err
		}
		files = append(files, services.File{Field: "photo", Name: args[0], Content: content})
	}

	u := models.NewUser{CreatedBy: me.EmployeeID}
	if u.CreatedBy == "" {
		u.CreatedBy = me.ID.String()
	}

	var err error
	if u.Name, err = a.prompt("Name"); err != nil {
		return err
	}
	if u.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	if u.OfficeMail, err = a.prompt("Office mail (optional)"); err != nil {
		return err
	}
	if u.Mobile, err = a.prompt("Mobile (optional)"); err != nil {
		return err
	}

	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r)
	}
	role, err := a.prompt(fmt.Sprintf("Role (%s)", strings.Join(names, ", ")))
	if err != nil {
		return err
	}
	u.Role = models.Role(role).Normalize()
	if !slices.Contains(allowed, u.Role) {
		a.printf("Role %q is not allowed.\n", role)
		return errUsage
	}

	if u.Role == models.RoleRecruiter {
		if u.Designation, err = a.prompt(fmt.Sprintf("Designation (%s, %s)", models.DesignationTeamLead, models.DesignationTeamMember)); err != nil {
			return err
		}
		if u.Designation == models.DesignationTeamMember {
			if u.TeamLeadID, err = a.prompt("Team lead ID"); err != nil {
				return err
			}
		}
	}

	res := a.svc.Users.CreateUser(ctx, u, files...)
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("User created successfully\n")
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.check(a.svc.Users.DeleteUser(ctx, models.ID(args[0]))); err != nil {
		return err
	}
	a.printf("User deleted.\n")
	return nil
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	res := a.svc.Users.ResetPassword(ctx, models.ID(args[0]))
	if err := a.check(res); err != nil {
		return err
	}
	printData(a.out, res)
	return nil
}
