package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

// Login prompts for whatever credentials were not given and signs in.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		v, err := a.prompt("Enter email")
		if err != nil {
			return err
		}
		email = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	user, err := a.svc.Auth.Login(ctx, email, password)
	a.track(err)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			a.printf("Login failed: %s\n", apiErr.Error())
		} else {
			a.printf("Login failed: %v\n", err)
		}
		a.log.Info(ctx, "login unsuccessful", "email", email, "error", err)
		return err
	}

	a.printf("Welcome, %s!\n", displayName(user))
	if user.PendingPasswordChange() {
		a.printf("Your password must be changed. Use 'passwd'.\n")
	}
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		a.printf("Logout failed: %v\n", err)
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	u := a.currentUser()
	if u == nil {
		a.printf("Signed in (no cached profile)\n")
		return nil
	}

	a.printf("ID:          %s\n", u.ID)
	a.printf("Name:        %s\n", u.Name)
	a.printf("Email:       %s\n", u.Email)
	a.printf("Role:        %s\n", u.Role)
	if u.EmployeeID != "" {
		a.printf("Employee ID: %s\n", u.EmployeeID)
	}
	if u.Designation != "" {
		a.printf("Designation: %s\n", u.Designation)
	}
	if u.PendingPasswordChange() {
		a.printf("Status:      pending password change\n")
	}
	return nil
}

func (a *App) ChangePassword(ctx context.Context, _ []string) error {
	oldPassword, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat new password", a.out)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		a.printf("Passwords do not match.\n")
		return errors.New("password mismatch")
	}

	res := a.svc.Users.ChangePassword(ctx, models.PasswordChange{OldPassword: oldPassword, NewPassword: newPassword})
	if err := a.check(res); err != nil {
		return err
	}
	a.printf("Password changed.\n")
	return nil
}
