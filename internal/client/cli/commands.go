package cli

func (a *App) commands() map[string]command {
	return map[string]command{
		"login": {usage: "login [email]", help: "sign in", run: a.Login},

		"logout": {usage: "logout", help: "sign out", auth: true, run: a.Logout},
		"whoami": {usage: "whoami", help: "show the signed-in user", auth: true, run: a.WhoAmI},
		"passwd": {usage: "passwd", help: "change your password", auth: true, run: a.ChangePassword},

		"users":     {usage: "users [role]", help: "list users", auth: true, manager: true, run: a.ListUsers},
		"teamleads": {usage: "teamleads", help: "list recruiter team leads", auth: true, manager: true, run: a.TeamLeads},
		"adduser":   {usage: "adduser [photo-file]", help: "create a user", auth: true, manager: true, run: a.AddUser},
		"deluser":   {usage: "deluser <user-id>", help: "delete a user", auth: true, manager: true, run: a.DeleteUser},
		"resetpw":   {usage: "resetpw <user-id>", help: "reset a user's password", auth: true, manager: true, run: a.ResetPassword},

		"checkin":    {usage: "checkin <image-file>", help: "validate your face and check in", auth: true, run: a.CheckIn},
		"checkout":   {usage: "checkout <image-file>", help: "validate your face and check out", auth: true, run: a.CheckOut},
		"attendance": {usage: "attendance [YYYY-MM-DD] [user-id]", help: "show attendance for a day", auth: true, run: a.Attendance},
		"team":       {usage: "team [YYYY-MM-DD]", help: "team attendance analysis", auth: true, manager: true, run: a.TeamAnalysis},
		"correct": {
			usage: "correct <user-id> <YYYY-MM-DD> <HH:MM|-> <HH:MM|-> [comment]",
			help:  "correct recorded check-in/out times", auth: true, manager: true, run: a.CorrectAttendance,
		},

		"leaves":       {usage: "leaves [user-id]", help: "leave history", auth: true, run: a.LeaveHistory},
		"stats":        {usage: "stats [year]", help: "your yearly and monthly leave stats", auth: true, run: a.LeaveStats},
		"apply":        {usage: "apply <from> <to> [morning|afternoon [date]] <reason>", help: "apply for leave", auth: true, run: a.ApplyLeave},
		"permission":   {usage: "permission <date> <minutes> <morning|afternoon> <reason>", help: "apply for a permission", auth: true, run: a.ApplyPermission},
		"applications": {usage: "applications", help: "all leave applications", auth: true, manager: true, run: a.Applications},
		"details":      {usage: "details <application-id>", help: "leave application details", auth: true, run: a.ApplicationDetails},
		"review": {
			usage: "review <application-id> <from> <to> [approve|reject] [comment]",
			help:  "decide every day of a leave application", auth: true, manager: true, run: a.ReviewLeave,
		},
		"reviewperm": {
			usage: "reviewperm <permission-id> <approve|reject> [comment]",
			help:  "decide a permission request", auth: true, manager: true, run: a.ReviewPermission,
		},

		"holidays":   {usage: "holidays [year]", help: "company holidays", auth: true, run: a.Holidays},
		"addholiday": {usage: "addholiday <date> <public|optional> <name>", help: "add a holiday", auth: true, manager: true, run: a.AddHoliday},
		"delholiday": {usage: "delholiday <id>[,<id>...]", help: "delete holidays", auth: true, manager: true, run: a.DeleteHolidays},
	}
}
