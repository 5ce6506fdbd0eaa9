package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/api/apitest"
	"github.com/dmitrijs2005/hrmportal/internal/client/localdb"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/client/services"
	"github.com/dmitrijs2005/hrmportal/internal/client/session"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app     *App
	backend *apitest.Backend
	store   *session.Store
	out     *bytes.Buffer
}

var fixedNow = time.Date(2025, 3, 7, 9, 30, 0, 0, time.Local)

func newHarness(t *testing.T, input string) *harness {
	t.Helper()

	db, err := localdb.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b := apitest.New(t)
	store := session.NewStore(db, logging.Discard())
	g := api.NewGateway(api.Config{BaseURL: b.URL}, store, logging.Discard())

	svc := Services{
		Auth:       services.NewAuthService(g, store, logging.Discard()),
		Users:      services.NewUserService(g),
		Attendance: services.NewAttendanceService(g),
		Leaves:     services.NewLeaveService(g),
		Calendar:   services.NewCalendarService(g),
	}

	out := &bytes.Buffer{}
	app := NewApp(svc, logging.Discard(), strings.NewReader(input), out)
	app.now = func() time.Time { return fixedNow }
	store.OnExpire(app.SessionExpired)

	return &harness{app: app, backend: b, store: store, out: out}
}

func (h *harness) signIn(t *testing.T, u models.UserSummary) {
	t.Helper()
	require.NoError(t, h.store.Save(context.Background(), session.Session{Token: "T1", User: &u}))
}

func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(string, io.Writer) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return p, nil
	}
}

var hr = models.UserSummary{ID: "1", Name: "Hema", Role: models.RoleHR, EmployeeID: "E1"}
var employee = models.UserSummary{ID: "5", Name: "Emp", Role: models.RoleEmployee}

func TestApp_LoginWhoAmILogout(t *testing.T) {
	stubPasswords(t, "pw")
	h := newHarness(t, "login a@b.com\nwhoami\nlogout\nwhoami\nexit\n")
	h.backend.Reply(http.MethodPost, "/login/users", http.StatusOK,
		`{"access_token":"T1","user":{"id":1,"name":"A","role":"hr","firstlogin":true}}`)

	h.app.Run(context.Background())

	out := h.out.String()
	assert.Contains(t, out, "Welcome, A!")
	assert.Contains(t, out, "Use 'passwd'")
	assert.Contains(t, out, "Status:      pending password change")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Please log in first")
	assert.False(t, h.store.IsAuthenticated())
	assert.Equal(t, ModeOnline, h.app.Mode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(h.backend.Requests()[0].Body, &body))
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "pw"}, body)
}

func TestApp_LoginPromptsForEmail(t *testing.T) {
	stubPasswords(t, "bad")
	h := newHarness(t, "login\nx@y.io\nexit\n")
	h.backend.Reply(http.MethodPost, "/login/users", http.StatusUnauthorized, `{"detail":"Invalid credentials"}`)

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Enter email")
	assert.Contains(t, h.out.String(), "Login failed: Invalid credentials")
	assert.False(t, h.store.IsAuthenticated())
}

func TestApp_SessionExpiryReturnsToSignedOut(t *testing.T) {
	h := newHarness(t, "users\nusers\nexit\n")
	h.signIn(t, hr)
	h.backend.Reply(http.MethodGet, "/users/allusers", http.StatusUnauthorized, `{"detail":"Token expired"}`)

	h.app.Run(context.Background())

	out := h.out.String()
	assert.Contains(t, out, "Session Expired. Please log in again.")
	assert.Contains(t, out, "Please log in first")
	assert.Equal(t, 1, h.backend.Count())
	assert.False(t, h.store.IsAuthenticated())
}

func TestApp_OfflineMode(t *testing.T) {
	h := newHarness(t, "holidays 2025\nexit\n")
	h.signIn(t, employee)
	h.backend.Close()

	h.app.Run(context.Background())

	assert.Equal(t, ModeOffline, h.app.Mode)
	assert.Contains(t, h.out.String(), "(Emp offline)")
	assert.True(t, h.store.IsAuthenticated())
}

func TestApp_PromptShowsModeFromStart(t *testing.T) {
	h := newHarness(t, "holidays 2025\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodGet, "/calendar/holidays/2025", http.StatusOK, `[]`)

	h.app.Run(context.Background())

	out := h.out.String()
	first := strings.Index(out, "hrm (Emp offline)> ")
	second := strings.Index(out, "hrm (Emp online)> ")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestApp_ListUsersHonoursVisibility(t *testing.T) {
	h := newHarness(t, "users\nusers employee\nexit\n")
	h.signIn(t, hr)
	h.backend.Reply(http.MethodGet, "/users/allusers", http.StatusOK, `[
		{"id":1,"name":"Boss","role":"superadmin"},
		{"id":2,"name":"Ada","role":"admin"},
		{"id":3,"name":"Rita","role":"recruiter"},
		{"id":4,"name":"Eve","role":"employee"}
	]`)

	h.app.Run(context.Background())

	out := h.out.String()
	assert.NotContains(t, out, "Boss")
	assert.NotContains(t, out, "Ada")
	assert.Contains(t, out, "Rita")
	assert.Equal(t, 2, strings.Count(out, "Eve"))
	assert.Equal(t, 1, strings.Count(out, "Rita"))
}

func TestApp_EmployeeCannotUseManagerCommands(t *testing.T) {
	h := newHarness(t, "applications\nexit\n")
	h.signIn(t, employee)

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Not available for your role")
	assert.Equal(t, 0, h.backend.Count())
}

func TestApp_CheckIn(t *testing.T) {
	img := filepath.Join(t.TempDir(), "face.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpeg"), 0o600))

	h := newHarness(t, "checkin "+img+"\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/attendace/validate/images", http.StatusOK, `{"verified":true}`)
	h.backend.Reply(http.MethodPost, "/attendace/checkin", http.StatusOK, `{"status":"ok"}`)

	h.app.Run(context.Background())

	reqs := h.backend.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/attendace/validate/images", reqs[0].Path)
	assert.Equal(t, "user_id=5", reqs[0].RawQuery)
	assert.Equal(t, "/attendace/checkin", reqs[1].Path)
	assert.JSONEq(t, `{"user_id":5,"check_in_time":"2025-03-07T09:30:00"}`, string(reqs[1].Body))
	assert.Contains(t, h.out.String(), "Check-in recorded at 09:30:00")
}

func TestApp_CheckOutStopsWhenFaceRejected(t *testing.T) {
	img := filepath.Join(t.TempDir(), "face.jpg")
	require.NoError(t, os.WriteFile(img, []byte("jpeg"), 0o600))

	h := newHarness(t, "checkout "+img+"\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/attendace/validate/images", http.StatusBadRequest, `{"detail":"Face not matched"}`)

	h.app.Run(context.Background())

	assert.Equal(t, 1, h.backend.Count())
	assert.Contains(t, h.out.String(), "Error: Face not matched")
}

func TestApp_ApplyHalfDayLeave(t *testing.T) {
	h := newHarness(t, "apply 2025-03-10 2025-03-10 afternoon family event\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/leaves/apply", http.StatusOK, `{"id":77}`)

	h.app.Run(context.Background())

	assert.JSONEq(t, `{"user_id":5,"start_date":"2025-03-10","end_date":"2025-03-10","leave_source":"regular",
		"is_half_day":true,"half_day_date":"2025-03-10","half_day_type":"afternoon","description":"family event"}`,
		string(h.backend.Last().Body))
	assert.Contains(t, h.out.String(), "Leave application submitted.")
}

func TestApp_ApplyHalfDayOnChosenDate(t *testing.T) {
	h := newHarness(t, "apply 2025-03-10 2025-03-12 morning 2025-03-12 trip\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/leaves/apply", http.StatusOK, `{"id":78}`)

	h.app.Run(context.Background())

	assert.JSONEq(t, `{"user_id":5,"start_date":"2025-03-10","end_date":"2025-03-12","leave_source":"regular",
		"is_half_day":true,"half_day_date":"2025-03-12","half_day_type":"morning","description":"trip"}`,
		string(h.backend.Last().Body))
}

func TestApp_ApplyRejectsHalfDayOutsideRange(t *testing.T) {
	h := newHarness(t, "apply 2025-03-10 2025-03-11 morning 2025-03-20 trip\napply 2025-03-10 2025-03-11 first_half trip\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/leaves/apply", http.StatusOK, `{}`)

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Half day 2025-03-20 is outside the leave range.")
	require.Equal(t, 1, h.backend.Count())
	// An unknown session word is part of the reason, not a half day.
	assert.JSONEq(t, `{"user_id":5,"start_date":"2025-03-10","end_date":"2025-03-11","leave_source":"regular",
		"is_half_day":false,"description":"first_half trip"}`, string(h.backend.Last().Body))
}

func TestApp_ApplyPermissionChecksSlot(t *testing.T) {
	h := newHarness(t, "permission 2025-03-10 30 noon dentist\npermission 2025-03-10 30 morning dentist\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPost, "/leaves/permission/apply/{userId}", http.StatusOK, `{}`)

	h.app.Run(context.Background())

	assert.Contains(t, h.out.String(), "Usage: permission")
	require.Equal(t, 1, h.backend.Count())
	assert.Equal(t, "/leaves/permission/apply/5", h.backend.Last().Path)
	assert.JSONEq(t, `{"permission_date":"2025-03-10","permission_minutes":30,
		"permission_slot":"morning","permission_used_for":"dentist"}`, string(h.backend.Last().Body))
}

func TestApp_ReviewLeave(t *testing.T) {
	h := newHarness(t, "review 12 2025-03-10 2025-03-11\nreview 13 2025-03-10 2025-03-10 reject no cover\nexit\n")
	h.signIn(t, hr)
	h.backend.ReplyAny(http.StatusOK, `{}`)

	h.app.Run(context.Background())

	reqs := h.backend.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/leaves/applications/12/bulk-review", reqs[0].Path)
	assert.JSONEq(t, `{"reviewer_id":1,"decisions":[
		{"date":"2025-03-10","action":"approve","comment":"Approved"},
		{"date":"2025-03-11","action":"approve","comment":"Approved"}]}`, string(reqs[0].Body))
	assert.JSONEq(t, `{"reviewer_id":1,"decisions":[
		{"date":"2025-03-10","action":"reject","comment":"no cover"}]}`, string(reqs[1].Body))
}

func TestApp_CorrectAttendance(t *testing.T) {
	h := newHarness(t, "correct 5 2025-03-06 09:15 - forgot badge\nexit\n")
	h.signIn(t, hr)
	h.backend.Reply(http.MethodPatch, "/attendace/hr/attendance/update", http.StatusOK, `{}`)

	h.app.Run(context.Background())

	assert.JSONEq(t, `{"user_id":5,"attendance_date":"2025-03-06","hr_user_id":1,
		"hr_comments":"forgot badge","new_check_in_time":"2025-03-06T09:15:00"}`, string(h.backend.Last().Body))
}

func TestApp_DeleteHolidays(t *testing.T) {
	h := newHarness(t, "delholiday 3,4 9\nexit\n")
	h.signIn(t, hr)
	h.backend.Reply(http.MethodDelete, "/calendar/holidays", http.StatusNoContent, "")

	h.app.Run(context.Background())

	assert.Equal(t, "ids=3,4,9", h.backend.Last().RawQuery)
	assert.Contains(t, h.out.String(), "Deleted 3 holiday(s).")
}

func TestApp_AddUser(t *testing.T) {
	h := newHarness(t, strings.Join([]string{
		"adduser",
		"Ravi", "ravi@x.io", "", "99999", "recruiter", "team_member", "4",
		"exit",
	}, "\n")+"\n")
	h.signIn(t, hr)
	h.backend.Reply(http.MethodPost, "/users/create/user", http.StatusCreated, `{"id":10}`)

	h.app.Run(context.Background())

	require.Equal(t, 1, h.backend.Count())
	body := string(h.backend.Last().Body)
	for _, want := range []string{"Ravi", "ravi@x.io", "99999", "recruiter", "team_member", "E1"} {
		assert.Contains(t, body, want)
	}
	assert.Contains(t, h.out.String(), "Designation (team_leader, team_member)")
	assert.Contains(t, h.out.String(), "User created successfully")
}

func TestApp_AddUserRejectsRoleAboveOwn(t *testing.T) {
	h := newHarness(t, "adduser\nA\na@x.io\n\n\nadmin\nexit\n")
	h.signIn(t, hr)

	h.app.Run(context.Background())

	assert.Equal(t, 0, h.backend.Count())
	assert.Contains(t, h.out.String(), `Role "admin" is not allowed.`)
}

func TestApp_ChangePassword(t *testing.T) {
	stubPasswords(t, "old", "new", "new")
	h := newHarness(t, "passwd\nexit\n")
	h.signIn(t, employee)
	h.backend.Reply(http.MethodPut, "/users/change_password", http.StatusOK, `{"message":"ok"}`)

	h.app.Run(context.Background())

	assert.JSONEq(t, `{"old_password":"old","new_password":"new"}`, string(h.backend.Last().Body))
	assert.Contains(t, h.out.String(), "Password changed.")
}

func TestApp_ChangePasswordMismatch(t *testing.T) {
	stubPasswords(t, "old", "new", "other")
	h := newHarness(t, "passwd\nexit\n")
	h.signIn(t, employee)

	h.app.Run(context.Background())

	assert.Equal(t, 0, h.backend.Count())
	assert.Contains(t, h.out.String(), "Passwords do not match.")
}

func TestWallClock(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	got, err := wallClock(day, "18:05")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02T18:05:00", got)

	got, err = wallClock(day, "-")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = wallClock(day, "6pm")
	assert.Error(t, err)
}
