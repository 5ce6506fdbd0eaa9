package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Key names a backend operation independently of its path.
type Key string

const (
	KeyLogin Key = "login"

	KeyGetAllUsers    Key = "getAllUsers"
	KeyGetProfile     Key = "getProfile"
	KeyCreateUser     Key = "createUser"
	KeyUpdateUser     Key = "updateUser"
	KeyDeleteUser     Key = "deleteUser"
	KeyResetPassword  Key = "resetPassword"
	KeyChangePassword Key = "changePassword"
	KeyGetTeamLeads   Key = "getTeamLeads"

	KeyValidateImage             Key = "validateImage"
	KeyCheckIn                   Key = "checkIn"
	KeyCheckOut                  Key = "checkOut"
	KeyGetTodayAttendance        Key = "getTodayAttendance"
	KeyGetTeamAttendanceAnalysis Key = "getTeamAttendanceAnalysis"
	KeyUpdateAttendance          Key = "updateAttendance"

	KeyGetYearlyStats      Key = "getYearlyStats"
	KeyGetMonthlyStats     Key = "getMonthlyStats"
	KeyApplyLeave          Key = "applyLeave"
	KeyApplyPermission     Key = "applyPermission"
	KeyGetAllApplications  Key = "getAllApplications"
	KeyReviewLeave         Key = "reviewLeave"
	KeyReviewPermission    Key = "reviewPermission"
	KeyGetLeaveDetails     Key = "getLeaveDetails"
	KeyGetUserLeaveHistory Key = "getUserLeaveHistory"

	KeyGetHolidays    Key = "getHolidays"
	KeyAddHolidays    Key = "addHolidays"
	KeyUpdateHolidays Key = "updateHolidays"
	KeyDeleteHolidays Key = "deleteHolidays"
)

// Resource groups endpoints by backend capability.
type Resource string

const (
	ResourceAuth       Resource = "auth"
	ResourceUsers      Resource = "users"
	ResourceAttendance Resource = "attendance"
	ResourceLeaves     Resource = "leaves"
	ResourceCalendar   Resource = "calendar"
)

// Endpoint describes one backend operation. Path may contain {name}
// placeholders, filled from Options.Params, and a fixed query part.
type Endpoint struct {
	Key      Key
	Resource Resource
	Method   string
	Path     string
	// Anonymous endpoints never carry the bearer token and report a non-2xx
	// answer as ErrAuth.
	Anonymous bool
}

// Endpoints is an immutable endpoint table.
type Endpoints struct {
	byKey map[Key]Endpoint
}

func NewEndpoints(list ...Endpoint) (*Endpoints, error) {
	t := &Endpoints{byKey: make(map[Key]Endpoint, len(list))}
	for _, e := range list {
		if e.Key == "" || e.Path == "" || e.Method == "" {
			return nil, fmt.Errorf("incomplete endpoint %q", e.Key)
		}
		if _, dup := t.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate endpoint %q", e.Key)
		}
		t.byKey[e.Key] = e
	}
	return t, nil
}

func (t *Endpoints) Lookup(k Key) (Endpoint, bool) {
	if t == nil {
		return Endpoint{}, false
	}
	e, ok := t.byKey[k]
	return e, ok
}

func (t *Endpoints) Len() int {
	return len(t.byKey)
}

var defaultEndpoints = []Endpoint{
	{KeyLogin, ResourceAuth, http.MethodPost, "/login/users", true},

	{KeyGetAllUsers, ResourceUsers, http.MethodGet, "/users/allusers", false},
	{KeyGetProfile, ResourceUsers, http.MethodGet, "/users/user/profile", false},
	{KeyCreateUser, ResourceUsers, http.MethodPost, "/users/create/user", false},
	{KeyUpdateUser, ResourceUsers, http.MethodPut, "/users/update/{id}", false},
	{KeyDeleteUser, ResourceUsers, http.MethodDelete, "/users/delete/{id}", false},
	{KeyResetPassword, ResourceUsers, http.MethodPut, "/users/reset_password/{id}", false},
	{KeyChangePassword, ResourceUsers, http.MethodPut, "/users/change_password", false},
	{KeyGetTeamLeads, ResourceUsers, http.MethodGet, "/users/team/leads", false},

	{KeyValidateImage, ResourceAttendance, http.MethodPost, "/attendace/validate/images?user_id={userId}", false},
	{KeyCheckIn, ResourceAttendance, http.MethodPost, "/attendace/checkin", false},
	{KeyCheckOut, ResourceAttendance, http.MethodPost, "/attendace/checkout", false},
	{KeyGetTodayAttendance, ResourceAttendance, http.MethodGet, "/attendace/get_attendance/{userId}/{date}", false},
	{KeyGetTeamAttendanceAnalysis, ResourceAttendance, http.MethodGet, "/attendace/hr/attendance/analysis/{date}", false},
	{KeyUpdateAttendance, ResourceAttendance, http.MethodPatch, "/attendace/hr/attendance/update", false},

	{KeyGetYearlyStats, ResourceLeaves, http.MethodGet, "/leaves/users/{id}/year/{year}/", false},
	{KeyGetMonthlyStats, ResourceLeaves, http.MethodGet, "/leaves/users/{id}/month/", false},
	{KeyApplyLeave, ResourceLeaves, http.MethodPost, "/leaves/apply", false},
	{KeyApplyPermission, ResourceLeaves, http.MethodPost, "/leaves/permission/apply/{userId}", false},
	{KeyGetAllApplications, ResourceLeaves, http.MethodGet, "/leaves/all/applications", false},
	{KeyReviewLeave, ResourceLeaves, http.MethodPost, "/leaves/applications/{id}/bulk-review", false},
	{KeyReviewPermission, ResourceLeaves, http.MethodPost, "/leaves/permission/review/{reviewerId}", false},
	{KeyGetLeaveDetails, ResourceLeaves, http.MethodGet, "/leaves/get/leave_application/details/?leave_application_id={id}", false},
	{KeyGetUserLeaveHistory, ResourceLeaves, http.MethodGet, "/leaves/get/user/leaves/{userId}", false},

	{KeyGetHolidays, ResourceCalendar, http.MethodGet, "/calendar/holidays/{year}", false},
	{KeyAddHolidays, ResourceCalendar, http.MethodPost, "/calendar/holidays", false},
	{KeyUpdateHolidays, ResourceCalendar, http.MethodPatch, "/calendar/update/holidays", false},
	{KeyDeleteHolidays, ResourceCalendar, http.MethodDelete, "/calendar/holidays", false},
}

// DefaultEndpoints returns the HRM backend endpoint table.
func DefaultEndpoints() *Endpoints {
	t, err := NewEndpoints(defaultEndpoints...)
	if err != nil {
		panic(err)
	}
	return t
}

// expand fills {name} placeholders. Values in the path are escaped as path
// segments and values in the query as query values.
func expand(template string, params map[string]string) (string, error) {
	path, query, hasQuery := strings.Cut(template, "?")

	p, err := fill(path, params, url.PathEscape)
	if err != nil {
		return "", err
	}
	if !hasQuery {
		return p, nil
	}

	q, err := fill(query, params, url.QueryEscape)
	if err != nil {
		return "", err
	}
	return p + "?" + q, nil
}

func fill(s string, params map[string]string, escape func(string) string) (string, error) {
	var b strings.Builder
	for {
		start := strings.IndexByte(s, '{')
		if start < 0 {
			b.WriteString(s)
			return b.String(), nil
		}
		end := strings.IndexByte(s[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in %q", s)
		}
		name := s[start+1 : start+end]
		v, ok := params[name]
		if !ok || v == "" {
			return "", fmt.Errorf("missing path parameter %q", name)
		}
		b.WriteString(s[:start])
		b.WriteString(escape(v))
		s = s[start+end+1:]
	}
}
