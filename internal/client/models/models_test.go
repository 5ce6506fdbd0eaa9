package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"number", `1`, "1"},
		{"string", `"abc-1"`, "abc-1"},
		{"null", `null`, ""},
		{"large", `12345678901234`, "12345678901234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestID_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A ID `json:"a"`
		B ID `json:"b"`
	}{A: "7", B: "u-7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":7,"b":"u-7"}`, string(b))
}

func TestUserSummary_Decode(t *testing.T) {
	var u UserSummary
	err := json.Unmarshal([]byte(`{"id":1,"name":"A","role":"hr","employ_id":"E1","firstlogin":true}`), &u)
	require.NoError(t, err)

	assert.Equal(t, ID("1"), u.ID)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, RoleHR, u.Role)
	assert.Equal(t, "E1", u.EmployeeID)
	assert.True(t, u.PendingPasswordChange())
	assert.Nil(t, u.PasswordUpdated)

	var nilUser *UserSummary
	assert.False(t, nilUser.PendingPasswordChange())
}

func TestNewUser_Fields(t *testing.T) {
	u := NewUser{
		Name:        "Bob",
		Email:       "bob@x.io",
		Role:        RoleRecruiter,
		Designation: DesignationTeamMember,
		TeamLeadID:  "9",
	}
	f := u.Fields()
	assert.Equal(t, "Bob", f["name"])
	assert.Equal(t, "recruiter", f["role"])
	assert.Equal(t, "9", f["team_lead_id"])
	assert.NotContains(t, f, "mobile")

	u.Role = RoleHR
	f = u.Fields()
	assert.NotContains(t, f, "designation")
	assert.NotContains(t, f, "team_lead_id")
}

func TestBackendVocabulary(t *testing.T) {
	assert.Equal(t, "team_leader", DesignationTeamLead)
	assert.Equal(t, "team_member", DesignationTeamMember)
	assert.Equal(t, "morning", HalfDayMorning)
	assert.Equal(t, "afternoon", HalfDayAfternoon)

	f := NewUser{Role: RoleRecruiter, Designation: DesignationTeamLead}.Fields()
	assert.Equal(t, "team_leader", f["designation"])
	assert.NotContains(t, f, "team_lead_id")
}

func TestRole(t *testing.T) {
	assert.True(t, Role(" Admin ").IsManager())
	assert.True(t, RoleHR.IsManager())
	assert.False(t, RoleRecruiter.IsManager())

	assert.Equal(t, []Role{RoleHR, RoleRecruiter}, RoleAdmin.CreatableRoles())
	assert.Nil(t, RoleEmployee.CreatableRoles())

	assert.True(t, RoleSuperAdmin.CanSee(RoleAdmin))
	assert.False(t, RoleAdmin.CanSee(RoleSuperAdmin))
	assert.True(t, RoleHR.CanSee(RoleEmployee))
	assert.False(t, RoleHR.CanSee(RoleAdmin))
	assert.False(t, RoleEmployee.CanSee(RoleEmployee))
}

func TestExpandDecisions(t *testing.T) {
	got, err := ExpandDecisions("2025-02-27", "2025-03-02")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "2025-02-27", got[0].Date)
	assert.Equal(t, "2025-03-02", got[3].Date)
	for _, d := range got {
		assert.Equal(t, ActionApprove, d.Action)
		assert.Equal(t, "Approved", d.Comment)
	}

	one, err := ExpandDecisions("2025-01-01", "2025-01-01")
	require.NoError(t, err)
	assert.Len(t, one, 1)

	_, err = ExpandDecisions("2025-01-02", "2025-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ExpandDecisions("bad", "2025-01-01")
	assert.Error(t, err)
}

func TestNormalizeDecision(t *testing.T) {
	assert.Equal(t, ActionApprove, NormalizeDecision("Approved"))
	assert.Equal(t, ActionReject, NormalizeDecision("rejected"))
	assert.Equal(t, ActionReject, NormalizeDecision("reject"))
	assert.Equal(t, "pending", NormalizeDecision(" Pending"))
}

func TestLeaveRequest_JSON(t *testing.T) {
	b, err := json.Marshal(LeaveRequest{
		UserID:      "3",
		StartDate:   "2025-01-01",
		EndDate:     "2025-01-02",
		LeaveSource: LeaveSourceRegular,
		Description: "trip",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":3,"start_date":"2025-01-01","end_date":"2025-01-02",
		"leave_source":"regular","is_half_day":false,"description":"trip"}`, string(b))
}
