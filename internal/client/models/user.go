// Package models defines the payloads exchanged with the HRM backend and the
// cached user profile kept by the session store.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a backend identifier. The API is not consistent about sending ids as
// numbers or strings, so both are accepted and kept in textual form.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if json.Valid([]byte(id)) && isNumber(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or a string: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '-' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UserSummary is the cached projection of the signed-in user. It may be stale
// and is only used to gate what the client offers, never to authorise.
type UserSummary struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role,omitempty"`
	EmployeeID  string `json:"employ_id,omitempty"`
	Designation string `json:"designation,omitempty"`
	OfficeMail  string `json:"office_mail,omitempty"`
	Mobile      string `json:"mobile,omitempty"`

	// FirstLogin and PasswordUpdated are both reported by the backend for the
	// "must change password" state. They are kept as sent.
	FirstLogin      *bool `json:"firstlogin,omitempty"`
	PasswordUpdated *bool `json:"password_updated,omitempty"`
}

// PendingPasswordChange reports the firstlogin flag; false when absent.
func (u *UserSummary) PendingPasswordChange() bool {
	return u != nil && u.FirstLogin != nil && *u.FirstLogin
}

// NewUser is the create-user form. Designation and TeamLeadID only apply to
// recruiters; team members must name their lead.
type NewUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OfficeMail  string `json:"office_mail,omitempty"`
	Role        Role   `json:"role"`
	Mobile      string `json:"mobile,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	Designation string `json:"designation,omitempty"`
	TeamLeadID  string `json:"team_lead_id,omitempty"`
}

// Fields flattens the form for a multipart body, skipping empty values.
func (u NewUser) Fields() map[string]string {
	fields := map[string]string{}
	put := func(k, v string) {
		if strings.TrimSpace(v) != "" {
			fields[k] = v
		}
	}
	put("name", u.Name)
	put("email", u.Email)
	put("office_mail", u.OfficeMail)
	put("role", string(u.Role))
	put("mobile", u.Mobile)
	put("created_by", u.CreatedBy)
	if u.Role == RoleRecruiter {
		put("designation", u.Designation)
		if u.Designation == DesignationTeamMember {
			put("team_lead_id", u.TeamLeadID)
		}
	}
	return fields
}

// UserUpdate carries the editable user fields; nil pointers are not sent.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	OfficeMail  *string `json:"office_mail,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	Mobile      *string `json:"mobile,omitempty"`
	Designation *string `json:"designation,omitempty"`
	TeamLeadID  *string `json:"team_lead_id,omitempty"`
}

type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
