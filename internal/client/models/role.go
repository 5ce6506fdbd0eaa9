package models

import (
	"slices"
	"strings"
)

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleHR         Role = "hr"
	RoleRecruiter  Role = "recruiter"
	RoleEmployee   Role = "employee"
)

// Recruiter designations.
const (
	DesignationTeamLead   = "team_leader"
	DesignationTeamMember = "team_member"
)

// Normalize lower-cases and trims r; the backend is not consistent about case.
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// IsManager reports whether r may review leave, correct attendance and edit
// the holiday calendar.
func (r Role) IsManager() bool {
	switch r.Normalize() {
	case RoleSuperAdmin, RoleAdmin, RoleHR:
		return true
	}
	return false
}

// CreatableRoles lists the roles r may assign when creating users.
func (r Role) CreatableRoles() []Role {
	switch r.Normalize() {
	case RoleSuperAdmin:
		return []Role{RoleAdmin, RoleHR, RoleRecruiter}
	case RoleAdmin:
		return []Role{RoleHR, RoleRecruiter}
	case RoleHR:
		return []Role{RoleRecruiter}
	}
	return nil
}

// CanSee reports whether a user with role r is shown users with role target
// in the user list.
func (r Role) CanSee(target Role) bool {
	target = target.Normalize()
	switch r.Normalize() {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return slices.Contains([]Role{RoleHR, RoleRecruiter, RoleEmployee}, target)
	case RoleHR:
		return slices.Contains([]Role{RoleRecruiter, RoleEmployee}, target)
	}
	return false
}
