package models

import (
	"errors"
	"strings"
	"time"
)

const LeaveSourceRegular = "regular"

// Sessions of a half day. Permission slots use the same values.
const (
	HalfDayMorning   = "morning"
	HalfDayAfternoon = "afternoon"
)

// LeaveRequest applies for leave over an inclusive date range.
type LeaveRequest struct {
	UserID      ID     `json:"user_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	LeaveSource string `json:"leave_source"`
	IsHalfDay   bool   `json:"is_half_day"`
	HalfDayDate string `json:"half_day_date,omitempty"`
	HalfDayType string `json:"half_day_type,omitempty"`
	Description string `json:"description"`
}

// PermissionRequest asks for a short absence inside a working day.
type PermissionRequest struct {
	PermissionDate    string `json:"permission_date"`
	PermissionMinutes int    `json:"permission_minutes"`
	PermissionSlot    string `json:"permission_slot"`
	PermissionUsedFor string `json:"permission_used_for"`
}

// Review actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// ReviewDecision is the reviewer's verdict on a single day of an application.
type ReviewDecision struct {
	Date    string `json:"date"`
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

type LeaveReview struct {
	ReviewerID ID               `json:"reviewer_id"`
	Decisions  []ReviewDecision `json:"decisions"`
}

type PermissionReview struct {
	PermissionID    ID     `json:"permission_id"`
	Action          string `json:"action"`
	ReviewerComment string `json:"reviewer_comment"`
}

var ErrInvalidRange = errors.New("end date is before start date")

// ExpandDecisions returns one approving decision per calendar day between
// start and end inclusive. Dates are in layout 2006-01-02.
func ExpandDecisions(start, end string) ([]ReviewDecision, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	var out []ReviewDecision
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, ReviewDecision{
			Date:    d.Format(time.DateOnly),
			Action:  ActionApprove,
			Comment: "Approved",
		})
	}
	return out, nil
}

// NormalizeDecision maps the statuses shown in application lists onto the
// review actions the backend accepts.
func NormalizeDecision(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve", "approved":
		return ActionApprove
	case "reject", "rejected":
		return ActionReject
	}
	return strings.ToLower(strings.TrimSpace(s))
}
