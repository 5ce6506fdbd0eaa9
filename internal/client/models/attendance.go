package models

// CheckIn is posted when a user starts the day after face validation.
type CheckIn struct {
	UserID      ID     `json:"user_id"`
	CheckInTime string `json:"check_in_time"`
}

type CheckOut struct {
	UserID       ID     `json:"user_id"`
	CheckOutTime string `json:"check_out_time"`
}

// AttendanceCorrection is an HR override of a user's recorded times for a
// single day. Times are wall-clock timestamps; empty values are not sent.
type AttendanceCorrection struct {
	UserID          ID     `json:"user_id"`
	AttendanceDate  string `json:"attendance_date"`
	HRUserID        ID     `json:"hr_user_id"`
	HRComments      string `json:"hr_comments,omitempty"`
	NewCheckInTime  string `json:"new_check_in_time,omitempty"`
	NewCheckOutTime string `json:"new_check_out_time,omitempty"`
}
