package models

// Holiday types used by the calendar screen.
const (
	HolidayPublic   = "public"
	HolidayOptional = "optional"
)

type Holiday struct {
	Name        string `json:"name"`
	HolidayDate string `json:"holiday_date"`
	Description string `json:"description,omitempty"`
	HolidayType string `json:"holiday_type"`
	Year        int    `json:"year"`
}

type HolidayUpdate struct {
	ID          ID     `json:"id"`
	Name        string `json:"name,omitempty"`
	HolidayDate string `json:"holiday_date,omitempty"`
	Description string `json:"description,omitempty"`
	HolidayType string `json:"holiday_type,omitempty"`
}
