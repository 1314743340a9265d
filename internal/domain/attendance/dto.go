package attendance

type MarkRequest struct {
	PersonID string `json:"person_id" validate:"required"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Status   string `json:"status" validate:"required"`
}

// DayEntry is one person's attendance for a listed day, including people
// with no record (StatusNotMarked).
type DayEntry struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Role       string `json:"role"`
	Status     Status `json:"status"`
}

type DayResponse struct {
	Date    string     `json:"date"`
	Entries []DayEntry `json:"entries"`
}

type MonthlyResponse struct {
	PersonID string   `json:"person_id"`
	Month    string   `json:"month"` // YYYY-MM
	Records  []Record `json:"records"`
}
