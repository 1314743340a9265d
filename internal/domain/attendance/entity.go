package attendance

import "time"

// Status is the closed set of attendance categories. A person with no
// record for a day is implicitly StatusNotMarked.
type Status string

const (
	StatusPresent      Status = "Present"
	StatusWorkFromHome Status = "Work from home"
	StatusPlannedLeave Status = "Planned Leave"
	StatusSuddenLeave  Status = "Sudden Leave"
	StatusMedicalLeave Status = "Medical Leave"
	StatusHolidayLeave Status = "Holiday Leave"
	StatusLieuLeave    Status = "Lieu leave"
	StatusWorkFromOut  Status = "Work from out of Rise"
	StatusNotMarked    Status = "Not Marked"
)

// MarkableStatuses are the eight categories a user can record.
// StatusNotMarked only exists as the absence of a record.
func MarkableStatuses() []Status {
	return []Status{
		StatusPresent,
		StatusWorkFromHome,
		StatusPlannedLeave,
		StatusSuddenLeave,
		StatusMedicalLeave,
		StatusHolidayLeave,
		StatusLieuLeave,
		StatusWorkFromOut,
	}
}

// AllStatuses is MarkableStatuses plus StatusNotMarked, in breakdown order.
func AllStatuses() []Status {
	return append(MarkableStatuses(), StatusNotMarked)
}

func (s Status) Valid() bool {
	for _, known := range MarkableStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// IsWorking reports whether the status counts as actively contributing
// that day.
func (s Status) IsWorking() bool {
	return s == StatusPresent || s == StatusWorkFromHome || s == StatusWorkFromOut
}

// Record is one attendance entry per (person, calendar day). Uniqueness is
// enforced by upserting on (person_id, date_key).
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	PersonID  string    `bson:"person_id" json:"person_id"`
	DateKey   string    `bson:"date_key" json:"date_key"` // YYYY-MM-DD, company timezone
	Date      time.Time `bson:"date" json:"date"`         // UTC instant inside the day window
	Status    Status    `bson:"status" json:"status"`
	MarkedBy  string    `bson:"marked_by" json:"marked_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
