package attendance

import "context"

// Actor identifies the authenticated caller for role checks.
type Actor struct {
	ID   string
	Role string
}

type Service interface {
	// Mark records a status for a person and day. Non-hr actors may only
	// mark themselves.
	Mark(ctx context.Context, actor Actor, req MarkRequest) (*Record, error)
	// Day lists every active person with their status for the given day.
	Day(ctx context.Context, date string) (*DayResponse, error)
	// Monthly lists one person's records for a month.
	Monthly(ctx context.Context, personID string, year, month int) (*MonthlyResponse, error)
}
