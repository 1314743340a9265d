package summary

import "context"

// Service produces the dashboard rollup for a day. date is YYYY-MM-DD or
// empty for today.
type Service interface {
	DailyStats(ctx context.Context, date string) (*DailySummary, error)
}
