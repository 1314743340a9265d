package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// FindInRange returns all records whose Date falls in [start, end].
	FindInRange(ctx context.Context, start, end time.Time) ([]Record, error)
	FindByPersonInRange(ctx context.Context, personID string, start, end time.Time) ([]Record, error)
	// Upsert writes the record keyed by (person_id, date_key), replacing any
	// existing entry for that person and day. It reports whether an existing
	// record was replaced.
	Upsert(ctx context.Context, rec Record) (*Record, bool, error)
}
