package allocation

import (
	"context"
	"time"
)

type Repository interface {
	// FindLabourSnapshot returns the most recently updated labour snapshot
	// whose Date falls in [start, end], or nil when none exists.
	FindLabourSnapshot(ctx context.Context, start, end time.Time) (*LabourSnapshot, error)
	FindTaskSnapshot(ctx context.Context, start, end time.Time) (*TaskSnapshot, error)
	// UpsertLabourSnapshot writes the snapshot keyed by date_key so a day
	// can never accumulate duplicates. It reports whether an existing
	// snapshot was replaced.
	UpsertLabourSnapshot(ctx context.Context, snap LabourSnapshot) (*LabourSnapshot, bool, error)
	UpsertTaskSnapshot(ctx context.Context, snap TaskSnapshot) (*TaskSnapshot, bool, error)
}
