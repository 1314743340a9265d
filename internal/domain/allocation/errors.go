package allocation

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found for this day")
	ErrEmptyAllocations = errors.New("leader allocations must be a non-empty list")
)
