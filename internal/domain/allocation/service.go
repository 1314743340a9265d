package allocation

import "context"

type Service interface {
	// LeadersStatus lists every active leader with today's attendance
	// status and current task/labour workload.
	LeadersStatus(ctx context.Context) (*LeadersStatusResponse, error)
	SaveLabourSnapshot(ctx context.Context, savedBy string, req SaveLabourSnapshotRequest) (*LabourSnapshot, error)
	// SaveTaskSnapshot rebuilds the day's task rollup from the live task
	// list and persists it.
	SaveTaskSnapshot(ctx context.Context, savedBy string, req SaveTaskSnapshotRequest) (*TaskSnapshot, error)
	UpdateCompanyStats(ctx context.Context, savedBy string, req UpdateCompanyStatsRequest) (*LabourSnapshot, error)
	// AutoSave persists both of today's snapshots from live data. Used by
	// the periodic auto-save job; errors are reported, not retried.
	AutoSave(ctx context.Context) error
}
