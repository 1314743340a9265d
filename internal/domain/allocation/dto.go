package allocation

import "github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"

// LeaderStatus annotates a leader with today's attendance and workload,
// for the allocation screen.
type LeaderStatus struct {
	LeaderID         string            `json:"leader_id"`
	LeaderName       string            `json:"leader_name"`
	AttendanceStatus attendance.Status `json:"attendance_status"`
	IsWorking        bool              `json:"is_working"`
	TasksCount       int               `json:"tasks_count"`
	LabourCount      int               `json:"labour_count"`
}

type LeadersStatusResponse struct {
	Date    string         `json:"date"`
	Leaders []LeaderStatus `json:"leaders"`
}

type SaveLabourSnapshotRequest struct {
	Date              string                 `json:"date,omitempty"` // defaults to today
	TotalLabourCount  int                    `json:"total_labour_count" validate:"gte=0"`
	LeaderAllocations []LeaderAllocationItem `json:"leader_allocations" validate:"required,dive"`
	CompanyStats      []CompanyStatItem      `json:"company_stats" validate:"dive"`
}

type LeaderAllocationItem struct {
	LeaderID         string `json:"leader_id" validate:"required"`
	LeaderName       string `json:"leader_name"`
	LabourCount      int    `json:"labour_count" validate:"gte=0"`
	TasksCount       int    `json:"tasks_count" validate:"gte=0"`
	AttendanceStatus string `json:"attendance_status"`
}

type CompanyStatItem struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gte=0"`
}

type SaveTaskSnapshotRequest struct {
	Date string `json:"date,omitempty"` // defaults to today
}

type UpdateCompanyStatsRequest struct {
	Date         string            `json:"date,omitempty"`
	CompanyStats []CompanyStatItem `json:"company_stats" validate:"required,dive"`
}
