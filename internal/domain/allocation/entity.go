package allocation

import (
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
)

// LeaderAllocation is one leader's slice of a day's labour allocation.
type LeaderAllocation struct {
	LeaderID         string            `bson:"leader_id" json:"leader_id"`
	LeaderName       string            `bson:"leader_name" json:"leader_name"`
	LabourCount      int               `bson:"labour_count" json:"labour_count"`
	TasksCount       int               `bson:"tasks_count" json:"tasks_count"`
	AttendanceStatus attendance.Status `bson:"attendance_status" json:"attendance_status"`
}

// CompanyStat is an editable named external-company headcount.
type CompanyStat struct {
	Name  string `bson:"name" json:"name"`
	Count int    `bson:"count" json:"count"`
}

// LabourSnapshot is the persisted per-day labour allocation rollup. It is
// derived data; today's figures are always recomputed from live records.
type LabourSnapshot struct {
	ID                string             `bson:"_id,omitempty" json:"id"`
	DateKey           string             `bson:"date_key" json:"date_key"` // YYYY-MM-DD
	Date              time.Time          `bson:"date" json:"date"`
	TotalLabourCount  int                `bson:"total_labour_count" json:"total_labour_count"`
	LeaderAllocations []LeaderAllocation `bson:"leader_allocations" json:"leader_allocations"`
	CompanyStats      []CompanyStat      `bson:"company_stats" json:"company_stats"`
	SavedBy           string             `bson:"saved_by" json:"saved_by"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

// TaskEntry is one task's summary inside a day's task snapshot.
type TaskEntry struct {
	TaskID          string      `bson:"task_id" json:"task_id"`
	Title           string      `bson:"title" json:"title"`
	Status          task.Status `bson:"status" json:"status"`
	LeaderID        string      `bson:"leader_id" json:"leader_id"`
	LeaderName      string      `bson:"leader_name" json:"leader_name"`
	LabourCount     int         `bson:"labour_count" json:"labour_count"`
	ExpectedManDays int         `bson:"expected_man_days" json:"expected_man_days"`
}

type TaskSummary struct {
	Active    int `bson:"active" json:"active"`
	Completed int `bson:"completed" json:"completed"`
	Total     int `bson:"total" json:"total"`
}

// TaskSnapshot is the per-day task allocation rollup.
type TaskSnapshot struct {
	ID              string      `bson:"_id,omitempty" json:"id"`
	DateKey         string      `bson:"date_key" json:"date_key"`
	Date            time.Time   `bson:"date" json:"date"`
	TaskAllocations []TaskEntry `bson:"task_allocations" json:"task_allocations"`
	Summary         TaskSummary `bson:"summary" json:"summary"`
	SavedBy         string      `bson:"saved_by" json:"saved_by"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}

// TotalOrSum resolves the snapshot's labour total, recomputing from the
// per-leader breakdown when the stored total is zero. Snapshots written
// before the total field existed stored only the breakdown.
func (s LabourSnapshot) TotalOrSum() int {
	if s.TotalLabourCount > 0 {
		return s.TotalLabourCount
	}
	sum := 0
	for _, la := range s.LeaderAllocations {
		sum += la.LabourCount
	}
	return sum
}

// CompanyTotal sums all company-stat headcounts.
func (s LabourSnapshot) CompanyTotal() int {
	total := 0
	for _, cs := range s.CompanyStats {
		total += cs.Count
	}
	return total
}
