package summary

import (
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
)

// Input carries one day's already-fetched collections into the aggregation
// engine. The engine performs no I/O; any input may be empty or nil and the
// computation degrades to zeros.
type Input struct {
	People          []person.Person
	AttendanceToday []attendance.Record
	Tasks           []task.Task
	LabourSnapshot  *allocation.LabourSnapshot
	TaskSnapshot    *allocation.TaskSnapshot
}

// CompanyBreakdown is the display split of external-company headcounts.
// Categories are matched by case-insensitive substring; the total never
// depends on exact naming.
type CompanyBreakdown struct {
	CodegenAigrow  int `json:"codegen_aigrow"`
	RamStudios     int `json:"ram_studios"`
	RiseTechnology int `json:"rise_technology"`
	Other          int `json:"other"`
}

// DailySummary is the rollup served to the dashboard. Every field is
// populated even when the inputs are empty.
type DailySummary struct {
	Date string `json:"date"` // YYYY-MM-DD

	TotalLeaders       int `json:"total_leaders"`
	WorkingLeaderCount int `json:"working_leader_count"`
	PresentLeaderCount int `json:"present_leader_count"`

	TotalLabours       int `json:"total_labours"`
	WorkingLabourCount int `json:"working_labour_count"` // from raw attendance

	AllocatedLabourCount int              `json:"allocated_labour_count"`
	CompanyHeadcount     int              `json:"company_headcount"`
	CompanyBreakdown     CompanyBreakdown `json:"company_breakdown"`

	// GrandTotal sums working leaders, attendance-derived working labours,
	// snapshot-derived allocated labours and company headcount. The labour
	// contribution can appear twice (raw attendance vs snapshot); this is
	// the established reporting behavior.
	GrandTotal int `json:"grand_total"`

	AttendanceStatusBreakdown map[attendance.Status]int `json:"attendance_status_breakdown"`
	AttendanceRate            int                       `json:"attendance_rate"` // percent, leaders only

	ActiveTasks    int `json:"active_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	TotalTasks     int `json:"total_tasks"`
}
