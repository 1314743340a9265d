package summary

import (
	"math"
	"strings"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/summary"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
)

// Compute derives the daily rollup from already-fetched inputs. It is a
// pure function: no I/O, no errors. Missing or empty inputs degrade to
// zero counts, never to nil fields.
func Compute(label string, in summary.Input) summary.DailySummary {
	out := summary.DailySummary{
		Date:                      label,
		AttendanceStatusBreakdown: emptyBreakdown(),
	}

	var leaders, labours []person.Person
	for _, p := range in.People {
		if !p.IsActive {
			continue
		}
		switch p.Role {
		case person.RoleLeader:
			leaders = append(leaders, p)
		case person.RoleLabour:
			labours = append(labours, p)
		}
	}
	out.TotalLeaders = len(leaders)
	out.TotalLabours = len(labours)

	statusByPerson := make(map[string]attendance.Status, len(in.AttendanceToday))
	for _, rec := range in.AttendanceToday {
		statusByPerson[rec.PersonID] = rec.Status
	}

	for _, leader := range leaders {
		status := leaderStatus(statusByPerson, leader.ID)
		out.AttendanceStatusBreakdown[status]++
		if status.IsWorking() {
			out.WorkingLeaderCount++
		}
		if status == attendance.StatusPresent {
			out.PresentLeaderCount++
		}
	}

	for _, labour := range labours {
		if statusByPerson[labour.ID].IsWorking() {
			out.WorkingLabourCount++
		}
	}

	out.AllocatedLabourCount = allocatedLabourCount(in.LabourSnapshot, out.WorkingLabourCount)

	if in.LabourSnapshot != nil {
		out.CompanyHeadcount = in.LabourSnapshot.CompanyTotal()
		out.CompanyBreakdown = companyBreakdown(in.LabourSnapshot.CompanyStats)
	}

	// The labour contribution may be counted from both sources here; the
	// dashboard has always reported the gross figure.
	out.GrandTotal = out.WorkingLeaderCount + out.WorkingLabourCount +
		out.AllocatedLabourCount + out.CompanyHeadcount

	out.ActiveTasks, out.CompletedTasks, out.TotalTasks = taskCounts(in.Tasks, in.TaskSnapshot)

	if out.TotalLeaders > 0 {
		out.AttendanceRate = int(math.Round(float64(out.PresentLeaderCount) / float64(out.TotalLeaders) * 100))
	}

	return out
}

func emptyBreakdown() map[attendance.Status]int {
	breakdown := make(map[attendance.Status]int, len(attendance.AllStatuses()))
	for _, s := range attendance.AllStatuses() {
		breakdown[s] = 0
	}
	return breakdown
}

// leaderStatus resolves a leader's status for the day. No record, or a
// record carrying a status outside the closed set, reads as Not Marked.
func leaderStatus(statusByPerson map[string]attendance.Status, leaderID string) attendance.Status {
	status, ok := statusByPerson[leaderID]
	if !ok || !status.Valid() {
		return attendance.StatusNotMarked
	}
	return status
}

// allocatedLabourCount resolves the day's allocated-labour figure:
// snapshot total, else the sum of its per-leader breakdown (snapshots
// saved before the total field existed stored only the breakdown), else
// the attendance-derived working labour count when no snapshot exists.
func allocatedLabourCount(snap *allocation.LabourSnapshot, workingLabours int) int {
	if snap == nil {
		return workingLabours
	}
	return snap.TotalOrSum()
}

func companyBreakdown(stats []allocation.CompanyStat) summary.CompanyBreakdown {
	var breakdown summary.CompanyBreakdown
	for _, cs := range stats {
		name := strings.ToLower(cs.Name)
		switch {
		case strings.Contains(name, "codegen") || strings.Contains(name, "aigrow"):
			breakdown.CodegenAigrow += cs.Count
		case strings.Contains(name, "ram studios"):
			breakdown.RamStudios += cs.Count
		case strings.Contains(name, "rise technology"):
			breakdown.RiseTechnology += cs.Count
		default:
			breakdown.Other += cs.Count
		}
	}
	return breakdown
}

// taskCounts prefers the live task list; a snapshot stands in for it on
// historical days, where live recomputation is not attempted.
func taskCounts(tasks []task.Task, snap *allocation.TaskSnapshot) (active, completed, total int) {
	if len(tasks) > 0 {
		for _, t := range tasks {
			if t.Status.IsActive() {
				active++
			}
			if t.Status.IsCompleted() {
				completed++
			}
		}
		return active, completed, len(tasks)
	}

	if snap == nil {
		return 0, 0, 0
	}
	for _, entry := range snap.TaskAllocations {
		if entry.Status.IsActive() {
			active++
		}
		if entry.Status.IsCompleted() {
			completed++
		}
	}
	return active, completed, len(snap.TaskAllocations)
}
