package allocation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/dayrange"
)

// autoSaveActor marks snapshots written by the periodic job; replacing an
// earlier snapshot is routine there and not worth a duplicate warning.
const autoSaveActor = "auto-save"

type AllocationServiceImpl struct {
	allocationRepo allocation.Repository
	personRepo     person.Repository
	attendanceRepo attendance.Repository
	taskRepo       task.Repository
	offsetMinutes  int
	logger         *slog.Logger
}

func NewAllocationService(
	allocationRepo allocation.Repository,
	personRepo person.Repository,
	attendanceRepo attendance.Repository,
	taskRepo task.Repository,
	offsetMinutes int,
	logger *slog.Logger,
) allocation.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &AllocationServiceImpl{
		allocationRepo: allocationRepo,
		personRepo:     personRepo,
		attendanceRepo: attendanceRepo,
		taskRepo:       taskRepo,
		offsetMinutes:  offsetMinutes,
		logger:         logger,
	}
}

func (s *AllocationServiceImpl) LeadersStatus(ctx context.Context) (*allocation.LeadersStatusResponse, error) {
	rng, err := dayrange.Normalize("", s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	leaders, err := s.buildLeaderStatuses(ctx, rng)
	if err != nil {
		return nil, err
	}

	return &allocation.LeadersStatusResponse{Date: rng.Label, Leaders: leaders}, nil
}

// buildLeaderStatuses annotates every active leader with today's
// attendance status and current task/labour workload.
func (s *AllocationServiceImpl) buildLeaderStatuses(ctx context.Context, rng dayrange.Range) ([]allocation.LeaderStatus, error) {
	leaders, err := s.personRepo.FindByRole(ctx, []person.Role{person.RoleLeader})
	if err != nil {
		return nil, fmt.Errorf("failed to list leaders: %w", err)
	}

	records, err := s.attendanceRepo.FindInRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	statusByPerson := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		statusByPerson[rec.PersonID] = rec.Status
	}

	tasks, err := s.taskRepo.List(ctx, task.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	tasksByLeader := make(map[string][]task.Task)
	for _, t := range tasks {
		tasksByLeader[t.LeaderID] = append(tasksByLeader[t.LeaderID], t)
	}

	statuses := make([]allocation.LeaderStatus, 0, len(leaders))
	for _, leader := range leaders {
		status, ok := statusByPerson[leader.ID]
		if !ok {
			status = attendance.StatusNotMarked
		}

		labourCount := 0
		for _, t := range tasksByLeader[leader.ID] {
			labourCount += t.AllocationCount()
		}

		statuses = append(statuses, allocation.LeaderStatus{
			LeaderID:         leader.ID,
			LeaderName:       leader.Name,
			AttendanceStatus: status,
			IsWorking:        status.IsWorking(),
			TasksCount:       len(tasksByLeader[leader.ID]),
			LabourCount:      labourCount,
		})
	}
	return statuses, nil
}

func (s *AllocationServiceImpl) SaveLabourSnapshot(ctx context.Context, savedBy string, req allocation.SaveLabourSnapshotRequest) (*allocation.LabourSnapshot, error) {
	if len(req.LeaderAllocations) == 0 {
		return nil, allocation.ErrEmptyAllocations
	}

	rng, err := dayrange.Normalize(req.Date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	leaderAllocations := make([]allocation.LeaderAllocation, 0, len(req.LeaderAllocations))
	sum := 0
	for _, item := range req.LeaderAllocations {
		leaderAllocations = append(leaderAllocations, allocation.LeaderAllocation{
			LeaderID:         item.LeaderID,
			LeaderName:       item.LeaderName,
			LabourCount:      item.LabourCount,
			TasksCount:       item.TasksCount,
			AttendanceStatus: attendance.Status(item.AttendanceStatus),
		})
		sum += item.LabourCount
	}

	total := req.TotalLabourCount
	if total == 0 {
		total = sum
	}

	now := time.Now().UTC()
	snap := allocation.LabourSnapshot{
		DateKey:           rng.Label,
		Date:              rng.Start,
		TotalLabourCount:  total,
		LeaderAllocations: leaderAllocations,
		CompanyStats:      companyStats(req.CompanyStats),
		SavedBy:           savedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, replaced, err := s.allocationRepo.UpsertLabourSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to save labour snapshot: %w", err)
	}
	if replaced && savedBy != autoSaveActor {
		s.logger.Warn("labour snapshot already existed for day, replaced", "date", rng.Label, "saved_by", savedBy)
	}
	return saved, nil
}

// SaveTaskSnapshot rebuilds the day's task rollup from the live task list.
func (s *AllocationServiceImpl) SaveTaskSnapshot(ctx context.Context, savedBy string, req allocation.SaveTaskSnapshotRequest) (*allocation.TaskSnapshot, error) {
	rng, err := dayrange.Normalize(req.Date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, task.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	entries := make([]allocation.TaskEntry, 0, len(tasks))
	var summary allocation.TaskSummary
	for _, t := range tasks {
		entries = append(entries, allocation.TaskEntry{
			TaskID:          t.ID,
			Title:           t.Title,
			Status:          t.Status,
			LeaderID:        t.LeaderID,
			LeaderName:      t.LeaderName,
			LabourCount:     t.AllocationCount(),
			ExpectedManDays: t.ExpectedManDays,
		})
		if t.Status.IsActive() {
			summary.Active++
		}
		if t.Status.IsCompleted() {
			summary.Completed++
		}
	}
	summary.Total = len(tasks)

	now := time.Now().UTC()
	snap := allocation.TaskSnapshot{
		DateKey:         rng.Label,
		Date:            rng.Start,
		TaskAllocations: entries,
		Summary:         summary,
		SavedBy:         savedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	saved, replaced, err := s.allocationRepo.UpsertTaskSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to save task snapshot: %w", err)
	}
	if replaced && savedBy != autoSaveActor {
		s.logger.Warn("task snapshot already existed for day, replaced", "date", rng.Label, "saved_by", savedBy)
	}
	return saved, nil
}

// UpdateCompanyStats edits the named external-company headcounts on the
// day's labour snapshot, creating a bare snapshot when none exists yet.
func (s *AllocationServiceImpl) UpdateCompanyStats(ctx context.Context, savedBy string, req allocation.UpdateCompanyStatsRequest) (*allocation.LabourSnapshot, error) {
	rng, err := dayrange.Normalize(req.Date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	existing, err := s.allocationRepo.FindLabourSnapshot(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load labour snapshot: %w", err)
	}

	now := time.Now().UTC()
	var snap allocation.LabourSnapshot
	if existing != nil {
		snap = *existing
	} else {
		snap = allocation.LabourSnapshot{
			DateKey:           rng.Label,
			Date:              rng.Start,
			LeaderAllocations: []allocation.LeaderAllocation{},
			CreatedAt:         now,
		}
	}
	snap.CompanyStats = companyStats(req.CompanyStats)
	snap.SavedBy = savedBy
	snap.UpdatedAt = now

	saved, _, err := s.allocationRepo.UpsertLabourSnapshot(ctx, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to save company stats: %w", err)
	}
	return saved, nil
}

// AutoSave persists both of today's snapshots from live data. Company
// stats already saved for the day are carried over, not clobbered.
func (s *AllocationServiceImpl) AutoSave(ctx context.Context) error {
	rng, err := dayrange.Normalize("", s.offsetMinutes)
	if err != nil {
		return err
	}

	leaders, err := s.buildLeaderStatuses(ctx, rng)
	if err != nil {
		return err
	}

	existing, err := s.allocationRepo.FindLabourSnapshot(ctx, rng.Start, rng.End)
	if err != nil {
		return fmt.Errorf("failed to load labour snapshot: %w", err)
	}

	leaderAllocations := make([]allocation.LeaderAllocation, 0, len(leaders))
	total := 0
	for _, ls := range leaders {
		leaderAllocations = append(leaderAllocations, allocation.LeaderAllocation{
			LeaderID:         ls.LeaderID,
			LeaderName:       ls.LeaderName,
			LabourCount:      ls.LabourCount,
			TasksCount:       ls.TasksCount,
			AttendanceStatus: ls.AttendanceStatus,
		})
		total += ls.LabourCount
	}

	now := time.Now().UTC()
	snap := allocation.LabourSnapshot{
		DateKey:           rng.Label,
		Date:              rng.Start,
		TotalLabourCount:  total,
		LeaderAllocations: leaderAllocations,
		CompanyStats:      []allocation.CompanyStat{},
		SavedBy:           autoSaveActor,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if existing != nil {
		snap.CompanyStats = existing.CompanyStats
		snap.CreatedAt = existing.CreatedAt
	}

	if _, _, err := s.allocationRepo.UpsertLabourSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("failed to auto-save labour snapshot: %w", err)
	}

	if _, err := s.SaveTaskSnapshot(ctx, autoSaveActor, allocation.SaveTaskSnapshotRequest{}); err != nil {
		return err
	}
	return nil
}

func companyStats(items []allocation.CompanyStatItem) []allocation.CompanyStat {
	stats := make([]allocation.CompanyStat, 0, len(items))
	for _, item := range items {
		stats = append(stats, allocation.CompanyStat{Name: item.Name, Count: item.Count})
	}
	return stats
}
