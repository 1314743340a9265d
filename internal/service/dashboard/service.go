package dashboard

import (
	"context"
	"log/slog"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/allocation"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/summary"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/task"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/dayrange"
	summaryEngine "github.com/YeharaMewan/rise-hr-backend/internal/service/summary"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	personRepo     person.Repository
	attendanceRepo attendance.Repository
	taskRepo       task.Repository
	allocationRepo allocation.Repository
	offsetMinutes  int
	logger         *slog.Logger
}

func NewDashboardService(
	personRepo person.Repository,
	attendanceRepo attendance.Repository,
	taskRepo task.Repository,
	allocationRepo allocation.Repository,
	offsetMinutes int,
	logger *slog.Logger,
) summary.Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardServiceImpl{
		personRepo:     personRepo,
		attendanceRepo: attendanceRepo,
		taskRepo:       taskRepo,
		allocationRepo: allocationRepo,
		offsetMinutes:  offsetMinutes,
		logger:         logger,
	}
}

// DailyStats computes the day's rollup. Inputs are fetched in parallel;
// a sub-query failure degrades that input to empty rather than failing
// the request, so a partial outage yields zero counts instead of an error.
func (s *DashboardServiceImpl) DailyStats(ctx context.Context, date string) (*summary.DailySummary, error) {
	rng, err := dayrange.Normalize(date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	today, _ := dayrange.Normalize("", s.offsetMinutes)
	isToday := rng.Label == today.Label

	var in summary.Input

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		people, err := s.personRepo.FindByRole(gCtx, []person.Role{person.RoleLeader, person.RoleLabour})
		if err != nil {
			s.logger.Warn("dashboard: people fetch failed, degrading to empty", "error", err)
			return nil
		}
		in.People = people
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.FindInRange(gCtx, rng.Start, rng.End)
		if err != nil {
			s.logger.Warn("dashboard: attendance fetch failed, degrading to empty", "error", err)
			return nil
		}
		in.AttendanceToday = records
		return nil
	})

	g.Go(func() error {
		snap, err := s.allocationRepo.FindLabourSnapshot(gCtx, rng.Start, rng.End)
		if err != nil {
			s.logger.Warn("dashboard: labour snapshot fetch failed, degrading to absent", "error", err)
			return nil
		}
		in.LabourSnapshot = snap
		return nil
	})

	// Today is recomputed from the live task list; historical days read
	// the task snapshot only.
	if isToday {
		g.Go(func() error {
			tasks, err := s.taskRepo.List(gCtx, task.Filter{})
			if err != nil {
				s.logger.Warn("dashboard: task fetch failed, degrading to empty", "error", err)
				return nil
			}
			in.Tasks = tasks
			return nil
		})
	} else {
		g.Go(func() error {
			snap, err := s.allocationRepo.FindTaskSnapshot(gCtx, rng.Start, rng.End)
			if err != nil {
				s.logger.Warn("dashboard: task snapshot fetch failed, degrading to absent", "error", err)
				return nil
			}
			in.TaskSnapshot = snap
			return nil
		})
	}

	// Goroutines only ever return nil; Wait is kept for the context wiring.
	_ = g.Wait()

	result := summaryEngine.Compute(rng.Label, in)
	return &result, nil
}
