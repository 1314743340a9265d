package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/YeharaMewan/rise-hr-backend/internal/domain/attendance"
	"github.com/YeharaMewan/rise-hr-backend/internal/domain/person"
	"github.com/YeharaMewan/rise-hr-backend/internal/pkg/dayrange"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	personRepo     person.Repository
	offsetMinutes  int
}

func NewAttendanceService(attendanceRepo attendance.Repository, personRepo person.Repository, offsetMinutes int) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		personRepo:     personRepo,
		offsetMinutes:  offsetMinutes,
	}
}

// Mark upserts one person's status for a day. Only hr may mark someone
// other than themselves.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, actor attendance.Actor, req attendance.MarkRequest) (*attendance.Record, error) {
	if actor.Role != string(person.RoleHR) && actor.ID != req.PersonID {
		return nil, attendance.ErrCannotMarkOthers
	}

	status := attendance.Status(req.Status)
	if !status.Valid() {
		return nil, attendance.ErrInvalidStatus
	}

	if _, err := s.personRepo.FindByID(ctx, req.PersonID); err != nil {
		return nil, err
	}

	rng, err := dayrange.Normalize(req.Date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := attendance.Record{
		ID:        uuid.NewString(),
		PersonID:  req.PersonID,
		DateKey:   rng.Label,
		Date:      rng.Start,
		Status:    status,
		MarkedBy:  actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, _, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return saved, nil
}

// Day lists every active person with their status for the day; people
// without a record appear as Not Marked.
func (s *AttendanceServiceImpl) Day(ctx context.Context, date string) (*attendance.DayResponse, error) {
	rng, err := dayrange.Normalize(date, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	people, err := s.personRepo.FindByRole(ctx, []person.Role{person.RoleHR, person.RoleLeader, person.RoleLabour})
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	records, err := s.attendanceRepo.FindInRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	statusByPerson := make(map[string]attendance.Status, len(records))
	for _, rec := range records {
		statusByPerson[rec.PersonID] = rec.Status
	}

	entries := make([]attendance.DayEntry, 0, len(people))
	for _, p := range people {
		status, ok := statusByPerson[p.ID]
		if !ok {
			status = attendance.StatusNotMarked
		}
		entries = append(entries, attendance.DayEntry{
			PersonID:   p.ID,
			PersonName: p.Name,
			Role:       string(p.Role),
			Status:     status,
		})
	}

	return &attendance.DayResponse{Date: rng.Label, Entries: entries}, nil
}

// Monthly lists one person's records for a month. Year and month are
// required; zero values are a validation error.
func (s *AttendanceServiceImpl) Monthly(ctx context.Context, personID string, year, month int) (*attendance.MonthlyResponse, error) {
	if year == 0 || month == 0 {
		return nil, attendance.ErrMissingYearOrMonth
	}

	rng, err := dayrange.MonthRange(year, month, s.offsetMinutes)
	if err != nil {
		return nil, err
	}

	if _, err := s.personRepo.FindByID(ctx, personID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindByPersonInRange(ctx, personID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return &attendance.MonthlyResponse{
		PersonID: personID,
		Month:    rng.Label,
		Records:  records,
	}, nil
}
