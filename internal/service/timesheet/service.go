package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/domain/timesheet"
)

type timesheetServiceImpl struct {
	timesheetRepo timesheet.Repository
	staffRepo     staff.Repository
}

func NewTimesheetService(timesheetRepo timesheet.Repository, staffRepo staff.Repository) timesheet.Service {
	return &timesheetServiceImpl{timesheetRepo: timesheetRepo, staffRepo: staffRepo}
}

func (s *timesheetServiceImpl) Create(ctx context.Context, req timesheet.CreateRequest) (timesheet.Response, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Response{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return timesheet.Response{}, staff.ErrStaffNotFound
	}

	periodStart, _ := time.Parse("2006-01-02", req.PayPeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PayPeriodEnd)

	t := &timesheet.Timesheet{
		StaffID:        req.StaffID,
		ShiftID:        req.ShiftID,
		PayPeriodStart: periodStart,
		PayPeriodEnd:   periodEnd,
		HoursWorked:    req.HoursWorked,
		Status:         timesheet.StatusDraft,
		Notes:          req.Notes,
	}
	if err := s.timesheetRepo.Create(ctx, t); err != nil {
		return timesheet.Response{}, fmt.Errorf("failed to create timesheet: %w", err)
	}
	return timesheet.ToResponse(t), nil
}

func (s *timesheetServiceImpl) GetByID(ctx context.Context, id int64) (timesheet.Response, error) {
	t, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.Response{}, err
	}
	return timesheet.ToResponse(t), nil
}

func (s *timesheetServiceImpl) ListByStaff(ctx context.Context, staffID int64) ([]timesheet.Response, error) {
	timesheets, err := s.timesheetRepo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]timesheet.Response, 0, len(timesheets))
	for i := range timesheets {
		responses = append(responses, timesheet.ToResponse(&timesheets[i]))
	}
	return responses, nil
}

func (s *timesheetServiceImpl) Submit(ctx context.Context, id, staffID int64) (timesheet.Response, error) {
	t, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.Response{}, err
	}
	if t.StaffID != staffID {
		return timesheet.Response{}, timesheet.ErrNotTimesheetOwner
	}
	if t.Status == timesheet.StatusVerified {
		return timesheet.Response{}, timesheet.ErrTimesheetLocked
	}

	now := time.Now()
	t.Status = timesheet.StatusSubmitted
	t.SubmittedAt = &now
	if err := s.timesheetRepo.Update(ctx, t); err != nil {
		return timesheet.Response{}, fmt.Errorf("failed to submit timesheet: %w", err)
	}
	return timesheet.ToResponse(t), nil
}

func (s *timesheetServiceImpl) Verify(ctx context.Context, id, verifiedBy int64) (timesheet.Response, error) {
	t, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.Response{}, err
	}
	if t.Status != timesheet.StatusSubmitted {
		return timesheet.Response{}, timesheet.ErrTimesheetNotSubmitted
	}

	now := time.Now()
	t.Status = timesheet.StatusVerified
	t.VerifiedAt = &now
	t.VerifiedBy = &verifiedBy
	if err := s.timesheetRepo.Update(ctx, t); err != nil {
		return timesheet.Response{}, fmt.Errorf("failed to verify timesheet: %w", err)
	}
	return timesheet.ToResponse(t), nil
}

func (s *timesheetServiceImpl) Reject(ctx context.Context, id, verifiedBy int64, reason string) (timesheet.Response, error) {
	t, err := s.timesheetRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.Response{}, err
	}
	if t.Status != timesheet.StatusSubmitted {
		return timesheet.Response{}, timesheet.ErrTimesheetNotSubmitted
	}

	now := time.Now()
	t.Status = timesheet.StatusRejected
	t.VerifiedAt = &now
	t.VerifiedBy = &verifiedBy
	if reason != "" {
		t.Notes = reason
	}
	if err := s.timesheetRepo.Update(ctx, t); err != nil {
		return timesheet.Response{}, fmt.Errorf("failed to reject timesheet: %w", err)
	}
	return timesheet.ToResponse(t), nil
}
