package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/shift"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
)

type shiftServiceImpl struct {
	shiftRepo shift.Repository
	staffRepo staff.Repository
}

func NewShiftService(shiftRepo shift.Repository, staffRepo staff.Repository) shift.Service {
	return &shiftServiceImpl{shiftRepo: shiftRepo, staffRepo: staffRepo}
}

func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateRequest) (shift.Response, error) {
	if err := req.Validate(); err != nil {
		return shift.Response{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return shift.Response{}, staff.ErrStaffNotFound
	}

	start, _ := time.Parse(time.RFC3339, req.ScheduledStart)
	end, _ := time.Parse(time.RFC3339, req.ScheduledEnd)

	overlapping, err := s.shiftRepo.FindOverlapping(ctx, req.StaffID, start, end)
	if err != nil {
		return shift.Response{}, fmt.Errorf("failed to check overlapping shifts: %w", err)
	}
	if len(overlapping) > 0 {
		return shift.Response{}, shift.ErrShiftOverlaps
	}

	sh := &shift.Shift{
		StaffID:        req.StaffID,
		RequestID:      req.RequestID,
		ScheduledStart: start,
		ScheduledEnd:   end,
		Status:         shift.StatusScheduled,
		Notes:          req.Notes,
	}
	if err := s.shiftRepo.Create(ctx, sh); err != nil {
		return shift.Response{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift.ToResponse(sh), nil
}

func (s *shiftServiceImpl) GetByID(ctx context.Context, id int64) (shift.Response, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Response{}, err
	}
	return shift.ToResponse(sh), nil
}

func (s *shiftServiceImpl) ListByStaff(ctx context.Context, staffID int64, from, to time.Time) ([]shift.Response, error) {
	shifts, err := s.shiftRepo.ListByStaff(ctx, staffID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.Response, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, shift.ToResponse(&shifts[i]))
	}
	return responses, nil
}

func (s *shiftServiceImpl) Start(ctx context.Context, id, staffID int64) (shift.Response, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Response{}, err
	}
	if sh.StaffID != staffID {
		return shift.Response{}, shift.ErrNotShiftOwner
	}
	if sh.Status != shift.StatusScheduled {
		return shift.Response{}, shift.ErrShiftAlreadyEnded
	}

	now := time.Now()
	sh.ActualStart = &now
	sh.Status = shift.StatusStarted
	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.Response{}, fmt.Errorf("failed to start shift: %w", err)
	}
	return shift.ToResponse(sh), nil
}

func (s *shiftServiceImpl) End(ctx context.Context, id, staffID int64) (shift.Response, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Response{}, err
	}
	if sh.StaffID != staffID {
		return shift.Response{}, shift.ErrNotShiftOwner
	}
	if sh.Status != shift.StatusStarted {
		return shift.Response{}, shift.ErrShiftNotStarted
	}

	now := time.Now()
	sh.ActualEnd = &now
	sh.Status = shift.StatusEnded
	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.Response{}, fmt.Errorf("failed to end shift: %w", err)
	}
	return shift.ToResponse(sh), nil
}

func (s *shiftServiceImpl) Verify(ctx context.Context, id int64) (shift.Response, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.Response{}, err
	}
	if sh.Status != shift.StatusEnded {
		return shift.Response{}, shift.ErrShiftNotEnded
	}

	sh.Status = shift.StatusVerified
	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.Response{}, fmt.Errorf("failed to verify shift: %w", err)
	}
	return shift.ToResponse(sh), nil
}
