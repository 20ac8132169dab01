package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/domain/visit"
)

type visitServiceImpl struct {
	visitRepo      visit.Repository
	feedbackRepo   visit.FeedbackRepository
	requestRepo    request.Repository
	assignmentRepo request.AssignmentRepository
}

func NewVisitService(
	visitRepo visit.Repository,
	feedbackRepo visit.FeedbackRepository,
	requestRepo request.Repository,
	assignmentRepo request.AssignmentRepository,
) visit.Service {
	return &visitServiceImpl{
		visitRepo:      visitRepo,
		feedbackRepo:   feedbackRepo,
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *visitServiceImpl) Create(ctx context.Context, req visit.CreateRequest) (*visit.Visit, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sr, err := s.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if sr.Status != request.StatusCompleted {
		return nil, visit.ErrRequestNotFinished
	}

	a, err := s.assignmentRepo.GetByRequestID(ctx, req.RequestID)
	if err != nil {
		return nil, request.ErrRequestNotAssigned
	}

	startedAt, _ := time.Parse(time.RFC3339, req.StartedAt)
	endedAt, _ := time.Parse(time.RFC3339, req.EndedAt)

	v := &visit.Visit{
		RequestID: req.RequestID,
		StaffID:   a.StaffID,
		PatientID: sr.PatientID,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Summary:   req.Summary,
	}
	if err := s.visitRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	return v, nil
}

func (s *visitServiceImpl) GetByID(ctx context.Context, id int64) (*visit.Visit, error) {
	return s.visitRepo.GetByID(ctx, id)
}

func (s *visitServiceImpl) ListByStaff(ctx context.Context, staffID int64) ([]visit.Visit, error) {
	return s.visitRepo.ListByStaff(ctx, staffID)
}

func (s *visitServiceImpl) ListByPatient(ctx context.Context, patientID int64) ([]visit.Visit, error) {
	return s.visitRepo.ListByPatient(ctx, patientID)
}

func (s *visitServiceImpl) SubmitFeedback(ctx context.Context, visitID, patientID int64, req visit.FeedbackRequest) (*visit.Feedback, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if v.PatientID != patientID {
		return nil, visit.ErrNotVisitPatient
	}
	if _, err := s.feedbackRepo.GetByVisitID(ctx, visitID); err == nil {
		return nil, visit.ErrFeedbackExists
	}

	f := &visit.Feedback{
		VisitID:   visitID,
		PatientID: patientID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return f, nil
}

func (s *visitServiceImpl) GetFeedback(ctx context.Context, visitID int64) (*visit.Feedback, error) {
	return s.feedbackRepo.GetByVisitID(ctx, visitID)
}

func (s *visitServiceImpl) StaffRating(ctx context.Context, staffID int64) (float64, int64, error) {
	return s.feedbackRepo.AverageRatingForStaff(ctx, staffID)
}
