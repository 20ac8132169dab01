package request

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/pkg/utils"
)

type requestServiceImpl struct {
	requestRepo    request.Repository
	assignmentRepo request.AssignmentRepository
	patientRepo    patient.Repository
	staffRepo      staff.Repository
}

func NewRequestService(
	requestRepo request.Repository,
	assignmentRepo request.AssignmentRepository,
	patientRepo patient.Repository,
	staffRepo staff.Repository,
) request.Service {
	return &requestServiceImpl{
		requestRepo:    requestRepo,
		assignmentRepo: assignmentRepo,
		patientRepo:    patientRepo,
		staffRepo:      staffRepo,
	}
}

func (s *requestServiceImpl) Create(ctx context.Context, companyID int64, req request.CreateRequest) (request.Response, error) {
	if err := req.Validate(); err != nil {
		return request.Response{}, err
	}

	p, err := s.patientRepo.GetByID(ctx, req.PatientID)
	if err != nil {
		return request.Response{}, patient.ErrPatientNotFound
	}
	if !p.IsActive {
		return request.Response{}, patient.ErrPatientInactive
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	sr := &request.ServiceRequest{
		PatientID:      req.PatientID,
		CompanyID:      companyID,
		ServiceType:    req.ServiceType,
		Description:    req.Description,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         request.StatusOpen,
		RequiredSkills: req.RequiredSkills,
	}
	if err := s.requestRepo.Create(ctx, sr); err != nil {
		return request.Response{}, fmt.Errorf("failed to create service request: %w", err)
	}
	return request.ToResponse(sr), nil
}

func (s *requestServiceImpl) GetByID(ctx context.Context, id int64) (request.Response, error) {
	sr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.Response{}, err
	}
	return request.ToResponse(sr), nil
}

func (s *requestServiceImpl) ListByCompany(ctx context.Context, companyID int64, status string) ([]request.Response, error) {
	requests, err := s.requestRepo.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *requestServiceImpl) ListByPatient(ctx context.Context, patientID int64) ([]request.Response, error) {
	requests, err := s.requestRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func toResponses(requests []request.ServiceRequest) []request.Response {
	responses := make([]request.Response, 0, len(requests))
	for i := range requests {
		responses = append(responses, request.ToResponse(&requests[i]))
	}
	return responses
}

func (s *requestServiceImpl) Cancel(ctx context.Context, id int64) error {
	sr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sr.Status == request.StatusCompleted || sr.Status == request.StatusCancelled {
		return request.ErrInvalidTransition
	}
	return s.requestRepo.UpdateStatus(ctx, id, request.StatusCancelled)
}

func (s *requestServiceImpl) Assign(ctx context.Context, requestID, assignedBy int64, req request.AssignRequest) (*request.Assignment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if sr.Status != request.StatusOpen {
		return nil, request.ErrRequestNotOpen
	}
	if _, err := s.assignmentRepo.GetByRequestID(ctx, requestID); err == nil {
		return nil, request.ErrAlreadyAssigned
	}

	st, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return nil, staff.ErrStaffNotFound
	}
	if !st.IsAvailable {
		return nil, staff.ErrStaffUnavailable
	}

	a := &request.Assignment{
		RequestID:  requestID,
		StaffID:    req.StaffID,
		AssignedBy: assignedBy,
		Notes:      req.Notes,
	}
	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	if err := s.requestRepo.UpdateStatus(ctx, requestID, request.StatusAssigned); err != nil {
		return nil, fmt.Errorf("failed to mark request assigned: %w", err)
	}
	return a, nil
}

// FindMatches ranks available staff of the request's company by
// haversine distance to the patient's stored location.
func (s *requestServiceImpl) FindMatches(ctx context.Context, requestID int64, limit int) ([]request.MatchCandidate, error) {
	sr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	p, err := s.patientRepo.GetByID(ctx, sr.PatientID)
	if err != nil {
		return nil, patient.ErrPatientNotFound
	}
	if p.Latitude == nil || p.Longitude == nil {
		return nil, request.ErrNoLocationForPatient
	}

	candidates, err := s.staffRepo.ListAvailable(ctx, sr.CompanyID, sr.RequiredSkills)
	if err != nil {
		return nil, err
	}

	matches := make([]request.MatchCandidate, 0, len(candidates))
	for _, st := range candidates {
		if st.Latitude == nil || st.Longitude == nil {
			continue
		}
		distance := utils.CalculateHaversineDistance(*p.Latitude, *p.Longitude, *st.Latitude, *st.Longitude)
		matches = append(matches, request.MatchCandidate{
			StaffID:        st.ID,
			Specialization: st.Specialization,
			DistanceMeters: distance,
		})
	}
	if len(matches) == 0 {
		return nil, request.ErrNoCandidates
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *requestServiceImpl) Accept(ctx context.Context, requestID, staffID int64) error {
	a, err := s.requireAssignment(ctx, requestID, staffID)
	if err != nil {
		return err
	}
	return s.assignmentRepo.MarkAccepted(ctx, a.ID)
}

func (s *requestServiceImpl) Start(ctx context.Context, requestID, staffID int64) error {
	if _, err := s.requireAssignment(ctx, requestID, staffID); err != nil {
		return err
	}

	sr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.Status != request.StatusAssigned {
		return request.ErrInvalidTransition
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, request.StatusInProgress)
}

func (s *requestServiceImpl) Complete(ctx context.Context, requestID, staffID int64) error {
	if _, err := s.requireAssignment(ctx, requestID, staffID); err != nil {
		return err
	}

	sr, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if sr.Status != request.StatusInProgress {
		return request.ErrInvalidTransition
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, request.StatusCompleted)
}

func (s *requestServiceImpl) requireAssignment(ctx context.Context, requestID, staffID int64) (*request.Assignment, error) {
	a, err := s.assignmentRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, request.ErrRequestNotAssigned
	}
	if a.StaffID != staffID {
		return nil, request.ErrAssignmentNotFound
	}
	return a, nil
}
