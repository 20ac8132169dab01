package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/domain/request"
	"github.com/caresync/staffing-backend-go/internal/domain/staff"
)

var errNotFound = errors.New("not found")

type fakeRequestRepo struct {
	createFn       func(ctx context.Context, sr *request.ServiceRequest) error
	getByIDFn      func(ctx context.Context, id int64) (*request.ServiceRequest, error)
	updateStatusFn func(ctx context.Context, id int64, status string) error
}

func (f *fakeRequestRepo) Create(ctx context.Context, sr *request.ServiceRequest) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, sr)
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*request.ServiceRequest, error) {
	if f.getByIDFn == nil {
		return nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeRequestRepo) ListByCompany(ctx context.Context, companyID int64, status string) ([]request.ServiceRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) ListByPatient(ctx context.Context, patientID int64) ([]request.ServiceRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if f.updateStatusFn == nil {
		return nil
	}
	return f.updateStatusFn(ctx, id, status)
}

type fakeAssignmentRepo struct {
	createFn         func(ctx context.Context, a *request.Assignment) error
	getByRequestIDFn func(ctx context.Context, requestID int64) (*request.Assignment, error)
	markAcceptedFn   func(ctx context.Context, id int64) error
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a *request.Assignment) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, a)
}

func (f *fakeAssignmentRepo) GetByRequestID(ctx context.Context, requestID int64) (*request.Assignment, error) {
	if f.getByRequestIDFn == nil {
		return nil, errNotFound
	}
	return f.getByRequestIDFn(ctx, requestID)
}

func (f *fakeAssignmentRepo) ListByStaff(ctx context.Context, staffID int64) ([]request.Assignment, error) {
	return nil, nil
}

func (f *fakeAssignmentRepo) MarkAccepted(ctx context.Context, id int64) error {
	if f.markAcceptedFn == nil {
		return nil
	}
	return f.markAcceptedFn(ctx, id)
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakePatientRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*patient.Patient, error)
}

func (f *fakePatientRepo) Create(ctx context.Context, p *patient.Patient) error { return nil }

func (f *fakePatientRepo) GetByID(ctx context.Context, id int64) (*patient.Patient, error) {
	if f.getByIDFn == nil {
		return nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakePatientRepo) GetByUserID(ctx context.Context, userID int64) (*patient.Patient, error) {
	return nil, errNotFound
}

func (f *fakePatientRepo) ListByCompany(ctx context.Context, companyID int64) ([]patient.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, p *patient.Patient) error { return nil }

type fakeStaffRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (*staff.Staff, error)
	listAvailableFn func(ctx context.Context, companyID int64, specialization string) ([]staff.Staff, error)
}

func (f *fakeStaffRepo) Create(ctx context.Context, s *staff.Staff) error { return nil }

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*staff.Staff, error) {
	if f.getByIDFn == nil {
		return nil, errNotFound
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeStaffRepo) GetByUserID(ctx context.Context, userID int64) (*staff.Staff, error) {
	return nil, errNotFound
}

func (f *fakeStaffRepo) ListByCompany(ctx context.Context, companyID int64) ([]staff.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) ListAvailable(ctx context.Context, companyID int64, specialization string) ([]staff.Staff, error) {
	if f.listAvailableFn == nil {
		return nil, nil
	}
	return f.listAvailableFn(ctx, companyID, specialization)
}

func (f *fakeStaffRepo) Update(ctx context.Context, s *staff.Staff) error { return nil }

func ptr(f float64) *float64 { return &f }

func openRequest(id int64) *request.ServiceRequest {
	return &request.ServiceRequest{
		ID:        id,
		PatientID: 7,
		CompanyID: 1,
		Status:    request.StatusOpen,
		StartTime: time.Now().Add(time.Hour),
		EndTime:   time.Now().Add(3 * time.Hour),
	}
}

func TestFindMatches_RanksByDistance(t *testing.T) {
	// Patient in downtown Manhattan; staff at increasing distance.
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
	}
	patientRepo := &fakePatientRepo{
		getByIDFn: func(_ context.Context, _ int64) (*patient.Patient, error) {
			return &patient.Patient{ID: 7, Latitude: ptr(40.7128), Longitude: ptr(-74.0060), IsActive: true}, nil
		},
	}
	staffRepo := &fakeStaffRepo{
		listAvailableFn: func(_ context.Context, _ int64, _ string) ([]staff.Staff, error) {
			return []staff.Staff{
				{ID: 1, Latitude: ptr(40.7580), Longitude: ptr(-73.9855)}, // midtown
				{ID: 2, Latitude: ptr(40.7135), Longitude: ptr(-74.0055)}, // nearly on top of the patient
				{ID: 3},                                                   // no location, skipped
				{ID: 4, Latitude: ptr(40.6782), Longitude: ptr(-73.9442)}, // brooklyn
			}, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, patientRepo, staffRepo)
	matches, err := svc.FindMatches(context.Background(), 42, 0)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, int64(2), matches[0].StaffID)
	assert.Equal(t, int64(1), matches[1].StaffID)
	assert.Equal(t, int64(4), matches[2].StaffID)
	assert.Less(t, matches[0].DistanceMeters, matches[1].DistanceMeters)
	assert.Less(t, matches[1].DistanceMeters, matches[2].DistanceMeters)
}

func TestFindMatches_LimitTruncates(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
	}
	patientRepo := &fakePatientRepo{
		getByIDFn: func(_ context.Context, _ int64) (*patient.Patient, error) {
			return &patient.Patient{ID: 7, Latitude: ptr(40.0), Longitude: ptr(-74.0), IsActive: true}, nil
		},
	}
	staffRepo := &fakeStaffRepo{
		listAvailableFn: func(_ context.Context, _ int64, _ string) ([]staff.Staff, error) {
			return []staff.Staff{
				{ID: 1, Latitude: ptr(40.1), Longitude: ptr(-74.0)},
				{ID: 2, Latitude: ptr(40.2), Longitude: ptr(-74.0)},
				{ID: 3, Latitude: ptr(40.3), Longitude: ptr(-74.0)},
			}, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, patientRepo, staffRepo)
	matches, err := svc.FindMatches(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].StaffID)
}

func TestFindMatches_PatientWithoutLocation(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
	}
	patientRepo := &fakePatientRepo{
		getByIDFn: func(_ context.Context, _ int64) (*patient.Patient, error) {
			return &patient.Patient{ID: 7, IsActive: true}, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, patientRepo, &fakeStaffRepo{})
	_, err := svc.FindMatches(context.Background(), 42, 0)
	assert.ErrorIs(t, err, request.ErrNoLocationForPatient)
}

func TestFindMatches_NoCandidates(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
	}
	patientRepo := &fakePatientRepo{
		getByIDFn: func(_ context.Context, _ int64) (*patient.Patient, error) {
			return &patient.Patient{ID: 7, Latitude: ptr(40.0), Longitude: ptr(-74.0), IsActive: true}, nil
		},
	}
	staffRepo := &fakeStaffRepo{
		listAvailableFn: func(_ context.Context, _ int64, _ string) ([]staff.Staff, error) {
			// Only a staff member with no stored location.
			return []staff.Staff{{ID: 3}}, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, patientRepo, staffRepo)
	_, err := svc.FindMatches(context.Background(), 42, 0)
	assert.ErrorIs(t, err, request.ErrNoCandidates)
}

func TestAssign_CreatesAssignmentAndMarksRequest(t *testing.T) {
	var createdAssignment *request.Assignment
	var newStatus string

	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
		updateStatusFn: func(_ context.Context, _ int64, status string) error {
			newStatus = status
			return nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		createFn: func(_ context.Context, a *request.Assignment) error {
			a.ID = 99
			createdAssignment = a
			return nil
		},
	}
	staffRepo := &fakeStaffRepo{
		getByIDFn: func(_ context.Context, id int64) (*staff.Staff, error) {
			return &staff.Staff{ID: id, IsAvailable: true}, nil
		},
	}

	svc := NewRequestService(requestRepo, assignmentRepo, &fakePatientRepo{}, staffRepo)
	a, err := svc.Assign(context.Background(), 42, 5, request.AssignRequest{StaffID: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(99), a.ID)
	assert.Equal(t, int64(3), createdAssignment.StaffID)
	assert.Equal(t, int64(5), createdAssignment.AssignedBy)
	assert.Equal(t, request.StatusAssigned, newStatus)
}

func TestAssign_RejectsNonOpenRequest(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			sr := openRequest(id)
			sr.Status = request.StatusAssigned
			return sr, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{})
	_, err := svc.Assign(context.Background(), 42, 5, request.AssignRequest{StaffID: 3})
	assert.ErrorIs(t, err, request.ErrRequestNotOpen)
}

func TestAssign_RejectsUnavailableStaff(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			return openRequest(id), nil
		},
	}
	staffRepo := &fakeStaffRepo{
		getByIDFn: func(_ context.Context, id int64) (*staff.Staff, error) {
			return &staff.Staff{ID: id, IsAvailable: false}, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, &fakePatientRepo{}, staffRepo)
	_, err := svc.Assign(context.Background(), 42, 5, request.AssignRequest{StaffID: 3})
	assert.ErrorIs(t, err, staff.ErrStaffUnavailable)
}

func TestStart_RequiresAssignedStatusAndOwnership(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			sr := openRequest(id)
			sr.Status = request.StatusAssigned
			return sr, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		getByRequestIDFn: func(_ context.Context, requestID int64) (*request.Assignment, error) {
			return &request.Assignment{ID: 1, RequestID: requestID, StaffID: 3}, nil
		},
	}

	svc := NewRequestService(requestRepo, assignmentRepo, &fakePatientRepo{}, &fakeStaffRepo{})

	assert.ErrorIs(t, svc.Start(context.Background(), 42, 8), request.ErrAssignmentNotFound)
	assert.NoError(t, svc.Start(context.Background(), 42, 3))
}

func TestComplete_RequiresInProgress(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			sr := openRequest(id)
			sr.Status = request.StatusAssigned
			return sr, nil
		},
	}
	assignmentRepo := &fakeAssignmentRepo{
		getByRequestIDFn: func(_ context.Context, requestID int64) (*request.Assignment, error) {
			return &request.Assignment{ID: 1, RequestID: requestID, StaffID: 3}, nil
		},
	}

	svc := NewRequestService(requestRepo, assignmentRepo, &fakePatientRepo{}, &fakeStaffRepo{})
	assert.ErrorIs(t, svc.Complete(context.Background(), 42, 3), request.ErrInvalidTransition)
}

func TestCancel_RejectsFinishedRequest(t *testing.T) {
	requestRepo := &fakeRequestRepo{
		getByIDFn: func(_ context.Context, id int64) (*request.ServiceRequest, error) {
			sr := openRequest(id)
			sr.Status = request.StatusCompleted
			return sr, nil
		},
	}

	svc := NewRequestService(requestRepo, &fakeAssignmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{})
	assert.ErrorIs(t, svc.Cancel(context.Background(), 42), request.ErrInvalidTransition)
}
