package patient

import (
	"context"
	"fmt"

	"github.com/caresync/staffing-backend-go/internal/domain/patient"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
)

type patientServiceImpl struct {
	patientRepo patient.Repository
	userRepo    user.Repository
}

func NewPatientService(patientRepo patient.Repository, userRepo user.Repository) patient.Service {
	return &patientServiceImpl{patientRepo: patientRepo, userRepo: userRepo}
}

func (s *patientServiceImpl) Create(ctx context.Context, req patient.CreateRequest) (patient.Response, error) {
	if err := req.Validate(); err != nil {
		return patient.Response{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return patient.Response{}, user.ErrUserNotFound
	}
	if _, err := s.patientRepo.GetByUserID(ctx, req.UserID); err == nil {
		return patient.Response{}, patient.ErrPatientExistsForUser
	}

	p := &patient.Patient{
		UserID:           req.UserID,
		CompanyID:        req.CompanyID,
		DateOfBirth:      req.DateOfBirthTime(),
		Address:          req.Address,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		MedicalNotes:     req.MedicalNotes,
		EmergencyContact: req.EmergencyContact,
		IsActive:         true,
	}
	if err := s.patientRepo.Create(ctx, p); err != nil {
		return patient.Response{}, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient.ToResponse(p), nil
}

func (s *patientServiceImpl) GetByID(ctx context.Context, id int64) (patient.Response, error) {
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return patient.Response{}, err
	}
	return patient.ToResponse(p), nil
}

func (s *patientServiceImpl) GetByUserID(ctx context.Context, userID int64) (patient.Response, error) {
	p, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return patient.Response{}, err
	}
	return patient.ToResponse(p), nil
}

func (s *patientServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]patient.Response, error) {
	patients, err := s.patientRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]patient.Response, 0, len(patients))
	for i := range patients {
		responses = append(responses, patient.ToResponse(&patients[i]))
	}
	return responses, nil
}

func (s *patientServiceImpl) Update(ctx context.Context, id int64, req patient.UpdateRequest) (patient.Response, error) {
	p, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return patient.Response{}, err
	}

	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Latitude != nil {
		p.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		p.Longitude = req.Longitude
	}
	if req.MedicalNotes != nil {
		p.MedicalNotes = *req.MedicalNotes
	}
	if req.EmergencyContact != nil {
		p.EmergencyContact = *req.EmergencyContact
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.patientRepo.Update(ctx, p); err != nil {
		return patient.Response{}, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient.ToResponse(p), nil
}
