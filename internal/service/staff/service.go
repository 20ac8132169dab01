package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/domain/user"
)

// Defaults applied when a salary config omits overtime terms.
var (
	defaultOvertimeThreshold  = decimal.NewFromInt(40)
	defaultOvertimeMultiplier = decimal.NewFromFloat(1.5)
)

type staffServiceImpl struct {
	staffRepo  staff.Repository
	salaryRepo staff.SalaryConfigRepository
	userRepo   user.Repository
}

func NewStaffService(
	staffRepo staff.Repository,
	salaryRepo staff.SalaryConfigRepository,
	userRepo user.Repository,
) staff.Service {
	return &staffServiceImpl{
		staffRepo:  staffRepo,
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
	}
}

func (s *staffServiceImpl) Create(ctx context.Context, req staff.CreateRequest) (staff.Response, error) {
	if err := req.Validate(); err != nil {
		return staff.Response{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return staff.Response{}, user.ErrUserNotFound
	}
	if _, err := s.staffRepo.GetByUserID(ctx, req.UserID); err == nil {
		return staff.Response{}, staff.ErrStaffExistsForUser
	}

	st := &staff.Staff{
		UserID:         req.UserID,
		CompanyID:      req.CompanyID,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		CountryCode:    req.CountryCode,
		StateProvince:  req.StateProvince,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		IsAvailable:    true,
	}
	if err := s.staffRepo.Create(ctx, st); err != nil {
		return staff.Response{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return staff.ToResponse(st), nil
}

func (s *staffServiceImpl) GetByID(ctx context.Context, id int64) (staff.Response, error) {
	st, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.Response{}, err
	}
	return staff.ToResponse(st), nil
}

func (s *staffServiceImpl) GetByUserID(ctx context.Context, userID int64) (staff.Response, error) {
	st, err := s.staffRepo.GetByUserID(ctx, userID)
	if err != nil {
		return staff.Response{}, err
	}
	return staff.ToResponse(st), nil
}

func (s *staffServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]staff.Response, error) {
	list, err := s.staffRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.Response, 0, len(list))
	for i := range list {
		responses = append(responses, staff.ToResponse(&list[i]))
	}
	return responses, nil
}

func (s *staffServiceImpl) Update(ctx context.Context, id int64, req staff.UpdateRequest) (staff.Response, error) {
	st, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.Response{}, err
	}

	if req.LicenseNumber != nil {
		st.LicenseNumber = *req.LicenseNumber
	}
	if req.Specialization != nil {
		st.Specialization = *req.Specialization
	}
	if req.StateProvince != nil {
		st.StateProvince = *req.StateProvince
	}
	if req.Latitude != nil {
		st.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		st.Longitude = req.Longitude
	}
	if req.IsAvailable != nil {
		st.IsAvailable = *req.IsAvailable
	}

	if err := s.staffRepo.Update(ctx, st); err != nil {
		return staff.Response{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return staff.ToResponse(st), nil
}

func (s *staffServiceImpl) SetSalaryConfig(ctx context.Context, staffID int64, req staff.SalaryConfigRequest) (*staff.SalaryConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, staff.ErrStaffNotFound
	}

	cfg := &staff.SalaryConfig{
		StaffID:                staffID,
		HourlyRate:             req.HourlyRate,
		OvertimeThresholdHours: defaultOvertimeThreshold,
		OvertimeRateMultiplier: defaultOvertimeMultiplier,
		HasBenefits:            req.HasBenefits,
		BenefitsDeduction:      decimal.Zero,
		PayFrequency:           req.PayFrequency,
		EffectiveFrom:          time.Now(),
	}
	if req.OvertimeThresholdHours != nil {
		cfg.OvertimeThresholdHours = *req.OvertimeThresholdHours
	}
	if req.OvertimeRateMultiplier != nil {
		cfg.OvertimeRateMultiplier = *req.OvertimeRateMultiplier
	}
	if req.BenefitsDeduction != nil {
		cfg.BenefitsDeduction = *req.BenefitsDeduction
	}

	if err := s.salaryRepo.Create(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to create salary config: %w", err)
	}
	return cfg, nil
}

func (s *staffServiceImpl) GetActiveSalaryConfig(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
	return s.salaryRepo.GetActiveByStaffID(ctx, staffID)
}

func (s *staffServiceImpl) ListSalaryConfigs(ctx context.Context, staffID int64) ([]staff.SalaryConfig, error) {
	return s.salaryRepo.ListByStaffID(ctx, staffID)
}
