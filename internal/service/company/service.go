package company

import (
	"context"
	"fmt"

	"github.com/caresync/staffing-backend-go/internal/domain/company"
	"github.com/caresync/staffing-backend-go/internal/domain/country"
)

type companyServiceImpl struct {
	companyRepo company.Repository
	countryRepo country.Repository
}

func NewCompanyService(companyRepo company.Repository, countryRepo country.Repository) company.Service {
	return &companyServiceImpl{companyRepo: companyRepo, countryRepo: countryRepo}
}

func (s *companyServiceImpl) Create(ctx context.Context, req company.CreateRequest) (company.Response, error) {
	if err := req.Validate(); err != nil {
		return company.Response{}, err
	}

	cn, err := s.countryRepo.GetByID(ctx, req.CountryID)
	if err != nil {
		return company.Response{}, country.ErrCountryNotFound
	}
	if !cn.IsActive {
		return company.Response{}, country.ErrCountryDeactivated
	}

	c := &company.Company{
		Name:      req.Name,
		CountryID: req.CountryID,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		IsActive:  true,
	}
	if err := s.companyRepo.Create(ctx, c); err != nil {
		return company.Response{}, fmt.Errorf("failed to create company: %w", err)
	}
	return company.ToResponse(c), nil
}

func (s *companyServiceImpl) GetByID(ctx context.Context, id int64) (company.Response, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.Response{}, err
	}
	return company.ToResponse(c), nil
}

func (s *companyServiceImpl) List(ctx context.Context, countryID *int64) ([]company.Response, error) {
	var (
		companies []company.Company
		err       error
	)
	if countryID != nil {
		companies, err = s.companyRepo.ListByCountry(ctx, *countryID)
	} else {
		companies, err = s.companyRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]company.Response, 0, len(companies))
	for i := range companies {
		responses = append(responses, company.ToResponse(&companies[i]))
	}
	return responses, nil
}

func (s *companyServiceImpl) Update(ctx context.Context, id int64, req company.UpdateRequest) (company.Response, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.Response{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return company.Response{}, fmt.Errorf("failed to update company: %w", err)
	}
	return company.ToResponse(c), nil
}

func (s *companyServiceImpl) Deactivate(ctx context.Context, id int64) error {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	c.IsActive = false
	return s.companyRepo.Update(ctx, c)
}
