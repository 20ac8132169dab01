package country

import (
	"context"
	"fmt"

	"github.com/caresync/staffing-backend-go/internal/domain/country"
)

type countryServiceImpl struct {
	countryRepo country.Repository
}

func NewCountryService(countryRepo country.Repository) country.Service {
	return &countryServiceImpl{countryRepo: countryRepo}
}

func (s *countryServiceImpl) Create(ctx context.Context, req country.CreateRequest) (country.Response, error) {
	if err := req.Validate(); err != nil {
		return country.Response{}, err
	}

	if _, err := s.countryRepo.GetByCode(ctx, req.Code); err == nil {
		return country.Response{}, country.ErrCountryCodeExists
	}

	c := &country.Country{
		Name:     req.Name,
		Code:     req.Code,
		Currency: req.Currency,
		IsActive: true,
	}
	if err := s.countryRepo.Create(ctx, c); err != nil {
		return country.Response{}, fmt.Errorf("failed to create country: %w", err)
	}
	return country.ToResponse(c), nil
}

func (s *countryServiceImpl) GetByID(ctx context.Context, id int64) (country.Response, error) {
	c, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return country.Response{}, err
	}
	return country.ToResponse(c), nil
}

func (s *countryServiceImpl) List(ctx context.Context, activeOnly bool) ([]country.Response, error) {
	countries, err := s.countryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]country.Response, 0, len(countries))
	for i := range countries {
		responses = append(responses, country.ToResponse(&countries[i]))
	}
	return responses, nil
}

func (s *countryServiceImpl) Update(ctx context.Context, id int64, req country.UpdateRequest) (country.Response, error) {
	c, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return country.Response{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Currency != nil {
		c.Currency = *req.Currency
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.countryRepo.Update(ctx, c); err != nil {
		return country.Response{}, fmt.Errorf("failed to update country: %w", err)
	}
	return country.ToResponse(c), nil
}

func (s *countryServiceImpl) Deactivate(ctx context.Context, id int64) error {
	c, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.countryRepo.CountCompanies(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return country.ErrCountryHasCompanies
	}

	c.IsActive = false
	return s.countryRepo.Update(ctx, c)
}
