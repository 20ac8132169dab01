package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	ListByCountry(ctx context.Context, countryID int64) ([]Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c *Company) error
}
