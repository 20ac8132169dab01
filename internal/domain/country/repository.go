package country

import "context"

type Repository interface {
	Create(ctx context.Context, c *Country) error
	GetByID(ctx context.Context, id int64) (*Country, error)
	GetByCode(ctx context.Context, code string) (*Country, error)
	List(ctx context.Context, activeOnly bool) ([]Country, error)
	Update(ctx context.Context, c *Country) error
	CountCompanies(ctx context.Context, countryID int64) (int64, error)
}
