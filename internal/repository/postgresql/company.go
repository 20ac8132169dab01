package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/company"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, name, country_id, address, phone, email, is_active, created_at, updated_at`

func scanCompany(row pgx.Row) (*company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.CountryID, &c.Address, &c.Phone, &c.Email, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepositoryImpl) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (name, country_id, address, phone, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		c.Name, c.CountryID, c.Address, c.Phone, c.Email, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	c, err := scanCompany(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

func (r *companyRepositoryImpl) ListByCountry(ctx context.Context, countryID int64) ([]company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE country_id = $1 ORDER BY name`
	return r.list(ctx, query, countryID)
}

func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`
	return r.list(ctx, query)
}

func (r *companyRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]company.Company, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (r *companyRepositoryImpl) Update(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, phone = $4, email = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		c.ID, c.Name, c.Address, c.Phone, c.Email, c.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
