package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/country"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type countryRepositoryImpl struct {
	db *database.DB
}

func NewCountryRepository(db *database.DB) country.Repository {
	return &countryRepositoryImpl{db: db}
}

func (r *countryRepositoryImpl) Create(ctx context.Context, c *country.Country) error {
	query := `
		INSERT INTO countries (name, code, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, c.Name, c.Code, c.Currency, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

func (r *countryRepositoryImpl) GetByID(ctx context.Context, id int64) (*country.Country, error) {
	query := `
		SELECT id, name, code, currency, is_active, created_at, updated_at
		FROM countries WHERE id = $1`

	var c country.Country
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Code, &c.Currency, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, country.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return &c, nil
}

func (r *countryRepositoryImpl) GetByCode(ctx context.Context, code string) (*country.Country, error) {
	query := `
		SELECT id, name, code, currency, is_active, created_at, updated_at
		FROM countries WHERE code = $1`

	var c country.Country
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, code).
		Scan(&c.ID, &c.Name, &c.Code, &c.Currency, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, country.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to get country by code: %w", err)
	}
	return &c, nil
}

func (r *countryRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]country.Country, error) {
	query := `
		SELECT id, name, code, currency, is_active, created_at, updated_at
		FROM countries`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	var countries []country.Country
	for rows.Next() {
		var c country.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Currency, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *countryRepositoryImpl) Update(ctx context.Context, c *country.Country) error {
	query := `
		UPDATE countries
		SET name = $2, currency = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, c.ID, c.Name, c.Currency, c.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return country.ErrCountryNotFound
	}
	return nil
}

func (r *countryRepositoryImpl) CountCompanies(ctx context.Context, countryID int64) (int64, error) {
	var count int64
	err := GetQuerier(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM companies WHERE country_id = $1`, countryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return count, nil
}
