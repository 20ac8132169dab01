package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/staff"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `id, user_id, company_id, license_number, specialization, country_code,
	state_province, latitude, longitude, is_available, created_at, updated_at`

func scanStaff(row pgx.Row) (*staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(&s.ID, &s.UserID, &s.CompanyID, &s.LicenseNumber, &s.Specialization,
		&s.CountryCode, &s.StateProvince, &s.Latitude, &s.Longitude, &s.IsAvailable,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *staffRepositoryImpl) Create(ctx context.Context, s *staff.Staff) error {
	query := `
		INSERT INTO staff (user_id, company_id, license_number, specialization, country_code,
			state_province, latitude, longitude, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		s.UserID, s.CompanyID, s.LicenseNumber, s.Specialization, s.CountryCode,
		s.StateProvince, s.Latitude, s.Longitude, s.IsAvailable).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id int64) (*staff.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	s, err := scanStaff(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return s, nil
}

func (r *staffRepositoryImpl) GetByUserID(ctx context.Context, userID int64) (*staff.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE user_id = $1`

	s, err := scanStaff(GetQuerier(ctx, r.db).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff by user: %w", err)
	}
	return s, nil
}

func (r *staffRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]staff.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		WHERE s.company_id = $1
		  AND EXISTS (SELECT 1 FROM users u WHERE u.id = s.user_id AND u.is_active = TRUE)
		ORDER BY s.id`

	return r.list(ctx, query, companyID)
}

func (r *staffRepositoryImpl) ListAvailable(ctx context.Context, companyID int64, specialization string) ([]staff.Staff, error) {
	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		WHERE s.company_id = $1 AND s.is_available = TRUE`
	args := []any{companyID}
	if specialization != "" {
		query += ` AND s.specialization = $2`
		args = append(args, specialization)
	}
	query += ` ORDER BY s.id`

	return r.list(ctx, query, args...)
}

func (r *staffRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]staff.Staff, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}

func (r *staffRepositoryImpl) Update(ctx context.Context, s *staff.Staff) error {
	query := `
		UPDATE staff
		SET license_number = $2, specialization = $3, state_province = $4,
			latitude = $5, longitude = $6, is_available = $7, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		s.ID, s.LicenseNumber, s.Specialization, s.StateProvince,
		s.Latitude, s.Longitude, s.IsAvailable)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

type salaryConfigRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) staff.SalaryConfigRepository {
	return &salaryConfigRepositoryImpl{db: db}
}

const salaryConfigColumns = `id, staff_id, hourly_rate, overtime_threshold_hours, overtime_rate_multiplier,
	has_benefits, benefits_deduction, pay_frequency, effective_from, is_active, created_at, updated_at`

func scanSalaryConfig(row pgx.Row) (*staff.SalaryConfig, error) {
	var cfg staff.SalaryConfig
	err := row.Scan(&cfg.ID, &cfg.StaffID, &cfg.HourlyRate, &cfg.OvertimeThresholdHours,
		&cfg.OvertimeRateMultiplier, &cfg.HasBenefits, &cfg.BenefitsDeduction, &cfg.PayFrequency,
		&cfg.EffectiveFrom, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *salaryConfigRepositoryImpl) Create(ctx context.Context, cfg *staff.SalaryConfig) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx,
			`UPDATE salary_configs SET is_active = FALSE, updated_at = NOW() WHERE staff_id = $1 AND is_active = TRUE`,
			cfg.StaffID)
		if err != nil {
			return fmt.Errorf("failed to deactivate previous salary configs: %w", err)
		}

		query := `
			INSERT INTO salary_configs (staff_id, hourly_rate, overtime_threshold_hours,
				overtime_rate_multiplier, has_benefits, benefits_deduction, pay_frequency,
				effective_from, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW(), NOW())
			RETURNING id, created_at, updated_at`

		err = q.QueryRow(ctx, query,
			cfg.StaffID, cfg.HourlyRate, cfg.OvertimeThresholdHours, cfg.OvertimeRateMultiplier,
			cfg.HasBenefits, cfg.BenefitsDeduction, cfg.PayFrequency, cfg.EffectiveFrom).
			Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create salary config: %w", err)
		}
		cfg.IsActive = true
		return nil
	})
}

func (r *salaryConfigRepositoryImpl) GetActiveByStaffID(ctx context.Context, staffID int64) (*staff.SalaryConfig, error) {
	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configs WHERE staff_id = $1 AND is_active = TRUE`

	cfg, err := scanSalaryConfig(GetQuerier(ctx, r.db).QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrSalaryConfigNotFound
		}
		return nil, fmt.Errorf("failed to get active salary config: %w", err)
	}
	return cfg, nil
}

func (r *salaryConfigRepositoryImpl) ListByStaffID(ctx context.Context, staffID int64) ([]staff.SalaryConfig, error) {
	query := `SELECT ` + salaryConfigColumns + ` FROM salary_configs WHERE staff_id = $1 ORDER BY effective_from DESC`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configs: %w", err)
	}
	defer rows.Close()

	var configs []staff.SalaryConfig
	for rows.Next() {
		cfg, err := scanSalaryConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary config: %w", err)
		}
		configs = append(configs, *cfg)
	}
	return configs, rows.Err()
}
