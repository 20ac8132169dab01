package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, full_name, phone, role_id, company_id, country_id,
	is_active, is_verified, google_id, verified_at, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.RoleID,
		&u.CompanyID, &u.CountryID, &u.IsActive, &u.IsVerified, &u.GoogleID,
		&u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, password_hash, full_name, phone, role_id, company_id, country_id,
			is_active, is_verified, google_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := GetQuerier(ctx, r.db).QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.FullName, u.Phone, u.RoleID, u.CompanyID, u.CountryID,
		u.IsActive, u.IsVerified, u.GoogleID).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(GetQuerier(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	u, err := scanUser(GetQuerier(ctx, r.db).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	u, err := scanUser(GetQuerier(ctx, r.db).QueryRow(ctx, query, googleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	return u, nil
}

func (r *userRepositoryImpl) ListByCompany(ctx context.Context, companyID int64) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY full_name`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET full_name = $2, phone = $3, role_id = $4, is_active = $5, password_hash = $6, updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query,
		u.ID, u.FullName, u.Phone, u.RoleID, u.IsActive, u.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepositoryImpl) MarkVerified(ctx context.Context, id int64) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, verified_at = NOW(), updated_at = NOW()
		WHERE id = $1`

	tag, err := GetQuerier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
