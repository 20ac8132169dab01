package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/caresync/staffing-backend-go/internal/domain/user"
	"github.com/caresync/staffing-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) user.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

func (r *roleRepositoryImpl) Create(ctx context.Context, role *user.Role, privilegeIDs []int64) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		query := `
			INSERT INTO roles (name, description, is_system, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING id, created_at`

		err := GetQuerier(ctx, r.db).QueryRow(ctx, query, role.Name, role.Description, role.IsSystem).
			Scan(&role.ID, &role.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return r.setPrivileges(ctx, role.ID, privilegeIDs)
	})
}

func (r *roleRepositoryImpl) GetByID(ctx context.Context, id int64) (*user.Role, error) {
	query := `SELECT id, name, description, is_system, created_at FROM roles WHERE id = $1`

	var role user.Role
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).
		Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &role, nil
}

func (r *roleRepositoryImpl) GetByName(ctx context.Context, name string) (*user.Role, error) {
	query := `SELECT id, name, description, is_system, created_at FROM roles WHERE name = $1`

	var role user.Role
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, name).
		Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}
	return &role, nil
}

func (r *roleRepositoryImpl) List(ctx context.Context) ([]user.Role, error) {
	query := `SELECT id, name, description, is_system, created_at FROM roles ORDER BY name`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []user.Role
	for rows.Next() {
		var role user.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsSystem, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepositoryImpl) ListPrivileges(ctx context.Context, roleID int64) ([]user.Privilege, error) {
	query := `
		SELECT p.id, p.code, p.description
		FROM privileges p
		JOIN role_privileges rp ON rp.privilege_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.code`

	return r.queryPrivileges(ctx, query, roleID)
}

func (r *roleRepositoryImpl) ListAllPrivileges(ctx context.Context) ([]user.Privilege, error) {
	return r.queryPrivileges(ctx, `SELECT id, code, description FROM privileges ORDER BY code`)
}

func (r *roleRepositoryImpl) queryPrivileges(ctx context.Context, query string, args ...any) ([]user.Privilege, error) {
	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list privileges: %w", err)
	}
	defer rows.Close()

	var privileges []user.Privilege
	for rows.Next() {
		var p user.Privilege
		if err := rows.Scan(&p.ID, &p.Code, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan privilege: %w", err)
		}
		privileges = append(privileges, p)
	}
	return privileges, rows.Err()
}

func (r *roleRepositoryImpl) SetPrivileges(ctx context.Context, roleID int64, privilegeIDs []int64) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		return r.setPrivileges(ctx, roleID, privilegeIDs)
	})
}

func (r *roleRepositoryImpl) setPrivileges(ctx context.Context, roleID int64, privilegeIDs []int64) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM role_privileges WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("failed to clear role privileges: %w", err)
	}
	for _, pid := range privilegeIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO role_privileges (role_id, privilege_id) VALUES ($1, $2)`, roleID, pid)
		if err != nil {
			return fmt.Errorf("failed to grant privilege %d: %w", pid, err)
		}
	}
	return nil
}

func (r *roleRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := GetQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM roles WHERE id = $1 AND is_system = FALSE`, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrRoleNotFound
	}
	return nil
}
