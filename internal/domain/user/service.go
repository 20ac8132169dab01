package user

import "context"

type Service interface {
	GetByID(ctx context.Context, id int64) (Response, error)
	ListByCompany(ctx context.Context, companyID int64) ([]Response, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (Response, error)
	Deactivate(ctx context.Context, id int64) error

	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetRole(ctx context.Context, id int64) (RoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	ListPrivileges(ctx context.Context) ([]Privilege, error)
	SetRolePrivileges(ctx context.Context, roleID int64, privilegeIDs []int64) (RoleResponse, error)
	DeleteRole(ctx context.Context, id int64) error
}
