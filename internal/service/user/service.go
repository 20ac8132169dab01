package user

import (
	"context"
	"fmt"

	"github.com/caresync/staffing-backend-go/internal/domain/user"
)

type userServiceImpl struct {
	userRepo user.Repository
	roleRepo user.RoleRepository
}

func NewUserService(userRepo user.Repository, roleRepo user.RoleRepository) user.Service {
	return &userServiceImpl{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *userServiceImpl) roleName(ctx context.Context, roleID int64) string {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return ""
	}
	return role.Name
}

func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (user.Response, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.Response{}, err
	}
	return user.ToResponse(u, s.roleName(ctx, u.RoleID)), nil
}

func (s *userServiceImpl) ListByCompany(ctx context.Context, companyID int64) ([]user.Response, error) {
	users, err := s.userRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.Response, 0, len(users))
	for i := range users {
		responses = append(responses, user.ToResponse(&users[i], s.roleName(ctx, users[i].RoleID)))
	}
	return responses, nil
}

func (s *userServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.Response, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.Response{}, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
			return user.Response{}, user.ErrRoleNotFound
		}
		u.RoleID = *req.RoleID
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.Response{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user.ToResponse(u, s.roleName(ctx, u.RoleID)), nil
}

func (s *userServiceImpl) Deactivate(ctx context.Context, id int64) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.IsActive = false
	return s.userRepo.Update(ctx, u)
}

func (s *userServiceImpl) CreateRole(ctx context.Context, req user.CreateRoleRequest) (user.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return user.RoleResponse{}, err
	}

	if _, err := s.roleRepo.GetByName(ctx, req.Name); err == nil {
		return user.RoleResponse{}, user.ErrRoleNameExists
	}

	role := &user.Role{Name: req.Name, Description: req.Description}
	if err := s.roleRepo.Create(ctx, role, req.Privileges); err != nil {
		return user.RoleResponse{}, fmt.Errorf("failed to create role: %w", err)
	}
	return s.roleResponse(ctx, role)
}

func (s *userServiceImpl) roleResponse(ctx context.Context, role *user.Role) (user.RoleResponse, error) {
	privileges, err := s.roleRepo.ListPrivileges(ctx, role.ID)
	if err != nil {
		return user.RoleResponse{}, err
	}
	return user.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		IsSystem:    role.IsSystem,
		Privileges:  privileges,
	}, nil
}

func (s *userServiceImpl) GetRole(ctx context.Context, id int64) (user.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return user.RoleResponse{}, err
	}
	return s.roleResponse(ctx, role)
}

func (s *userServiceImpl) ListRoles(ctx context.Context) ([]user.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.RoleResponse, 0, len(roles))
	for i := range roles {
		resp, err := s.roleResponse(ctx, &roles[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *userServiceImpl) ListPrivileges(ctx context.Context) ([]user.Privilege, error) {
	return s.roleRepo.ListAllPrivileges(ctx)
}

func (s *userServiceImpl) SetRolePrivileges(ctx context.Context, roleID int64, privilegeIDs []int64) (user.RoleResponse, error) {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return user.RoleResponse{}, err
	}
	if role.IsSystem {
		return user.RoleResponse{}, user.ErrSystemRoleReadOnly
	}

	if err := s.roleRepo.SetPrivileges(ctx, roleID, privilegeIDs); err != nil {
		return user.RoleResponse{}, fmt.Errorf("failed to set role privileges: %w", err)
	}
	return s.roleResponse(ctx, role)
}

func (s *userServiceImpl) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		return user.ErrSystemRoleReadOnly
	}
	return s.roleRepo.Delete(ctx, id)
}
