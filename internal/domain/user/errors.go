package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserDeactivated    = errors.New("user account is deactivated")
	ErrUserNotVerified    = errors.New("user email is not verified")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleNameExists     = errors.New("role name already exists")
	ErrSystemRoleReadOnly = errors.New("system roles cannot be modified")
	ErrPrivilegeNotFound  = errors.New("privilege not found")
)
