package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]User, error)
	Update(ctx context.Context, u *User) error
	MarkVerified(ctx context.Context, id int64) error
}

type RoleRepository interface {
	Create(ctx context.Context, r *Role, privilegeIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
	ListPrivileges(ctx context.Context, roleID int64) ([]Privilege, error)
	ListAllPrivileges(ctx context.Context) ([]Privilege, error)
	SetPrivileges(ctx context.Context, roleID int64, privilegeIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
