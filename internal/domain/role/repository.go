package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	GetByName(ctx context.Context, name string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, req UpdateRoleRequest) error
	Delete(ctx context.Context, id string) error
	CountUsers(ctx context.Context, id string) (int64, error)
}
