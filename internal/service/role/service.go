package role

import (
	"context"

	"github.com/hrpms/pms-backend-go/internal/domain/role"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
)

type RoleService interface {
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetRole(ctx context.Context, id string) (role.RoleResponse, error)
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id string) error
	Permissions() []string
}

type roleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) RoleService {
	return &roleServiceImpl{roleRepo: roleRepo}
}

// builtinRoles are seeded and drive the agreement workflow; they cannot be
// deleted.
var builtinRoles = map[string]bool{
	string(user.RoleAdmin):      true,
	string(user.RoleHOD):        true,
	string(user.RoleSupervisor): true,
	string(user.RoleEmployee):   true,
}

// CreateRole implements RoleService.
func (s *roleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Name:        req.Name,
		Description: req.Description,
		Permissions: role.PermissionSet(req.Permissions),
	})
	if err != nil {
		return role.RoleResponse{}, err
	}

	return role.ToResponse(created), nil
}

// GetRole implements RoleService.
func (s *roleServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return role.ToResponse(found), nil
}

// ListRoles implements RoleService.
func (s *roleServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, role.ToResponse(r))
	}
	return responses, nil
}

// UpdateRole implements RoleService.
func (s *roleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.roleRepo.Update(ctx, req)
}

// DeleteRole implements RoleService. Built-in roles and roles still assigned
// to users are protected.
func (s *roleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if builtinRoles[found.Name] {
		return role.ErrRoleInUse
	}

	count, err := s.roleRepo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return role.ErrRoleInUse
	}

	return s.roleRepo.Delete(ctx, id)
}

// Permissions implements RoleService.
func (s *roleServiceImpl) Permissions() []string {
	return role.AllPermissions
}
