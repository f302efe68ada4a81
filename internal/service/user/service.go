package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrpms/pms-backend-go/internal/domain/role"
	"github.com/hrpms/pms-backend-go/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetUser(ctx context.Context, id string) (user.UserResponse, error)
	ListUsers(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error)
	UpdateUser(ctx context.Context, req user.UpdateUserRequest) error
	DeleteUser(ctx context.Context, actorID string, id string) error
	SetLocked(ctx context.Context, id string, locked bool) error
}

type userServiceImpl struct {
	userRepo user.UserRepository
	roleRepo role.RoleRepository
}

func NewUserService(userRepo user.UserRepository, roleRepo role.RoleRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// CreateUser implements UserService.
func (s *userServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.roleRepo.GetByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			return user.UserResponse{}, user.ErrUnknownRole
		}
		return user.UserResponse{}, fmt.Errorf("failed to resolve role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		RoleID:       &req.RoleID,
		Surname:      req.Surname,
		LastName:     req.LastName,
		OtherName:    req.OtherName,
		JobTitle:     req.JobTitle,
		DepartmentID: req.DepartmentID,
		UnitID:       req.UnitID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetUser implements UserService.
func (s *userServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// ListUsers implements UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, total, nil
}

// UpdateUser implements UserService.
func (s *userServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.RoleID != nil {
		if _, err := s.roleRepo.GetByID(ctx, *req.RoleID); err != nil {
			if errors.Is(err, role.ErrRoleNotFound) {
				return user.ErrUnknownRole
			}
			return fmt.Errorf("failed to resolve role: %w", err)
		}
	}

	return s.userRepo.Update(ctx, req)
}

// DeleteUser implements UserService. Admins cannot remove their own account.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actorID string, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.Delete(ctx, id)
}

// SetLocked implements UserService. A locked account cannot authenticate
// until unlocked.
func (s *userServiceImpl) SetLocked(ctx context.Context, id string, locked bool) error {
	return s.userRepo.SetLocked(ctx, id, locked)
}
