package user

import "context"

// ListFilter narrows the user listing. All fields are optional.
type ListFilter struct {
	Search       *string
	RoleID       *string
	DepartmentID *string
	UnitID       *string
	Page         int
	Limit        int
}

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	LinkGoogleAccount(ctx context.Context, email string, googleID string) error
	SetLocked(ctx context.Context, id string, locked bool) error
	Delete(ctx context.Context, id string) error
}
