package ports

import (
	"context"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

// RoleRepository defines persistence for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
}

// RoleService defines role use cases. EnsureDefaults seeds the built-in
// Owner/Admin/Member roles and is idempotent.
type RoleService interface {
	Create(ctx context.Context, name, description string) (*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	EnsureDefaults(ctx context.Context) error
}
