package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// RoleService implements role use cases.
type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

func (s *RoleService) Create(ctx context.Context, name, description string) (*domain.Role, error) {
	if name == "" {
		return nil, fmt.Errorf("create role: name is required")
	}
	return s.repo.Create(ctx, &domain.Role{Name: name, Description: description})
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RoleService) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.List(ctx)
}

// EnsureDefaults seeds the built-in roles. Existing roles are left alone, so
// running it at every startup is safe.
func (s *RoleService) EnsureDefaults(ctx context.Context) error {
	defaults := []domain.Role{
		{Name: domain.RoleOwner, Description: "Full control of the organization"},
		{Name: domain.RoleAdmin, Description: "Manage members and financial records"},
		{Name: domain.RoleMember, Description: "Record and view financial data"},
	}

	for _, role := range defaults {
		if _, err := s.repo.FindByName(ctx, role.Name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrRoleNotFound) {
			return fmt.Errorf("ensure default roles: %w", err)
		}

		if _, err := s.repo.Create(ctx, &role); err != nil && !errors.Is(err, domain.ErrRoleExists) {
			return fmt.Errorf("ensure default roles: %w", err)
		}
	}
	return nil
}
