package ports

import (
	"context"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

// OrganizationRepository defines persistence for tenant organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error)
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	ListActive(ctx context.Context) ([]*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	Delete(ctx context.Context, id string) error
}

// CreateOrganizationInput carries the attributes for a new organization.
type CreateOrganizationInput struct {
	Name          string
	IsActive      bool
	TrialExpireAt time.Time
}

// UpdateOrganizationInput carries partial updates. Nil fields are left
// untouched.
type UpdateOrganizationInput struct {
	Name          *string
	IsActive      *bool
	TrialExpireAt *time.Time
}

// OrganizationService defines the tenant use cases.
type OrganizationService interface {
	Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error)
	Get(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	ListActive(ctx context.Context) ([]*domain.Organization, error)
	Update(ctx context.Context, id string, input UpdateOrganizationInput) (*domain.Organization, error)
	Delete(ctx context.Context, id string) error
}
