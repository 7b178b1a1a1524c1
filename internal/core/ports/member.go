package ports

import (
	"context"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

// MemberRepository defines persistence for user↔organization bindings.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Member, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Member, error)
	FindByUserAndOrganization(ctx context.Context, userID, organizationID string) (*domain.Member, error)
	UpdateRole(ctx context.Context, id, roleID string) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

// MemberService defines membership use cases. Create verifies that the
// organization, user, and role all exist before binding them.
type MemberService interface {
	Create(ctx context.Context, organizationID, userID, roleID string) (*domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	ByOrganization(ctx context.Context, organizationID string) ([]*domain.Member, error)
	ByUser(ctx context.Context, userID string) ([]*domain.Member, error)
	ByUserAndOrganization(ctx context.Context, userID, organizationID string) (*domain.Member, error)
	UpdateRole(ctx context.Context, id, roleID string) (*domain.Member, error)
	Delete(ctx context.Context, id string) error
}
