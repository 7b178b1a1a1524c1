package ports

import (
	"context"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// InvestmentRepository defines persistence for investments.
type InvestmentRepository interface {
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	FindByID(ctx context.Context, id string) (*domain.Investment, error)
	List(ctx context.Context) ([]*domain.Investment, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Investment, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Investment, error)
	TotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error)
	Update(ctx context.Context, inv *domain.Investment) error
	Delete(ctx context.Context, id string) error
}

// CreateInvestmentInput carries the attributes for a new investment.
type CreateInvestmentInput struct {
	OrganizationID string
	MemberID       string
	Name           string
	Category       string
	Amount         money.Cents
	PurchaseDate   time.Time
	Description    string
}

// UpdateInvestmentInput carries partial updates. Nil fields are left
// untouched.
type UpdateInvestmentInput struct {
	Name         *string
	Category     *string
	Amount       *money.Cents
	PurchaseDate *time.Time
	Description  *string
}

// InvestmentService defines the investment use cases.
type InvestmentService interface {
	Create(ctx context.Context, input CreateInvestmentInput) (*domain.Investment, error)
	Get(ctx context.Context, id string) (*domain.Investment, error)
	List(ctx context.Context) ([]*domain.Investment, error)
	ByOrganization(ctx context.Context, organizationID string) ([]*domain.Investment, error)
	ByMember(ctx context.Context, memberID string) ([]*domain.Investment, error)
	TotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error)
	Update(ctx context.Context, id string, input UpdateInvestmentInput) (*domain.Investment, error)
	Delete(ctx context.Context, id string) error
}
