package ports

import (
	"context"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// TransactionRepository defines persistence for cash flow records. Every
// operation is scoped by kind so expenses and incomes never leak into each
// other's listings even though they share a collection.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, kind domain.FlowKind, id string) (*domain.Transaction, error)
	List(ctx context.Context, kind domain.FlowKind) ([]*domain.Transaction, error)
	ListByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) ([]*domain.Transaction, error)
	ListByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) ([]*domain.Transaction, error)
	TotalByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) (money.Cents, error)
	TotalByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) (money.Cents, error)
	CategoryTotals(ctx context.Context, kind domain.FlowKind, organizationID string) ([]domain.CategoryTotal, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, kind domain.FlowKind, id string) error
}

// CreateTransactionInput carries the attributes for a new expense or income.
type CreateTransactionInput struct {
	OrganizationID    string
	TargetMemberID    string
	BankTransactionID string
	Name              string
	Amount            money.Cents
	Date              time.Time
	Description       string
	Category          string
}

// UpdateTransactionInput carries partial updates. Nil fields are left
// untouched.
type UpdateTransactionInput struct {
	TargetMemberID *string
	Name           *string
	Amount         *money.Cents
	Date           *time.Time
	Description    *string
	Category       *string
}

// TransactionService defines the expense/income use cases.
type TransactionService interface {
	Create(ctx context.Context, kind domain.FlowKind, input CreateTransactionInput) (*domain.Transaction, error)
	Get(ctx context.Context, kind domain.FlowKind, id string) (*domain.Transaction, error)
	List(ctx context.Context, kind domain.FlowKind) ([]*domain.Transaction, error)
	ByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) ([]*domain.Transaction, error)
	ByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) ([]*domain.Transaction, error)
	TotalByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) (money.Cents, error)
	TotalByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) (money.Cents, error)
	CategoryTotals(ctx context.Context, kind domain.FlowKind, organizationID string) ([]domain.CategoryTotal, error)
	Update(ctx context.Context, kind domain.FlowKind, id string, input UpdateTransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, kind domain.FlowKind, id string) error
}
