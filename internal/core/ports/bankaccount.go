package ports

import (
	"context"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

// BankAccountRepository defines persistence for bank connections.
type BankAccountRepository interface {
	Create(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error)
	FindByID(ctx context.Context, id string) (*domain.BankAccount, error)
	List(ctx context.Context) ([]*domain.BankAccount, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.BankAccount, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.BankAccount, error)
	ListConnected(ctx context.Context, organizationID string) ([]*domain.BankAccount, error)
	MarkSynced(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// ConnectAccountInput carries the attributes for a new bank connection.
type ConnectAccountInput struct {
	OrganizationID string
	MemberID       string
	BankName       string
	AccessToken    string
	RefreshToken   string
	TokenExpireAt  time.Time
}

// BankAccountService defines the bank connection use cases.
type BankAccountService interface {
	Connect(ctx context.Context, input ConnectAccountInput) (*domain.BankAccount, error)
	Get(ctx context.Context, id string) (*domain.BankAccount, error)
	List(ctx context.Context) ([]*domain.BankAccount, error)
	ByOrganization(ctx context.Context, organizationID string) ([]*domain.BankAccount, error)
	ByMember(ctx context.Context, memberID string) ([]*domain.BankAccount, error)
	Connected(ctx context.Context, organizationID string) ([]*domain.BankAccount, error)
	Disconnect(ctx context.Context, id string) error
}

// SyncService consumes imported bank transactions and materialises them as
// expense or income records.
type SyncService interface {
	Process(ctx context.Context, tx domain.BankTransaction) error
}
