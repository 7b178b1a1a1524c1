package ports

import (
	"context"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
)

// UserRepository defines persistence for registered identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// VerificationCodeRepository persists one-time email verification codes.
// Expired codes are reaped by the store itself, not by callers.
type VerificationCodeRepository interface {
	Create(ctx context.Context, code *domain.VerificationCode) (*domain.VerificationCode, error)
	FindByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	MarkUsed(ctx context.Context, id string) error
}

// UpdateUserInput carries the mutable user attributes. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Name     *string
	Password *string
}

// UserService defines the identity use cases. Login returns a signed session
// token alongside the user.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	RequestVerification(ctx context.Context, email string) (*domain.VerificationCode, error)
	ConfirmVerification(ctx context.Context, email, code string) (*domain.User, error)
}
