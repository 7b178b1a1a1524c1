package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// BankAccountService implements bank connection use cases.
type BankAccountService struct {
	repo    ports.BankAccountRepository
	members ports.MemberRepository
	logger  zerolog.Logger
}

func NewBankAccountService(repo ports.BankAccountRepository, members ports.MemberRepository, logger zerolog.Logger) *BankAccountService {
	return &BankAccountService{repo: repo, members: members, logger: logger}
}

// Connect registers a new bank connection. The member must belong to the
// organization the account is filed under. A freshly connected account is
// always marked connected; the provider decides later whether tokens are
// still good.
func (s *BankAccountService) Connect(ctx context.Context, input ports.ConnectAccountInput) (*domain.BankAccount, error) {
	member, err := s.members.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("connect bank account: %w", err)
	}
	if member.OrganizationID != input.OrganizationID {
		return nil, fmt.Errorf("connect bank account: %w", domain.ErrForbidden)
	}

	acc, err := s.repo.Create(ctx, &domain.BankAccount{
		OrganizationID: input.OrganizationID,
		MemberID:       input.MemberID,
		BankName:       input.BankName,
		AccessToken:    input.AccessToken,
		RefreshToken:   input.RefreshToken,
		TokenExpireAt:  input.TokenExpireAt,
		IsConnected:    true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("bank_account_id", acc.ID).
		Str("bank", acc.BankName).
		Str("organization_id", acc.OrganizationID).
		Msg("bank account connected")

	return acc, nil
}

func (s *BankAccountService) Get(ctx context.Context, id string) (*domain.BankAccount, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BankAccountService) List(ctx context.Context) ([]*domain.BankAccount, error) {
	return s.repo.List(ctx)
}

func (s *BankAccountService) ByOrganization(ctx context.Context, organizationID string) ([]*domain.BankAccount, error) {
	return s.repo.ListByOrganization(ctx, organizationID)
}

func (s *BankAccountService) ByMember(ctx context.Context, memberID string) ([]*domain.BankAccount, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *BankAccountService) Connected(ctx context.Context, organizationID string) ([]*domain.BankAccount, error) {
	return s.repo.ListConnected(ctx, organizationID)
}

func (s *BankAccountService) Disconnect(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("bank_account_id", id).Msg("bank account disconnected")
	return nil
}
