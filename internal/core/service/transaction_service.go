package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// TransactionService implements the expense/income use cases over the shared
// cash flow core.
type TransactionService struct {
	repo   ports.TransactionRepository
	orgs   ports.OrganizationRepository
	logger zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, orgs ports.OrganizationRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, orgs: orgs, logger: logger}
}

func (s *TransactionService) Create(ctx context.Context, kind domain.FlowKind, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.orgs.FindByID(ctx, input.OrganizationID); err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	tx := &domain.Transaction{
		Kind:              kind,
		OrganizationID:    input.OrganizationID,
		TargetMemberID:    input.TargetMemberID,
		BankTransactionID: input.BankTransactionID,
		Name:              input.Name,
		Amount:            input.Amount,
		Date:              date,
		Description:       input.Description,
		Category:          input.Category,
	}

	created, err := s.repo.Create(ctx, tx)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to create transaction")
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", created.ID).
		Str("kind", string(kind)).
		Str("organization_id", created.OrganizationID).
		Int64("amount", int64(created.Amount)).
		Msg("transaction created")

	return created, nil
}

func (s *TransactionService) Get(ctx context.Context, kind domain.FlowKind, id string) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, kind, id)
}

func (s *TransactionService) List(ctx context.Context, kind domain.FlowKind) ([]*domain.Transaction, error) {
	return s.repo.List(ctx, kind)
}

func (s *TransactionService) ByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) ([]*domain.Transaction, error) {
	return s.repo.ListByOrganization(ctx, kind, organizationID)
}

func (s *TransactionService) ByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) ([]*domain.Transaction, error) {
	return s.repo.ListByCategory(ctx, kind, organizationID, category)
}

func (s *TransactionService) TotalByOrganization(ctx context.Context, kind domain.FlowKind, organizationID string) (money.Cents, error) {
	return s.repo.TotalByOrganization(ctx, kind, organizationID)
}

func (s *TransactionService) TotalByCategory(ctx context.Context, kind domain.FlowKind, organizationID, category string) (money.Cents, error) {
	return s.repo.TotalByCategory(ctx, kind, organizationID, category)
}

func (s *TransactionService) CategoryTotals(ctx context.Context, kind domain.FlowKind, organizationID string) ([]domain.CategoryTotal, error) {
	return s.repo.CategoryTotals(ctx, kind, organizationID)
}

func (s *TransactionService) Update(ctx context.Context, kind domain.FlowKind, id string, input ports.UpdateTransactionInput) (*domain.Transaction, error) {
	tx, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		tx.Amount = *input.Amount
	}
	if input.Name != nil && *input.Name != "" {
		tx.Name = *input.Name
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.TargetMemberID != nil {
		tx.TargetMemberID = *input.TargetMemberID
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, kind, id)
}

func (s *TransactionService) Delete(ctx context.Context, kind domain.FlowKind, id string) error {
	return s.repo.Delete(ctx, kind, id)
}
