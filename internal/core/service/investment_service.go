package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// InvestmentService implements the investment use cases.
type InvestmentService struct {
	repo    ports.InvestmentRepository
	members ports.MemberRepository
}

func NewInvestmentService(repo ports.InvestmentRepository, members ports.MemberRepository) *InvestmentService {
	return &InvestmentService{repo: repo, members: members}
}

func (s *InvestmentService) Create(ctx context.Context, input ports.CreateInvestmentInput) (*domain.Investment, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	member, err := s.members.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("create investment: %w", err)
	}
	if member.OrganizationID != input.OrganizationID {
		return nil, fmt.Errorf("create investment: %w", domain.ErrForbidden)
	}

	date := input.PurchaseDate
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return s.repo.Create(ctx, &domain.Investment{
		OrganizationID: input.OrganizationID,
		MemberID:       input.MemberID,
		Name:           input.Name,
		Category:       input.Category,
		Amount:         input.Amount,
		PurchaseDate:   date,
		Description:    input.Description,
	})
}

func (s *InvestmentService) Get(ctx context.Context, id string) (*domain.Investment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InvestmentService) List(ctx context.Context) ([]*domain.Investment, error) {
	return s.repo.List(ctx)
}

func (s *InvestmentService) ByOrganization(ctx context.Context, organizationID string) ([]*domain.Investment, error) {
	return s.repo.ListByOrganization(ctx, organizationID)
}

func (s *InvestmentService) ByMember(ctx context.Context, memberID string) ([]*domain.Investment, error) {
	return s.repo.ListByMember(ctx, memberID)
}

func (s *InvestmentService) TotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error) {
	return s.repo.TotalByOrganization(ctx, organizationID)
}

func (s *InvestmentService) Update(ctx context.Context, id string, input ports.UpdateInvestmentInput) (*domain.Investment, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		inv.Amount = *input.Amount
	}
	if input.Name != nil && *input.Name != "" {
		inv.Name = *input.Name
	}
	if input.Category != nil && *input.Category != "" {
		inv.Category = *input.Category
	}
	if input.PurchaseDate != nil {
		inv.PurchaseDate = *input.PurchaseDate
	}
	if input.Description != nil {
		inv.Description = *input.Description
	}

	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *InvestmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
