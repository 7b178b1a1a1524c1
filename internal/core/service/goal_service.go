package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// GoalService implements the savings goal use cases.
type GoalService struct {
	repo ports.GoalRepository
	orgs ports.OrganizationRepository
}

func NewGoalService(repo ports.GoalRepository, orgs ports.OrganizationRepository) *GoalService {
	return &GoalService{repo: repo, orgs: orgs}
}

func (s *GoalService) Create(ctx context.Context, input ports.CreateGoalInput) (*domain.Goal, error) {
	if input.DesiredAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.orgs.FindByID(ctx, input.OrganizationID); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	return s.repo.Create(ctx, &domain.Goal{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		DesiredAmount:  input.DesiredAmount,
		CreatedAt:      time.Now().UTC(),
		DueDate:        input.DueDate,
		Description:    input.Description,
	})
}

func (s *GoalService) Get(ctx context.Context, id string) (*domain.Goal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GoalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.repo.List(ctx)
}

func (s *GoalService) ByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error) {
	return s.repo.ListByOrganization(ctx, organizationID)
}

func (s *GoalService) Update(ctx context.Context, id string, input ports.UpdateGoalInput) (*domain.Goal, error) {
	goal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DesiredAmount != nil {
		if *input.DesiredAmount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		goal.DesiredAmount = *input.DesiredAmount
	}
	if input.Name != nil && *input.Name != "" {
		goal.Name = *input.Name
	}
	if input.DueDate != nil {
		goal.DueDate = *input.DueDate
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Contribute records a deposit toward a goal. The goal must exist; the value
// must be positive.
func (s *GoalService) Contribute(ctx context.Context, input ports.CreateContributionInput) (*domain.GoalContribution, error) {
	if input.Value <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := s.repo.FindByID(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("contribute: %w", err)
	}

	date := input.ContributionDate
	if date.IsZero() {
		date = time.Now().UTC()
	}

	return s.repo.CreateContribution(ctx, &domain.GoalContribution{
		GoalID:           input.GoalID,
		Value:            input.Value,
		ContributionDate: date,
		Description:      input.Description,
	})
}

func (s *GoalService) Contributions(ctx context.Context, goalID string) ([]*domain.GoalContribution, error) {
	return s.repo.ListContributions(ctx, goalID)
}

func (s *GoalService) ContributionTotal(ctx context.Context, goalID string) (money.Cents, error) {
	return s.repo.TotalContributions(ctx, goalID)
}
