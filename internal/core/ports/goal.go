package ports

import (
	"context"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// GoalRepository defines persistence for savings goals and their
// contributions.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error

	CreateContribution(ctx context.Context, c *domain.GoalContribution) (*domain.GoalContribution, error)
	ListContributions(ctx context.Context, goalID string) ([]*domain.GoalContribution, error)
	TotalContributions(ctx context.Context, goalID string) (money.Cents, error)
}

// CreateGoalInput carries the attributes for a new goal.
type CreateGoalInput struct {
	OrganizationID string
	Name           string
	DesiredAmount  money.Cents
	DueDate        time.Time
	Description    string
}

// UpdateGoalInput carries partial updates. Nil fields are left untouched.
type UpdateGoalInput struct {
	Name          *string
	DesiredAmount *money.Cents
	DueDate       *time.Time
	Description   *string
}

// CreateContributionInput carries the attributes for a new deposit toward a
// goal.
type CreateContributionInput struct {
	GoalID           string
	Value            money.Cents
	ContributionDate time.Time
	Description      string
}

// GoalService defines the savings goal use cases.
type GoalService interface {
	Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error)
	Get(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	ByOrganization(ctx context.Context, organizationID string) ([]*domain.Goal, error)
	Update(ctx context.Context, id string, input UpdateGoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error

	Contribute(ctx context.Context, input CreateContributionInput) (*domain.GoalContribution, error)
	Contributions(ctx context.Context, goalID string) ([]*domain.GoalContribution, error)
	ContributionTotal(ctx context.Context, goalID string) (money.Cents, error)
}
