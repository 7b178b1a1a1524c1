package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubGoalRepo struct {
	byID          map[string]*domain.Goal
	contributions map[string][]*domain.GoalContribution
	nextID        int
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{
		byID:          make(map[string]*domain.Goal),
		contributions: make(map[string][]*domain.GoalContribution),
	}
}

func (r *stubGoalRepo) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	r.nextID++
	goal.ID = "goal-" + strconv.Itoa(r.nextID)
	r.byID[goal.ID] = goal
	return goal, nil
}

func (r *stubGoalRepo) FindByID(_ context.Context, id string) (*domain.Goal, error) {
	goal, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return goal, nil
}

func (r *stubGoalRepo) List(_ context.Context) ([]*domain.Goal, error) { return nil, nil }

func (r *stubGoalRepo) ListByOrganization(_ context.Context, _ string) ([]*domain.Goal, error) {
	return nil, nil
}

func (r *stubGoalRepo) Update(_ context.Context, goal *domain.Goal) error {
	r.byID[goal.ID] = goal
	return nil
}

func (r *stubGoalRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	delete(r.contributions, id)
	return nil
}

func (r *stubGoalRepo) CreateContribution(_ context.Context, c *domain.GoalContribution) (*domain.GoalContribution, error) {
	r.nextID++
	c.ID = "contrib-" + strconv.Itoa(r.nextID)
	r.contributions[c.GoalID] = append(r.contributions[c.GoalID], c)
	return c, nil
}

func (r *stubGoalRepo) ListContributions(_ context.Context, goalID string) ([]*domain.GoalContribution, error) {
	return r.contributions[goalID], nil
}

func (r *stubGoalRepo) TotalContributions(_ context.Context, goalID string) (money.Cents, error) {
	var total money.Cents
	for _, c := range r.contributions[goalID] {
		total += c.Value
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestGoalCreateValidates(t *testing.T) {
	svc := NewGoalService(newStubGoalRepo(), newStubOrgRepo("org-1"))

	_, err := svc.Create(context.Background(), ports.CreateGoalInput{
		OrganizationID: "org-1",
		Name:           "trip",
		DesiredAmount:  0,
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("zero amount: expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Create(context.Background(), ports.CreateGoalInput{
		OrganizationID: "ghost",
		Name:           "trip",
		DesiredAmount:  500000,
	})
	if !errors.Is(err, domain.ErrOrganizationNotFound) {
		t.Errorf("unknown org: expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestContributeToMissingGoal(t *testing.T) {
	svc := NewGoalService(newStubGoalRepo(), newStubOrgRepo("org-1"))

	_, err := svc.Contribute(context.Background(), ports.CreateContributionInput{
		GoalID: "ghost",
		Value:  1000,
	})
	if !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestContributionTotalAccumulates(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, newStubOrgRepo("org-1"))

	goal, err := svc.Create(context.Background(), ports.CreateGoalInput{
		OrganizationID: "org-1",
		Name:           "emergency fund",
		DesiredAmount:  1000000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, v := range []money.Cents{25000, 30000, 45000} {
		if _, err := svc.Contribute(context.Background(), ports.CreateContributionInput{GoalID: goal.ID, Value: v}); err != nil {
			t.Fatalf("Contribute(%d): %v", v, err)
		}
	}

	total, err := svc.ContributionTotal(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("ContributionTotal: %v", err)
	}
	if total != 100000 {
		t.Errorf("total = %d, want 100000", total)
	}

	list, err := svc.Contributions(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("Contributions: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("contributions = %d, want 3", len(list))
	}
}

func TestContributeDefaultsDate(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, newStubOrgRepo("org-1"))

	goal, err := svc.Create(context.Background(), ports.CreateGoalInput{
		OrganizationID: "org-1",
		Name:           "trip",
		DesiredAmount:  200000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c, err := svc.Contribute(context.Background(), ports.CreateContributionInput{GoalID: goal.ID, Value: 5000})
	if err != nil {
		t.Fatalf("Contribute: %v", err)
	}
	if c.ContributionDate.IsZero() {
		t.Error("expected a default contribution date")
	}
}
