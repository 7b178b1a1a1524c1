package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubOrgRepo struct {
	byID map[string]*domain.Organization
}

func newStubOrgRepo(ids ...string) *stubOrgRepo {
	r := &stubOrgRepo{byID: make(map[string]*domain.Organization)}
	for _, id := range ids {
		r.byID[id] = &domain.Organization{ID: id, Name: "org " + id, IsActive: true}
	}
	return r
}

func (r *stubOrgRepo) Create(_ context.Context, org *domain.Organization) (*domain.Organization, error) {
	r.byID[org.ID] = org
	return org, nil
}

func (r *stubOrgRepo) FindByID(_ context.Context, id string) (*domain.Organization, error) {
	org, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	return org, nil
}

func (r *stubOrgRepo) List(_ context.Context) ([]*domain.Organization, error) { return nil, nil }

func (r *stubOrgRepo) ListActive(_ context.Context) ([]*domain.Organization, error) {
	return nil, nil
}

func (r *stubOrgRepo) Update(_ context.Context, org *domain.Organization) error {
	r.byID[org.ID] = org
	return nil
}

func (r *stubOrgRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTransactionCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewTransactionService(&stubTxRepo{}, newStubOrgRepo("org-1"), zerolog.Nop())

	for _, amount := range []money.Cents{0, -500} {
		_, err := svc.Create(context.Background(), domain.FlowExpense, ports.CreateTransactionInput{
			OrganizationID: "org-1",
			Name:           "rent",
			Amount:         amount,
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %d: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestTransactionCreateUnknownOrganization(t *testing.T) {
	svc := NewTransactionService(&stubTxRepo{}, newStubOrgRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), domain.FlowIncome, ports.CreateTransactionInput{
		OrganizationID: "ghost",
		Name:           "salary",
		Amount:         100,
	})
	if !errors.Is(err, domain.ErrOrganizationNotFound) {
		t.Fatalf("expected ErrOrganizationNotFound, got %v", err)
	}
}

func TestTransactionCreateDefaultsDate(t *testing.T) {
	repo := &stubTxRepo{}
	svc := NewTransactionService(repo, newStubOrgRepo("org-1"), zerolog.Nop())

	tx, err := svc.Create(context.Background(), domain.FlowExpense, ports.CreateTransactionInput{
		OrganizationID: "org-1",
		Name:           "groceries",
		Amount:         12345,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tx.Date.IsZero() {
		t.Error("expected a default date for a zero input date")
	}
	if tx.Kind != domain.FlowExpense {
		t.Errorf("kind = %s, want %s", tx.Kind, domain.FlowExpense)
	}
}
