package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

type stubTransactionService struct {
	created *domain.Transaction
	kind    domain.FlowKind
	total   money.Cents
	err     error
}

func (s *stubTransactionService) Create(_ context.Context, kind domain.FlowKind, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.kind = kind
	s.created = &domain.Transaction{
		ID:             "tx-1",
		Kind:           kind,
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		Amount:         input.Amount,
		Date:           input.Date,
		Category:       input.Category,
	}
	return s.created, nil
}

func (s *stubTransactionService) Get(_ context.Context, _ domain.FlowKind, _ string) (*domain.Transaction, error) {
	return s.created, s.err
}

func (s *stubTransactionService) List(_ context.Context, _ domain.FlowKind) ([]*domain.Transaction, error) {
	return nil, s.err
}

func (s *stubTransactionService) ByOrganization(_ context.Context, _ domain.FlowKind, _ string) ([]*domain.Transaction, error) {
	return nil, s.err
}

func (s *stubTransactionService) ByCategory(_ context.Context, _ domain.FlowKind, _, _ string) ([]*domain.Transaction, error) {
	return nil, s.err
}

func (s *stubTransactionService) TotalByOrganization(_ context.Context, _ domain.FlowKind, _ string) (money.Cents, error) {
	return s.total, s.err
}

func (s *stubTransactionService) TotalByCategory(_ context.Context, _ domain.FlowKind, _, _ string) (money.Cents, error) {
	return s.total, s.err
}

func (s *stubTransactionService) CategoryTotals(_ context.Context, _ domain.FlowKind, _ string) ([]domain.CategoryTotal, error) {
	return nil, nil
}

func (s *stubTransactionService) Update(_ context.Context, _ domain.FlowKind, _ string, _ ports.UpdateTransactionInput) (*domain.Transaction, error) {
	return s.created, s.err
}

func (s *stubTransactionService) Delete(_ context.Context, _ domain.FlowKind, _ string) error {
	return s.err
}

func TestCreateExpenseUsesExpenseFields(t *testing.T) {
	svc := &stubTransactionService{}
	h := NewExpenseHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/api/expenses",
		`{"organizationId":"org-1","name":"rent","expenseAmount":150000,"expenseDate":1767225600,"category":"housing"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.kind != domain.FlowExpense {
		t.Errorf("kind = %s, want expense", svc.kind)
	}
	if svc.created.Amount != 150000 {
		t.Errorf("amount = %d, want 150000", svc.created.Amount)
	}
	if !svc.created.Date.Equal(time.Unix(1767225600, 0).UTC()) {
		t.Errorf("date = %v", svc.created.Date)
	}

	var got expenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ExpenseAmount != 150000 || got.ExpenseDate != 1767225600 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestCreateIncomeUsesIncomeFields(t *testing.T) {
	svc := &stubTransactionService{}
	h := NewIncomeHandler(svc)
	c, rec := newTestContext(t, http.MethodPost, "/api/incomes",
		`{"organizationId":"org-1","name":"salary","incomeAmount":780000,"incomeDate":1767225600}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.kind != domain.FlowIncome {
		t.Errorf("kind = %s, want income", svc.kind)
	}

	var got incomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.IncomeAmount != 780000 {
		t.Errorf("unexpected body: %+v", got)
	}
}

// Totals travel as bare JSON numbers in cents.
func TestTotalByOrganizationIsBareNumber(t *testing.T) {
	h := NewExpenseHandler(&stubTransactionService{total: 123456})
	c, rec := newTestContext(t, http.MethodGet, "/api/expenses/organization/org-1/total", "")
	c.SetParamNames("organizationId")
	c.SetParamValues("org-1")

	if err := h.TotalByOrganization(c); err != nil {
		t.Fatalf("TotalByOrganization: %v", err)
	}
	if body := rec.Body.String(); body != "123456\n" {
		t.Errorf("body = %q, want bare number", body)
	}
}

func TestCreateExpenseMissingOrganization(t *testing.T) {
	h := NewExpenseHandler(&stubTransactionService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/expenses",
		`{"name":"rent","expenseAmount":100}`)

	err := h.Create(c)
	if err == nil {
		t.Fatal("expected a validation error")
	}
}
