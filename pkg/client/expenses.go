package client

import (
	"context"
	"net/url"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

type CreateExpenseInput struct {
	OrganizationID string      `json:"organizationId"`
	TargetMemberID string      `json:"targetMemberId,omitempty"`
	Name           string      `json:"name"`
	ExpenseDate    int64       `json:"expenseDate,omitempty"`
	ExpenseAmount  money.Cents `json:"expenseAmount"`
	Description    string      `json:"description,omitempty"`
	Category       string      `json:"category,omitempty"`
}

type UpdateExpenseInput struct {
	TargetMemberID *string      `json:"targetMemberId,omitempty"`
	Name           *string      `json:"name,omitempty"`
	ExpenseDate    *int64       `json:"expenseDate,omitempty"`
	ExpenseAmount  *money.Cents `json:"expenseAmount,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Category       *string      `json:"category,omitempty"`
}

func (c *Client) Expenses(ctx context.Context) ([]Expense, error) {
	var list []Expense
	if err := c.get(ctx, "/api/expenses", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Expense(ctx context.Context, id string) (*Expense, error) {
	var exp Expense
	if err := c.get(ctx, "/api/expenses/"+url.PathEscape(id), &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *Client) ExpensesByOrganization(ctx context.Context, organizationID string) ([]Expense, error) {
	var list []Expense
	if err := c.get(ctx, "/api/expenses/organization/"+url.PathEscape(organizationID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ExpenseTotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error) {
	var total money.Cents
	if err := c.get(ctx, "/api/expenses/organization/"+url.PathEscape(organizationID)+"/total", &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) ExpenseCategoryTotals(ctx context.Context, organizationID string) ([]CategoryTotal, error) {
	path := "/api/expenses/organization/" + url.PathEscape(organizationID) + "/categories/totals"
	var buckets []CategoryTotal
	if err := c.get(ctx, path, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (c *Client) ExpensesByCategory(ctx context.Context, organizationID, category string) ([]Expense, error) {
	path := "/api/expenses/organization/" + url.PathEscape(organizationID) + "/category/" + url.PathEscape(category)
	var list []Expense
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ExpenseTotalByCategory(ctx context.Context, organizationID, category string) (money.Cents, error) {
	path := "/api/expenses/organization/" + url.PathEscape(organizationID) + "/category/" + url.PathEscape(category) + "/total"
	var total money.Cents
	if err := c.get(ctx, path, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	var exp Expense
	if err := c.post(ctx, "/api/expenses", input, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *Client) UpdateExpense(ctx context.Context, id string, input UpdateExpenseInput) (*Expense, error) {
	var exp Expense
	if err := c.put(ctx, "/api/expenses/"+url.PathEscape(id), input, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/expenses/"+url.PathEscape(id))
}
