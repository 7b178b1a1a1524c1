package client

import (
	"context"
	"net/url"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

type CreateIncomeInput struct {
	OrganizationID string      `json:"organizationId"`
	TargetMemberID string      `json:"targetMemberId,omitempty"`
	Name           string      `json:"name"`
	IncomeDate     int64       `json:"incomeDate,omitempty"`
	IncomeAmount   money.Cents `json:"incomeAmount"`
	Description    string      `json:"description,omitempty"`
	Category       string      `json:"category,omitempty"`
}

type UpdateIncomeInput struct {
	TargetMemberID *string      `json:"targetMemberId,omitempty"`
	Name           *string      `json:"name,omitempty"`
	IncomeDate     *int64       `json:"incomeDate,omitempty"`
	IncomeAmount   *money.Cents `json:"incomeAmount,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Category       *string      `json:"category,omitempty"`
}

func (c *Client) Incomes(ctx context.Context) ([]Income, error) {
	var list []Income
	if err := c.get(ctx, "/api/incomes", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Income(ctx context.Context, id string) (*Income, error) {
	var inc Income
	if err := c.get(ctx, "/api/incomes/"+url.PathEscape(id), &inc); err != nil {
		return nil, err
	}
	return &inc, nil
}

func (c *Client) IncomesByOrganization(ctx context.Context, organizationID string) ([]Income, error) {
	var list []Income
	if err := c.get(ctx, "/api/incomes/organization/"+url.PathEscape(organizationID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) IncomeTotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error) {
	var total money.Cents
	if err := c.get(ctx, "/api/incomes/organization/"+url.PathEscape(organizationID)+"/total", &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) IncomeCategoryTotals(ctx context.Context, organizationID string) ([]CategoryTotal, error) {
	path := "/api/incomes/organization/" + url.PathEscape(organizationID) + "/categories/totals"
	var buckets []CategoryTotal
	if err := c.get(ctx, path, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (c *Client) IncomesByCategory(ctx context.Context, organizationID, category string) ([]Income, error) {
	path := "/api/incomes/organization/" + url.PathEscape(organizationID) + "/category/" + url.PathEscape(category)
	var list []Income
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) IncomeTotalByCategory(ctx context.Context, organizationID, category string) (money.Cents, error) {
	path := "/api/incomes/organization/" + url.PathEscape(organizationID) + "/category/" + url.PathEscape(category) + "/total"
	var total money.Cents
	if err := c.get(ctx, path, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) CreateIncome(ctx context.Context, input CreateIncomeInput) (*Income, error) {
	var inc Income
	if err := c.post(ctx, "/api/incomes", input, &inc); err != nil {
		return nil, err
	}
	return &inc, nil
}

func (c *Client) UpdateIncome(ctx context.Context, id string, input UpdateIncomeInput) (*Income, error) {
	var inc Income
	if err := c.put(ctx, "/api/incomes/"+url.PathEscape(id), input, &inc); err != nil {
		return nil, err
	}
	return &inc, nil
}

func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/incomes/"+url.PathEscape(id))
}
