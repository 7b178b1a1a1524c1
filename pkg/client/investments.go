package client

import (
	"context"
	"net/url"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

type CreateInvestmentInput struct {
	OrganizationID string      `json:"organizationId"`
	MemberID       string      `json:"memberId"`
	Name           string      `json:"name"`
	Category       string      `json:"category,omitempty"`
	Amount         money.Cents `json:"amount"`
	PurchaseDate   int64       `json:"purchaseDate,omitempty"`
	Description    string      `json:"description,omitempty"`
}

type UpdateInvestmentInput struct {
	Name         *string      `json:"name,omitempty"`
	Category     *string      `json:"category,omitempty"`
	Amount       *money.Cents `json:"amount,omitempty"`
	PurchaseDate *int64       `json:"purchaseDate,omitempty"`
	Description  *string      `json:"description,omitempty"`
}

func (c *Client) Investments(ctx context.Context) ([]Investment, error) {
	var list []Investment
	if err := c.get(ctx, "/api/investments", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Investment(ctx context.Context, id string) (*Investment, error) {
	var inv Investment
	if err := c.get(ctx, "/api/investments/"+url.PathEscape(id), &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) InvestmentsByOrganization(ctx context.Context, organizationID string) ([]Investment, error) {
	var list []Investment
	if err := c.get(ctx, "/api/investments/organization/"+url.PathEscape(organizationID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) InvestmentsByMember(ctx context.Context, memberID string) ([]Investment, error) {
	var list []Investment
	if err := c.get(ctx, "/api/investments/member/"+url.PathEscape(memberID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) InvestmentTotalByOrganization(ctx context.Context, organizationID string) (money.Cents, error) {
	var total money.Cents
	if err := c.get(ctx, "/api/investments/organization/"+url.PathEscape(organizationID)+"/total", &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) CreateInvestment(ctx context.Context, input CreateInvestmentInput) (*Investment, error) {
	var inv Investment
	if err := c.post(ctx, "/api/investments", input, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) UpdateInvestment(ctx context.Context, id string, input UpdateInvestmentInput) (*Investment, error) {
	var inv Investment
	if err := c.put(ctx, "/api/investments/"+url.PathEscape(id), input, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *Client) DeleteInvestment(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/investments/"+url.PathEscape(id))
}
