package client

import (
	"context"
	"net/url"
)

type ConnectBankAccountInput struct {
	OrganizationID string `json:"organizationId"`
	MemberID       string `json:"memberId"`
	BankName       string `json:"bankName"`
	AccessToken    string `json:"accessToken,omitempty"`
	RefreshToken   string `json:"refreshToken,omitempty"`
	TokenExpireAt  int64  `json:"tokenExpireAt,omitempty"`
}

func (c *Client) BankAccounts(ctx context.Context) ([]BankAccount, error) {
	var list []BankAccount
	if err := c.get(ctx, "/api/bank-accounts", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) BankAccount(ctx context.Context, id string) (*BankAccount, error) {
	var acc BankAccount
	if err := c.get(ctx, "/api/bank-accounts/"+url.PathEscape(id), &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *Client) BankAccountsByOrganization(ctx context.Context, organizationID string) ([]BankAccount, error) {
	var list []BankAccount
	if err := c.get(ctx, "/api/bank-accounts/organization/"+url.PathEscape(organizationID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ConnectedBankAccounts(ctx context.Context, organizationID string) ([]BankAccount, error) {
	path := "/api/bank-accounts/organization/" + url.PathEscape(organizationID) + "/connected"
	var list []BankAccount
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) BankAccountsByMember(ctx context.Context, memberID string) ([]BankAccount, error) {
	var list []BankAccount
	if err := c.get(ctx, "/api/bank-accounts/member/"+url.PathEscape(memberID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ConnectBankAccount(ctx context.Context, input ConnectBankAccountInput) (*BankAccount, error) {
	var acc BankAccount
	if err := c.post(ctx, "/api/bank-accounts/connect", input, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (c *Client) DisconnectBankAccount(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/bank-accounts/"+url.PathEscape(id))
}
