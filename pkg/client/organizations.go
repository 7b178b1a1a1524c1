package client

import (
	"context"
	"net/url"
)

type CreateOrganizationInput struct {
	Name          string `json:"name"`
	IsActive      bool   `json:"isActive"`
	TrialExpireAt int64  `json:"trialExpireAt,omitempty"`
}

type UpdateOrganizationInput struct {
	Name          *string `json:"name,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
	TrialExpireAt *int64  `json:"trialExpireAt,omitempty"`
}

func (c *Client) Organizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "/api/organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) ActiveOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "/api/organizations/active", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) Organization(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	if err := c.get(ctx, "/api/organizations/"+url.PathEscape(id), &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) CreateOrganization(ctx context.Context, input CreateOrganizationInput) (*Organization, error) {
	var org Organization
	if err := c.post(ctx, "/api/organizations", input, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id string, input UpdateOrganizationInput) (*Organization, error) {
	var org Organization
	if err := c.put(ctx, "/api/organizations/"+url.PathEscape(id), input, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/organizations/"+url.PathEscape(id))
}
