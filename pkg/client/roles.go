package client

import (
	"context"
	"net/url"
)

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.get(ctx, "/api/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) Role(ctx context.Context, id string) (*Role, error) {
	var role Role
	if err := c.get(ctx, "/api/roles/"+url.PathEscape(id), &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) RoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	if err := c.get(ctx, "/api/roles/name/"+url.PathEscape(name), &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) CreateRole(ctx context.Context, name, description string) (*Role, error) {
	var role Role
	body := map[string]string{"name": name, "description": description}
	if err := c.post(ctx, "/api/roles", body, &role); err != nil {
		return nil, err
	}
	return &role, nil
}
