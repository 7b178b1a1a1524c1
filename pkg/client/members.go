package client

import (
	"context"
	"net/url"
)

type CreateMemberInput struct {
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	RoleID         string `json:"roleId"`
}

func (c *Client) Members(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/api/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) Member(ctx context.Context, id string) (*Member, error) {
	var member Member
	if err := c.get(ctx, "/api/members/"+url.PathEscape(id), &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) MembersByOrganization(ctx context.Context, organizationID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/api/members/organization/"+url.PathEscape(organizationID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) MembersByUser(ctx context.Context, userID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/api/members/user/"+url.PathEscape(userID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) MemberByUserAndOrganization(ctx context.Context, userID, organizationID string) (*Member, error) {
	var member Member
	path := "/api/members/user/" + url.PathEscape(userID) + "/organization/" + url.PathEscape(organizationID)
	if err := c.get(ctx, path, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	var member Member
	if err := c.post(ctx, "/api/members", input, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) UpdateMemberRole(ctx context.Context, id, roleID string) (*Member, error) {
	var member Member
	body := map[string]string{"roleId": roleID}
	if err := c.put(ctx, "/api/members/"+url.PathEscape(id)+"/role", body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/members/"+url.PathEscape(id))
}
