package client

import (
	"context"
	"net/url"
)

type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserInput struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (c *Client) Register(ctx context.Context, input RegisterUserInput) (*User, error) {
	var user User
	if err := c.post(ctx, "/api/users/register", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.post(ctx, "/api/users/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RequestVerification asks the server to issue an email verification code.
// The code itself travels out of band.
func (c *Client) RequestVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/api/users/verification-code", body, nil)
}

// VerifyUser confirms a verification code and returns the verified user.
func (c *Client) VerifyUser(ctx context.Context, email, code string) (*User, error) {
	body := map[string]string{"email": email, "code": code}
	var user User
	if err := c.post(ctx, "/api/users/verify", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/users/email/"+url.PathEscape(email), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*User, error) {
	var user User
	if err := c.put(ctx, "/api/users/"+url.PathEscape(id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/users/"+url.PathEscape(id))
}
