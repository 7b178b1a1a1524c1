package client

import (
	"context"
	"net/url"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

type CreateGoalInput struct {
	OrganizationID string      `json:"organizationId"`
	Name           string      `json:"name"`
	DesiredAmount  money.Cents `json:"desiredAmount"`
	DueDate        int64       `json:"dueDate,omitempty"`
	Description    string      `json:"description,omitempty"`
}

type UpdateGoalInput struct {
	Name          *string      `json:"name,omitempty"`
	DesiredAmount *money.Cents `json:"desiredAmount,omitempty"`
	DueDate       *int64       `json:"dueDate,omitempty"`
	Description   *string      `json:"description,omitempty"`
}

type CreateContributionInput struct {
	GoalID           string      `json:"goalId"`
	Value            money.Cents `json:"value"`
	ContributionDate int64       `json:"contributionDate,omitempty"`
	Description      string      `json:"description,omitempty"`
}

func (c *Client) Goals(ctx context.Context) ([]Goal, error) {
	var list []Goal
	if err := c.get(ctx, "/api/goals", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Goal(ctx context.Context, id string) (*Goal, error) {
	var goal Goal
	if err := c.get(ctx, "/api/goals/"+url.PathEscape(id), &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) GoalsByOrganization(ctx context.Context, organizationID string) ([]Goal, error) {
	var list []Goal
	if err := c.get(ctx, "/api/goals/organization/"+url.PathEscape(organizationID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateGoal(ctx context.Context, input CreateGoalInput) (*Goal, error) {
	var goal Goal
	if err := c.post(ctx, "/api/goals", input, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id string, input UpdateGoalInput) (*Goal, error) {
	var goal Goal
	if err := c.put(ctx, "/api/goals/"+url.PathEscape(id), input, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/goals/"+url.PathEscape(id))
}

func (c *Client) GoalContributions(ctx context.Context, goalID string) ([]GoalContribution, error) {
	var list []GoalContribution
	if err := c.get(ctx, "/api/goals-contributions/goal/"+url.PathEscape(goalID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GoalContributionTotal(ctx context.Context, goalID string) (money.Cents, error) {
	var total money.Cents
	if err := c.get(ctx, "/api/goals-contributions/goal/"+url.PathEscape(goalID)+"/total", &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) CreateGoalContribution(ctx context.Context, input CreateContributionInput) (*GoalContribution, error) {
	var contribution GoalContribution
	if err := c.post(ctx, "/api/goals-contributions", input, &contribution); err != nil {
		return nil, err
	}
	return &contribution, nil
}
