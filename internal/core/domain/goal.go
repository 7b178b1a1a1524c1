package domain

import (
	"errors"
	"time"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrContributionNotFound = errors.New("goal contribution not found")
)

// Goal is a savings target with a deadline.
type Goal struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	Name           string      `json:"name"`
	DesiredAmount  money.Cents `json:"desiredAmount"`
	CreatedAt      time.Time   `json:"-"`
	DueDate        time.Time   `json:"-"`
	Description    string      `json:"description,omitempty"`
}

// GoalContribution is a discrete deposit counted toward a goal.
type GoalContribution struct {
	ID               string      `json:"id"`
	GoalID           string      `json:"goalId"`
	Value            money.Cents `json:"value"`
	ContributionDate time.Time   `json:"-"`
	Description      string      `json:"description,omitempty"`
}
