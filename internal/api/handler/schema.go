package handler

import (
	"time"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// Dates travel as epoch seconds and monetary values as integer cents. The
// response types below add the fields the domain structs keep off the wire.

func epoch(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func newUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Verified:  u.Verified,
		CreatedAt: epoch(u.CreatedAt),
		UpdatedAt: epoch(u.UpdatedAt),
	}
}

func newUserResponses(users []*domain.User) []*userResponse {
	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

type organizationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     int64  `json:"createdAt"`
	TrialExpireAt int64  `json:"trialExpireAt"`
}

func newOrganizationResponse(o *domain.Organization) *organizationResponse {
	return &organizationResponse{
		ID:            o.ID,
		Name:          o.Name,
		IsActive:      o.IsActive,
		CreatedAt:     epoch(o.CreatedAt),
		TrialExpireAt: epoch(o.TrialExpireAt),
	}
}

func newOrganizationResponses(orgs []*domain.Organization) []*organizationResponse {
	out := make([]*organizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, newOrganizationResponse(o))
	}
	return out
}

// expenseResponse and incomeResponse share the transaction core but expose
// kind-specific field names, matching the resource they were fetched from.
type expenseResponse struct {
	ID                string      `json:"id"`
	OrganizationID    string      `json:"organizationId"`
	TargetMemberID    string      `json:"targetMemberId,omitempty"`
	BankTransactionID string      `json:"bankTransactionId,omitempty"`
	Name              string      `json:"name"`
	ExpenseDate       int64       `json:"expenseDate"`
	ExpenseAmount     money.Cents `json:"expenseAmount"`
	Description       string      `json:"description,omitempty"`
	Category          string      `json:"category,omitempty"`
}

func newExpenseResponse(t *domain.Transaction) *expenseResponse {
	return &expenseResponse{
		ID:                t.ID,
		OrganizationID:    t.OrganizationID,
		TargetMemberID:    t.TargetMemberID,
		BankTransactionID: t.BankTransactionID,
		Name:              t.Name,
		ExpenseDate:       epoch(t.Date),
		ExpenseAmount:     t.Amount,
		Description:       t.Description,
		Category:          t.Category,
	}
}

type incomeResponse struct {
	ID                string      `json:"id"`
	OrganizationID    string      `json:"organizationId"`
	TargetMemberID    string      `json:"targetMemberId,omitempty"`
	BankTransactionID string      `json:"bankTransactionId,omitempty"`
	Name              string      `json:"name"`
	IncomeDate        int64       `json:"incomeDate"`
	IncomeAmount      money.Cents `json:"incomeAmount"`
	Description       string      `json:"description,omitempty"`
	Category          string      `json:"category,omitempty"`
}

func newIncomeResponse(t *domain.Transaction) *incomeResponse {
	return &incomeResponse{
		ID:                t.ID,
		OrganizationID:    t.OrganizationID,
		TargetMemberID:    t.TargetMemberID,
		BankTransactionID: t.BankTransactionID,
		Name:              t.Name,
		IncomeDate:        epoch(t.Date),
		IncomeAmount:      t.Amount,
		Description:       t.Description,
		Category:          t.Category,
	}
}

type categoryTotalResponse struct {
	Category string      `json:"category"`
	Total    money.Cents `json:"total"`
}

type investmentResponse struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	MemberID       string      `json:"memberId"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Amount         money.Cents `json:"amount"`
	PurchaseDate   int64       `json:"purchaseDate"`
	Description    string      `json:"description,omitempty"`
}

func newInvestmentResponse(i *domain.Investment) *investmentResponse {
	return &investmentResponse{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		MemberID:       i.MemberID,
		Name:           i.Name,
		Category:       i.Category,
		Amount:         i.Amount,
		PurchaseDate:   epoch(i.PurchaseDate),
		Description:    i.Description,
	}
}

type goalResponse struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	Name           string      `json:"name"`
	DesiredAmount  money.Cents `json:"desiredAmount"`
	CreatedAt      int64       `json:"createdAt"`
	DueDate        int64       `json:"dueDate"`
	Description    string      `json:"description,omitempty"`
}

func newGoalResponse(g *domain.Goal) *goalResponse {
	return &goalResponse{
		ID:             g.ID,
		OrganizationID: g.OrganizationID,
		Name:           g.Name,
		DesiredAmount:  g.DesiredAmount,
		CreatedAt:      epoch(g.CreatedAt),
		DueDate:        epoch(g.DueDate),
		Description:    g.Description,
	}
}

type contributionResponse struct {
	ID               string      `json:"id"`
	GoalID           string      `json:"goalId"`
	Value            money.Cents `json:"value"`
	ContributionDate int64       `json:"contributionDate"`
	Description      string      `json:"description,omitempty"`
}

func newContributionResponse(c *domain.GoalContribution) *contributionResponse {
	return &contributionResponse{
		ID:               c.ID,
		GoalID:           c.GoalID,
		Value:            c.Value,
		ContributionDate: epoch(c.ContributionDate),
		Description:      c.Description,
	}
}

type bankAccountResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	MemberID       string `json:"memberId"`
	BankName       string `json:"bankName"`
	IsConnected    bool   `json:"isConnected"`
	LastSyncAt     int64  `json:"lastSyncAt"`
}

func newBankAccountResponse(a *domain.BankAccount) *bankAccountResponse {
	return &bankAccountResponse{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		MemberID:       a.MemberID,
		BankName:       a.BankName,
		IsConnected:    a.IsConnected,
		LastSyncAt:     epoch(a.LastSyncAt),
	}
}
