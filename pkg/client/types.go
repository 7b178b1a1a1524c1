package client

import "github.com/rafaelgavarron/Fintech/pkg/money"

// Wire types mirror the server's JSON shapes: dates as epoch seconds,
// amounts as integer cents.

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type Organization struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     int64  `json:"createdAt"`
	TrialExpireAt int64  `json:"trialExpireAt"`
}

type Member struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	UserID         string `json:"userId"`
	RoleID         string `json:"roleId"`
}

type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Expense struct {
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

type Income struct {
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

// CategoryTotal is one bucket of the per-category aggregation endpoints.
type CategoryTotal struct {
	Category string      `json:"category"`
	Total    money.Cents `json:"total"`
}

type Investment struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	MemberID       string      `json:"memberId"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Amount         money.Cents `json:"amount"`
	PurchaseDate   int64       `json:"purchaseDate"`
	Description    string      `json:"description,omitempty"`
}

type Goal struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	Name           string      `json:"name"`
	DesiredAmount  money.Cents `json:"desiredAmount"`
	CreatedAt      int64       `json:"createdAt"`
	DueDate        int64       `json:"dueDate"`
	Description    string      `json:"description,omitempty"`
}

type GoalContribution struct {
	ID               string      `json:"id"`
	GoalID           string      `json:"goalId"`
	Value            money.Cents `json:"value"`
	ContributionDate int64       `json:"contributionDate"`
	Description      string      `json:"description,omitempty"`
}

type BankAccount struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	MemberID       string `json:"memberId"`
	BankName       string `json:"bankName"`
	IsConnected    bool   `json:"isConnected"`
	LastSyncAt     int64  `json:"lastSyncAt"`
}

// LoginResponse is the login envelope. Success=false with a nil error means
// the server rejected the credentials.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token,omitempty"`
}
