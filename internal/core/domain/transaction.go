package domain

import (
	"errors"
	"time"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

// FlowKind discriminates the two directions of a cash flow record. Expenses
// and incomes share every other attribute, so they are stored and processed
// as one transaction type.
type FlowKind string

const (
	FlowExpense FlowKind = "expense"
	FlowIncome  FlowKind = "income"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// Transaction is a single expense or income belonging to an organization.
// Amount is always positive; the direction lives in Kind.
type Transaction struct {
	ID                string      `json:"id"`
	Kind              FlowKind    `json:"-"`
	OrganizationID    string      `json:"organizationId"`
	TargetMemberID    string      `json:"targetMemberId,omitempty"`
	BankTransactionID string      `json:"bankTransactionId,omitempty"`
	Name              string      `json:"name"`
	Amount            money.Cents `json:"-"`
	Date              time.Time   `json:"-"`
	Description       string      `json:"description,omitempty"`
	Category          string      `json:"category,omitempty"`
}

// CategoryTotal is one bucket of a per-category aggregation.
type CategoryTotal struct {
	Category string
	Total    money.Cents
}
