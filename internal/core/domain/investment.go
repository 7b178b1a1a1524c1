package domain

import (
	"errors"
	"time"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

var ErrInvestmentNotFound = errors.New("investment not found")

// Investment is an asset purchase recorded by a member, e.g. "Tesouro Selic
// 2029" under the "Renda Fixa" category.
type Investment struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	MemberID       string      `json:"memberId"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Amount         money.Cents `json:"amount"`
	PurchaseDate   time.Time   `json:"-"`
	Description    string      `json:"description,omitempty"`
}
