package domain

import (
	"errors"
	"time"

	"github.com/rafaelgavarron/Fintech/pkg/money"
)

var (
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrAccountDisconnected = errors.New("bank account is not connected")
)

// BankAccount is a connection to an external bank on behalf of a member.
// Tokens are opaque to this system; they are stored and replayed to the
// provider as-is.
type BankAccount struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	MemberID       string    `json:"memberId"`
	BankName       string    `json:"bankName"`
	AccessToken    string    `json:"accessToken,omitempty"`
	RefreshToken   string    `json:"refreshToken,omitempty"`
	TokenExpireAt  time.Time `json:"-"`
	IsConnected    bool      `json:"isConnected"`
	LastSyncAt     time.Time `json:"-"`
}

// BankTransaction is a raw movement imported from a connected bank account.
// A negative amount is a debit (expense), a positive amount a credit
// (income). ExternalID is the bank's own identifier and is the dedup key.
type BankTransaction struct {
	ExternalID    string
	BankAccountID string
	Amount        money.Cents
	Date          time.Time
	Description   string
	Category      string
}
