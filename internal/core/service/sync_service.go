package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for imported bank
// transactions.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, bankAccountID, externalID string) (bool, error)
	Mark(ctx context.Context, bankAccountID, externalID string) error
	Unmark(ctx context.Context, bankAccountID, externalID string) error
}

type syncService struct {
	accounts     ports.BankAccountRepository
	transactions ports.TransactionRepository
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewSyncService returns a SyncService that materialises imported bank
// transactions as expense or income records.
func NewSyncService(
	accounts ports.BankAccountRepository,
	transactions ports.TransactionRepository,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.SyncService {
	return &syncService{
		accounts:     accounts,
		transactions: transactions,
		dedup:        dedup,
		log:          log,
	}
}

// Process validates, deduplicates, and persists a single imported bank
// transaction. Credits become incomes, debits become expenses.
func (s *syncService) Process(ctx context.Context, in domain.BankTransaction) error {
	if in.Amount == 0 {
		return fmt.Errorf("process bank transaction: %w", domain.ErrInvalidAmount)
	}

	// 1. Idempotency check — silently skip transactions already imported.
	isDup, err := s.dedup.IsDuplicate(ctx, in.BankAccountID, in.ExternalID)
	if err != nil {
		s.log.Warn().Err(err).Str("external_id", in.ExternalID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("external_id", in.ExternalID).Str("bank_account_id", in.BankAccountID).Msg("duplicate bank transaction skipped")
		return nil
	}

	// 2. The account must exist and still be connected.
	acc, err := s.accounts.FindByID(ctx, in.BankAccountID)
	if err != nil {
		return fmt.Errorf("process bank transaction: %w", err)
	}
	if !acc.IsConnected {
		return fmt.Errorf("process bank transaction: %w", domain.ErrAccountDisconnected)
	}

	// 3. Mark as imported before writing so a retry never double-books.
	if markErr := s.dedup.Mark(ctx, in.BankAccountID, in.ExternalID); markErr != nil {
		s.log.Warn().Err(markErr).Str("external_id", in.ExternalID).Msg("failed to set dedup key")
	}

	// 4. Classify by sign and persist as a cash flow record.
	kind := domain.FlowIncome
	amount := in.Amount
	if amount < 0 {
		kind = domain.FlowExpense
		amount = -amount
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	name := in.Description
	if name == "" {
		name = acc.BankName + " transaction"
	}

	tx := &domain.Transaction{
		Kind:              kind,
		OrganizationID:    acc.OrganizationID,
		TargetMemberID:    acc.MemberID,
		BankTransactionID: in.ExternalID,
		Name:              name,
		Amount:            amount,
		Date:              date,
		Category:          in.Category,
	}
	if _, err := s.transactions.Create(ctx, tx); err != nil {
		// Release the dedup key so the provider's next replay is not
		// silently dropped for the whole TTL.
		if unmarkErr := s.dedup.Unmark(ctx, in.BankAccountID, in.ExternalID); unmarkErr != nil {
			s.log.Warn().Err(unmarkErr).Str("external_id", in.ExternalID).Msg("failed to release dedup key")
		}
		return fmt.Errorf("process bank transaction: create record: %w", err)
	}

	// 5. Record the sync moment on the account (non-fatal on failure).
	if err := s.accounts.MarkSynced(ctx, acc.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("bank_account_id", acc.ID).Msg("failed to update last sync time")
	}

	s.log.Info().
		Str("external_id", in.ExternalID).
		Str("bank_account_id", in.BankAccountID).
		Str("kind", string(kind)).
		Int64("amount", int64(amount)).
		Msg("bank transaction imported")

	return nil
}
