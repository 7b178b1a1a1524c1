package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
)

// Imported bank transactions can be replayed by the provider for up to a
// statement cycle, so keys live long enough to cover overlapping syncs.
const dedupTTL = 45 * 24 * time.Hour

// DedupChecker provides idempotency checks for bank transaction imports.
// Key format: sync:<bank_account_id>:<external_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this bank transaction was already imported.
func (d *DedupChecker) IsDuplicate(ctx context.Context, bankAccountID, externalID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(bankAccountID, externalID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.SyncDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.SyncDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this bank transaction has been imported.
func (d *DedupChecker) Mark(ctx context.Context, bankAccountID, externalID string) error {
	return d.client.Set(ctx, d.key(bankAccountID, externalID), "1", dedupTTL).Err()
}

// Unmark releases an imported marker after a failed write so the
// transaction can be replayed.
func (d *DedupChecker) Unmark(ctx context.Context, bankAccountID, externalID string) error {
	return d.client.Del(ctx, d.key(bankAccountID, externalID)).Err()
}

func (d *DedupChecker) key(bankAccountID, externalID string) string {
	return fmt.Sprintf("sync:%s:%s", bankAccountID, externalID)
}
