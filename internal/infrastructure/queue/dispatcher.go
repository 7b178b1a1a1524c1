package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rafaelgavarron/Fintech/internal/api/metrics"
	"github.com/rafaelgavarron/Fintech/internal/core/domain"
	"github.com/rafaelgavarron/Fintech/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes imported bank transactions to a fixed set of workers
// using consistent hashing on the bank account id, guaranteeing per-account
// import ordering.
type Dispatcher struct {
	workers []chan domain.BankTransaction
	service ports.SyncService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.SyncService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.BankTransaction, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.BankTransaction, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a transaction to the worker responsible for its account.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(tx domain.BankTransaction) {
	i := d.shardIndex(tx.BankAccountID)
	d.workers[i] <- tx
	metrics.SyncQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// EnqueueBatch enqueues multiple transactions preserving per-account ordering.
func (d *Dispatcher) EnqueueBatch(txs []domain.BankTransaction) {
	for _, tx := range txs {
		d.Enqueue(tx)
	}
}

// shardIndex maps a bank account id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bankAccountID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bankAccountID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.BankTransaction) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case tx, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, tx); err != nil {
				metrics.SyncErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("external_id", tx.ExternalID).
					Str("bank_account_id", tx.BankAccountID).
					Int("worker_id", id).
					Msg("bank transaction import failed")
			} else {
				kind := "income"
				if tx.Amount < 0 {
					kind = "expense"
				}
				metrics.SyncProcessedTotal.WithLabelValues(kind).Inc()
			}
			metrics.SyncQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
