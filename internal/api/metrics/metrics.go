// Package metrics defines and registers all custom Prometheus metrics for
// the FinPath API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finpath"

// ── Bank sync metrics ────────────────────────────────────────────────────────

// SyncProcessedTotal counts imported bank transactions that completed
// processing successfully.
// Label:
//   - kind: the resulting cash flow kind, "expense" or "income"
var SyncProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_processed_total",
		Help:      "Total number of bank transactions successfully imported.",
	},
	[]string{"kind"},
)

// SyncErrorsTotal counts imported bank transactions that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "account_not_found", "disconnected", "insert_failed")
var SyncErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_errors_total",
		Help:      "Total number of bank transactions that failed import.",
	},
	[]string{"reason"},
)

// SyncDedupTotal counts deduplication decisions on imported transactions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new transaction, processed)
var SyncDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// SyncQueueDepth tracks the current number of transactions waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var SyncQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sync_queue_depth",
		Help:      "Current number of bank transactions pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Record metrics ───────────────────────────────────────────────────────────

// RecordsCreatedTotal counts financial records created through the API.
// Label:
//   - resource: "expense", "income", "investment", "goal", or "contribution"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of financial records created, by resource.",
	},
	[]string{"resource"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
