package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow counters exposed on /metrics.
var (
	// OrdersCreated counts orders successfully persisted.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_created_total",
		Help: "Total number of orders created",
	})

	// OrdersRejected counts creation attempts rejected by a domain rule,
	// labeled by error code.
	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_rejected_total",
		Help: "Total number of order creation attempts rejected by a domain rule",
	}, []string{"code"})

	// BatchItems counts individual items submitted through batch processing.
	BatchItems = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_batch_items_total",
		Help: "Total number of batch items processed",
	})

	// NotifyFailures counts failed partner-system notifications. Failures are
	// swallowed by the workflow, so the counter is the main visibility signal.
	NotifyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_notify_failures_total",
		Help: "Total number of failed partner system notifications",
	})
)
