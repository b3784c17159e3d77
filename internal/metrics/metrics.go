package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

var LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bonusledger",
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Ledger operations by operation and result code.",
}, []string{"operation", "result"})

var LedgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bonusledger",
	Subsystem: "ledger",
	Name:      "operation_duration_seconds",
	Help:      "Ledger operation latency, including the transaction.",
	Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
}, []string{"operation"})

// Notifications counts outbound events by result: delivered, failed, dropped.
var Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bonusledger",
	Subsystem: "notify",
	Name:      "events_total",
	Help:      "Outbound ledger events by delivery result.",
}, []string{"result"})

var ExpiredPromotionUsers = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bonusledger",
	Subsystem: "expiry",
	Name:      "recalculated_users_total",
	Help:      "Users recalculated because a promotional entry expired.",
})

// ObserveOperation records one finished ledger operation. Errors are
// labelled with their reason code.
func ObserveOperation(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = domain.CodeOf(err)
	}
	LedgerOperations.WithLabelValues(operation, result).Inc()
	LedgerOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
