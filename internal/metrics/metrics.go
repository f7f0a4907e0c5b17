package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_notifications_total",
			Help: "Gateway notifications processed, by classified outcome",
		},
		[]string{"outcome"},
	)

	SignatureFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_signature_failures_total",
			Help: "Notifications rejected because the signature did not verify",
		},
	)

	DuplicateDeliveriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_duplicate_deliveries_total",
			Help: "Notifications skipped because the order already had an outcome",
		},
	)

	PushDispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_dispatches_total",
			Help: "Push notification dispatch attempts, by result",
		},
		[]string{"status"},
	)

	TransactionsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Payment intents created with the gateway",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		NotificationsTotal,
		SignatureFailuresTotal,
		DuplicateDeliveriesTotal,
		PushDispatchesTotal,
		TransactionsCreatedTotal,
	)
}
