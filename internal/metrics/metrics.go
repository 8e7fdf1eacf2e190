package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tableside",
			Name:      "orders_created_total",
			Help:      "Count of orders created.",
		},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tableside",
			Name:      "order_transitions_total",
			Help:      "Count of order status transitions by target status.",
		},
		[]string{"status"},
	)

	reservationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tableside",
			Name:      "reservations_created_total",
			Help:      "Count of reservations created.",
		},
	)

	tableOverrides = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tableside",
			Name:      "table_overrides_total",
			Help:      "Count of manual table status overrides by target status.",
		},
		[]string{"status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(ordersCreated, orderTransitions, reservationsCreated, tableOverrides)
	})
}

func IncOrderCreated() {
	ordersCreated.Inc()
}

func IncOrderTransition(status string) {
	orderTransitions.WithLabelValues(status).Inc()
}

func IncReservationCreated() {
	reservationsCreated.Inc()
}

func IncTableOverride(status string) {
	tableOverrides.WithLabelValues(status).Inc()
}
