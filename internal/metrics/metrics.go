package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SettlementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tip_settlements_total",
			Help: "Processor webhook deliveries by settlement outcome",
		},
		[]string{"outcome"},
	)

	TipAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tip_amount_cents",
			Help:    "Distribution of settled tip amounts in minor units",
			Buckets: prometheus.ExponentialBuckets(100, 2, 12),
		},
		[]string{"currency"},
	)

	AnalyticsFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_write_failures_total",
			Help: "Analytics appends that failed and were dropped",
		},
		[]string{"sink"},
	)

	AnalyticsProjectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_events_projected_total",
			Help: "Analytics events written by the projection worker",
		},
		[]string{"event_type", "result"},
	)

	CheckoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout session creation attempts by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		SettlementsTotal,
		TipAmounts,
		AnalyticsFailuresTotal,
		AnalyticsProjectedTotal,
		CheckoutSessionsTotal,
	)
}
