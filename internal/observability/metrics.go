package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "signups_total",
		Help:      "Number of successful enrollments per activity.",
	}, []string{"activity"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "withdrawals_total",
		Help:      "Number of successful withdrawals per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "rejections_total",
		Help:      "Number of rejected requests grouped by reason.",
	}, []string{"reason"})

	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "catalog",
		Name:      "roster_size",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, withdrawalCounter, rejectionCounter, rosterGauge)
}

// RecordSignup counts a successful enrollment and moves the roster gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordWithdrawal counts a successful withdrawal and moves the roster gauge.
func RecordWithdrawal(activity string, rosterSize int) {
	withdrawalCounter.WithLabelValues(activity).Inc()
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejection counts a rejected request by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// SetRosterSize primes the roster gauge, typically at catalog load.
func SetRosterSize(activity string, rosterSize int) {
	rosterGauge.WithLabelValues(activity).Set(float64(rosterSize))
}
