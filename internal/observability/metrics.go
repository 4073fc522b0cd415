package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "rejections_total",
		Help:      "Number of rejected roster operations grouped by reason.",
	}, []string{"reason"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})

	publishErrorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "events",
		Name:      "publish_errors_total",
		Help:      "Number of roster events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge, publishErrorCounter)
}

// RecordSignup counts a successful signup and updates the roster gauge.
func RecordSignup(activity string, participants int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordUnregistration counts a successful unregistration and updates the roster gauge.
func RecordUnregistration(activity string, participants int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(participants))
}

// RecordRejection counts a rejected operation by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// RecordPublishError counts a failed event publish.
func RecordPublishError() {
	publishErrorCounter.Inc()
}

// SetRosterSize initialises the roster gauge, used when seeding the store.
func SetRosterSize(activity string, participants int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(participants))
}
