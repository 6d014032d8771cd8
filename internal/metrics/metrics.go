package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Number of bookings successfully created.",
	})

	bookingsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_rejected_total",
		Help: "Number of booking attempts rejected, by reason.",
	}, []string{"reason"})

	paymentFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payment_failures_total",
		Help: "Number of failed payment charges.",
	})

	availabilityChecks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "availability_checks_total",
		Help: "Number of availability evaluations performed.",
	})
)

// Register installs the collectors into the default registry.
// Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			bookingsRejected,
			paymentFailures,
			availabilityChecks,
		)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncBookingRejected counts a rejected attempt. Reason is a short stable
// label ("not_working_day", "holiday", "outside_hours", "time_conflict", ...).
func IncBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func IncPaymentFailure() {
	paymentFailures.Inc()
}

func IncAvailabilityCheck() {
	availabilityChecks.Inc()
}
