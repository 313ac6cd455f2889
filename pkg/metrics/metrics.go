package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library"

var (
	// Registry holds the service collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	loansIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "circulation",
		Name:      "loans_issued_total",
		Help:      "Loans issued.",
	})

	loansReturned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "circulation",
		Name:      "loans_returned_total",
		Help:      "Loans returned, split by overdue.",
	}, []string{"overdue"})

	loansRenewed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "circulation",
		Name:      "loans_renewed_total",
		Help:      "Loan renewals.",
	})

	finesAssessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fines",
		Name:      "assessed_total",
		Help:      "Fines created, split by origin.",
	}, []string{"origin"})

	finesAmount = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fines",
		Name:      "assessed_amount_total",
		Help:      "Sum of assessed fine amounts.",
	})

	payments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fines",
		Name:      "payments_total",
		Help:      "Payments recorded against fines.",
	})

	overdueLoans = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "circulation",
		Name:      "overdue_loans",
		Help:      "Active loans past their due date at the last sweep.",
	})
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		loansIssued,
		loansReturned,
		loansRenewed,
		finesAssessed,
		finesAmount,
		payments,
		overdueLoans,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func LoanIssued() { loansIssued.Inc() }

func LoanReturned(overdue bool) {
	loansReturned.WithLabelValues(strconv.FormatBool(overdue)).Inc()
}

func LoanRenewed() { loansRenewed.Inc() }

func FineAssessed(origin string, amount float64) {
	finesAssessed.WithLabelValues(origin).Inc()
	finesAmount.Add(amount)
}

func PaymentRecorded() { payments.Inc() }

func SetOverdueLoans(n int) { overdueLoans.Set(float64(n)) }
