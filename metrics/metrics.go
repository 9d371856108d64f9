package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	LRNumbersAllocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelbook_lr_numbers_allocated_total",
			Help: "LR numbers issued, per origin branch code",
		},
		[]string{"branch"},
	)

	LedgerPosts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelbook_ledger_posts_total",
			Help: "Ledger entries appended, by type and lifecycle event",
		},
		[]string{"type", "event"},
	)

	LedgerDuplicates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parcelbook_ledger_duplicates_total",
			Help: "Ledger posts suppressed because the event was already recorded",
		},
		[]string{"event"},
	)

	SweptBookings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parcelbook_swept_bookings_total",
			Help: "Bookings moved from Incoming to Pending by the cutoff sweep",
		},
	)
)

// Register adds every collector to reg. Call once per process.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		LRNumbersAllocated,
		LedgerPosts,
		LedgerDuplicates,
		SweptBookings,
	)
}
