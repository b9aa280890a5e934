package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SignupsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total users created",
		},
	)
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"status"}, // ok|failed
	)
	RoomsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rooms_created_total",
			Help: "Total rooms created",
		},
	)
	MessagesPostedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "messages_posted_total",
			Help: "Total messages posted",
		},
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(SignupsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(RoomsCreatedTotal)
	prometheus.MustRegister(MessagesPostedTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
