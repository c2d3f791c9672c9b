package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pix",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled, by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pix",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration, dominated by the outbound provider call",
			Buckets: []float64{
				0.01, 0.02, 0.05, 0.1, 0.2, 0.5,
				1, 2, 5, 10, 20, 30,
			},
		},
		[]string{"method", "route"},
	)

	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pix",
			Name:      "webhooks_received_total",
			Help:      "Webhook deliveries by verification outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, WebhooksReceivedTotal)
}

func IncRequest(method, route, status string) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
}

func ObserveDuration(method, route string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func IncWebhook(outcome string) {
	WebhooksReceivedTotal.WithLabelValues(outcome).Inc()
}
