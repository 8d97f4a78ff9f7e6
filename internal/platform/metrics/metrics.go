package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

func New() *Collector {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sanrise_http_requests_total",
		Help: "HTTP requests served, by method and status class.",
	}, []string{"method", "status"})

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sanrise_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	registry.MustRegister(requests, durations)

	return &Collector{
		registry:  registry,
		requests:  requests,
		durations: durations,
	}
}

func (c *Collector) Record(method string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, statusClass(status)).Inc()
	c.durations.WithLabelValues(method).Observe(duration.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
