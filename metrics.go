package gobox

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gobox",
			Name:      "api_requests_total",
			Help:      "API requests by method and response code (code \"error\" for transport failures).",
		},
		[]string{"method", "code"},
	)

	apiRequestSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gobox",
			Name:      "api_request_seconds",
			Help:      "API request latency, retries included.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// metricsTransport records one observation per logical SDK call.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mt.base.RoundTrip(req)
	apiRequestSeconds.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	apiRequestsTotal.WithLabelValues(req.Method, code).Inc()
	return resp, err
}
