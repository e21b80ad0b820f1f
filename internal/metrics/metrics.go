package metrics

import (
	"fmt"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "growdash_api_requests_total",
		Help: "The total number of Growfy API requests",
	}, []string{"method", "path", "status_code"})

	apiLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growdash_api_request_latency_seconds",
			Help:    "Histogram of Growfy API request latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path", "status_code"},
	)
)

// ObserveResty is a resty response middleware recording request counts and
// latency per method, path and status.
func ObserveResty(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	statusCode := fmt.Sprintf("%d", response.StatusCode())

	apiRequests.WithLabelValues(response.Request.Method, reqURL.Path, statusCode).Inc()
	apiLatency.WithLabelValues(response.Request.Method, reqURL.Path, statusCode).
		Observe(response.Duration().Seconds())

	return nil
}
