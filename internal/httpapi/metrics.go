package httpapi

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tokensChecked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telspell_tokens_checked_total",
		Help: "Tokens classified by the correct endpoint",
	})

	tokensMisspelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telspell_tokens_misspelled_total",
		Help: "Tokens not found in the vocabulary",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "telspell_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "status"})

	correctionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "telspell_correction_duration_seconds",
		Help:    "Time spent correcting one request",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts requests to route by response status.
func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	}
}
