// Package metrics собирает Prometheus-метрики HTTP-фасада и вызовов удалённого API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter считает все HTTP-запросы фасада
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDurationHistogram — длительность запросов фасада в секундах
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// GatewayRequestCounter считает исходящие запросы к удалённому storefront API
	GatewayRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_gateway_requests_total",
			Help: "Total number of requests issued to the remote storefront API",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, RequestDurationHistogram, GatewayRequestCounter)
}

// Handler возвращает HTTP-обработчик для эндпоинта /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGateway фиксирует исход одного вызова удалённого API.
func ObserveGateway(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayRequestCounter.WithLabelValues(operation, outcome).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware возвращает chi-совместимый middleware, записывающий счётчик и гистограмму
// по каждому запросу. В качестве path используется шаблон маршрута, а не сырой URL.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(rec.status)

		RequestCounter.WithLabelValues(r.Method, path, status).Inc()
		RequestDurationHistogram.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}
