package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedPath: метка path для запросов мимо зарегистрированных маршрутов
const unmatchedPath = "unmatched"

var latencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// PrometheusMiddleware считает время ответа, число запросов в работе и
// ответы со статусом от 400. Метки: method, шаблон маршрута gin, status.
//
//	reg := prometheus.NewRegistry()
//	mw := middleware.NewPrometheusMiddleware("blockreg", reg)
//	r.Use(mw.Handler())
//	mw.RegisterMetricsEndpoint(r)
type PrometheusMiddleware struct {
	latency  *prometheus.HistogramVec
	inFlight prometheus.Gauge
	failed   *prometheus.CounterVec
	gatherer prometheus.Gatherer
}

// NewPrometheusMiddleware регистрирует метрики с префиксом service в reg.
// nil означает глобальный регистр prometheus.
func NewPrometheusMiddleware(service string, reg *prometheus.Registry) *PrometheusMiddleware {
	labels := []string{"method", "path", "status"}
	pm := &PrometheusMiddleware{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: service,
			Name:      "http_request_duration_seconds",
			Help:      "Время обработки запроса к API справочника.",
			Buckets:   latencyBuckets,
		}, labels),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: service,
			Name:      "http_requests_inflight",
			Help:      "Запросы, которые обрабатываются прямо сейчас.",
		}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: service,
			Name:      "http_request_errors_total",
			Help:      "Ответы со статусом 400 и выше.",
		}, labels),
	}

	registerer, gatherer := registryOrDefault(reg)
	registerer.MustRegister(pm.latency, pm.inFlight, pm.failed)
	pm.gatherer = gatherer
	return pm
}

func registryOrDefault(reg *prometheus.Registry) (prometheus.Registerer, prometheus.Gatherer) {
	if reg == nil {
		return prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	}
	return reg, reg
}

// routeLabel возвращает шаблон маршрута, а не сырой путь: /api/blocks/:id
// вместо /api/blocks/49
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedPath
}

// Handler подключается через router.Use
func (pm *PrometheusMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pm.inFlight.Inc()
		defer pm.inFlight.Dec()

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		code := c.Writer.Status()
		values := []string{c.Request.Method, routeLabel(c), strconv.Itoa(code)}
		pm.latency.WithLabelValues(values...).Observe(elapsed.Seconds())
		if code >= 400 {
			pm.failed.WithLabelValues(values...).Inc()
		}
	}
}

// RegisterMetricsEndpoint отдаёт на GET /metrics тот регистр, в который
// записаны метрики middleware
func (pm *PrometheusMiddleware) RegisterMetricsEndpoint(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(pm.gatherer, promhttp.HandlerOpts{})))
}
