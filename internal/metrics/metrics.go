// Package metrics expone métricas Prometheus del servicio: tráfico HTTP,
// operaciones sobre records y tamaño del store.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        *prometheus.GaugeVec
	recordOpsTotal      *prometheus.CounterVec
}

// Config agrupa dependencias opcionales.
type Config struct {
	Namespace string
	// RecordCount alimenta el gauge records_stored. Nil lo omite.
	RecordCount func() int
	// GoCollectors registra las métricas de runtime y de proceso.
	GoCollectors bool
}

// New crea y registra los collectors.
func New(cfg Config) (*Metrics, error) {
	ns := cfg.Namespace
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Número total de requests procesadas",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de los requests HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		httpInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "http_inflight_requests",
			Help:      "Requests en vuelo por método",
		}, []string{"method"}),
		recordOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "records_operations_total",
			Help:      "Operaciones sobre records por resultado",
		}, []string{"op", "result"}), // result: ok|not_found|invalid
	}

	cs := []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpInflight,
		m.recordOpsTotal,
	}
	if cfg.RecordCount != nil {
		count := cfg.RecordCount
		cs = append(cs, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "records_stored",
			Help:      "Cantidad de records en el store",
		}, func() float64 { return float64(count()) }))
	}
	if cfg.GoCollectors {
		cs = append(cs,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	for _, c := range cs {
		if err := registerCollector(m.registry, c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler devuelve el handler para el endpoint de scrape.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordOp cuenta una operación de records. Seguro sobre receiver nil.
func (m *Metrics) RecordOp(op, result string) {
	if m == nil {
		return
	}
	m.recordOpsTotal.WithLabelValues(op, result).Inc()
}

// UnmatchedRoute es la etiqueta path de requests que no matchean ninguna ruta.
const UnmatchedRoute = "unmatched"

// WithMetrics instrumenta requests HTTP (contadores, latencia, inflight).
// La etiqueta path es el patrón de chi ("/api/records/{id}"), que se conoce
// recién después de rutear.
func (m *Metrics) WithMetrics(next http.Handler) http.Handler {
	if m == nil || next == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := normalizeMethod(r.Method)

		m.httpInflight.WithLabelValues(method).Inc()
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			m.httpInflight.WithLabelValues(method).Dec()

			pathLabel := routeLabel(r)
			m.httpRequestDuration.WithLabelValues(method, pathLabel).Observe(time.Since(start).Seconds())

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			m.httpRequestsTotal.WithLabelValues(method, pathLabel, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(rec, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// registerCollector registra el collector ignorando duplicados.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// routeLabel devuelve el patrón de ruta que resolvió chi, o UnmatchedRoute.
func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	p := rctx.RoutePattern()
	if p == "" || strings.HasSuffix(p, "*") {
		return UnmatchedRoute
	}
	return p
}

var knownMethods = map[string]bool{
	http.MethodGet: true, http.MethodHead: true, http.MethodPost: true,
	http.MethodPut: true, http.MethodPatch: true, http.MethodDelete: true,
	http.MethodOptions: true,
}

// normalizeMethod acota la etiqueta method a los verbos estándar.
func normalizeMethod(m string) string {
	m = strings.ToUpper(m)
	if knownMethods[m] {
		return m
	}
	return "OTHER"
}
