// v1
// internal/observability/metrics.go
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hyve-systems-inc/simulations-sub001/internal/sim"
)

type Metrics struct {
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	stepsTotal        prometheus.Counter
	stepDuration      prometheus.Histogram
	zoneAirTemp       *prometheus.GaugeVec
	tcpi              prometheus.Gauge
	coolingPower      prometheus.Gauge
	energyDrift       prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		stepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coldsim_steps_total",
			Help: "Total simulation steps advanced.",
		}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "coldsim_step_duration_seconds",
			Help:    "Histogram of wall-clock durations of one simulation step.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
		}),
		zoneAirTemp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "coldsim_zone_air_temp_celsius",
			Help: "Current air temperature per zone.",
		}, []string{"zone"}),
		tcpi: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coldsim_tcpi",
			Help: "Current turbulent cooling performance index.",
		}),
		coolingPower: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coldsim_cooling_power_watts",
			Help: "Current cooling unit electrical draw.",
		}),
		energyDrift: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coldsim_energy_drift_joules",
			Help: "Total-energy drift against the run baseline.",
		}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.stepsTotal,
		m.stepDuration,
		m.zoneAirTemp,
		m.tcpi,
		m.coolingPower,
		m.energyDrift,
	)

	return m
}

// ObserveStep records one advance of the engine and the state it produced.
func (m *Metrics) ObserveStep(s sim.State, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.stepsTotal.Inc()
	m.stepDuration.Observe(elapsed.Seconds())
	for i, t := range s.AirTemp {
		m.zoneAirTemp.WithLabelValues(strconv.Itoa(i)).Set(t)
	}
	m.tcpi.Set(s.TCPI)
	m.coolingPower.Set(s.CoolingPower)
}

// SetEnergyDrift publishes the façade's conservation figure.
func (m *Metrics) SetEnergyDrift(drift float64) {
	if m == nil {
		return
	}
	m.energyDrift.Set(drift)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (m *Metrics) WrapHandler(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		duration := time.Since(start).Seconds()
		if m != nil {
			m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.httpDuration.WithLabelValues(route).Observe(duration)
		}
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
