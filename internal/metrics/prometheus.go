package metrics

import (
	"sync"

	"github.com/diegoclair/shift-roster/internal/domain/contract"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector records generation metrics. Collectors are created
// and registered on first use.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	rosterSize  prometheus.Gauge
	periodDays  prometheus.Gauge
	shortfalls  *prometheus.CounterVec
}

var _ contract.ScheduleMetrics = (*PrometheusCollector)(nil)

// NewPrometheus uses prometheus.DefaultRegisterer when reg is nil and the
// "shift_roster" namespace when namespace is empty.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "shift_roster"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.generations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "generations_total",
			Help:      "Total schedules generated.",
		}, []string{})

		p.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "generation_seconds",
			Help:      "Time spent generating one schedule.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		})

		p.rosterSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "last_roster_size",
			Help:      "Employees in the most recently generated schedule.",
		})

		p.periodDays = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "last_period_days",
			Help:      "Days in the most recently generated schedule.",
		})

		p.shortfalls = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "schedule",
			Name:      "shortfalls_total",
			Help:      "Days whose rest or role target could not be met, by kind.",
		}, []string{"kind"})

		p.reg.MustRegister(p.generations, p.duration, p.rosterSize, p.periodDays, p.shortfalls)
	})
}

func (p *PrometheusCollector) ObserveGeneration(seconds float64, days, employees int) {
	p.ensureRegistered()
	p.generations.WithLabelValues().Inc()
	p.duration.Observe(seconds)
	p.rosterSize.Set(float64(employees))
	p.periodDays.Set(float64(days))
}

func (p *PrometheusCollector) RecordShortfall(kind string) {
	p.ensureRegistered()
	p.shortfalls.WithLabelValues(kind).Inc()
}
