package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MnKimJ/CPS251/internal/selection"
	"github.com/MnKimJ/CPS251/internal/studytimer"
)

const namespace = "cps251"

// Metrics represents the collection of all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Selection grid
	GridSelected prometheus.Gauge
	GridToggles  *prometheus.CounterVec
	GridClears   prometheus.Counter

	// Study timer
	TimerRunning      prometheus.Gauge
	TimerTicks        prometheus.Counter
	SessionsCompleted prometheus.Counter
	SessionMinutes    prometheus.Gauge
}

// NewMetrics creates all metrics on a dedicated registry, together with the
// standard Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.GridSelected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_selected_tiles",
			Help:      "Number of grid tiles currently selected",
		},
	)

	m.GridToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grid_toggles_total",
			Help:      "Total number of tile toggles",
		},
		[]string{"action"},
	)

	m.GridClears = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grid_clears_total",
			Help:      "Total number of times the selection was cleared",
		},
	)

	m.TimerRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "timer_running",
			Help:      "Whether the study timer is counting down (1=running, 0=idle)",
		},
	)

	m.TimerTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timer_ticks_total",
			Help:      "Total number of seconds counted down",
		},
	)

	m.SessionsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timer_sessions_completed_total",
			Help:      "Total number of study sessions run to completion",
		},
	)

	m.SessionMinutes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "timer_session_minutes",
			Help:      "Configured study session length in minutes",
		},
	)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GridSelected,
		m.GridToggles,
		m.GridClears,
		m.TimerRunning,
		m.TimerTicks,
		m.SessionsCompleted,
		m.SessionMinutes,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveGrid keeps the grid metrics in sync with g until the returned
// function is called.
func (m *Metrics) ObserveGrid(g *selection.Grid) func() {
	m.GridSelected.Set(float64(g.Len()))

	return g.Subscribe(func(s selection.Snapshot) {
		m.GridSelected.Set(float64(s.Count()))
		switch {
		case s.Cleared:
			m.GridClears.Inc()
		case s.Added:
			m.GridToggles.WithLabelValues("add").Inc()
		default:
			m.GridToggles.WithLabelValues("remove").Inc()
		}
	})
}

// ObserveTimer keeps the timer metrics in sync with t until the returned
// function is called.
func (m *Metrics) ObserveTimer(t *studytimer.Timer) func() {
	m.setTimerState(t.State())

	return t.Subscribe(func(ev studytimer.Event) {
		m.setTimerState(ev.State)
		switch ev.Kind {
		case studytimer.EventTicked:
			m.TimerTicks.Inc()
		case studytimer.EventExpired:
			m.SessionsCompleted.Inc()
		}
	})
}

func (m *Metrics) setTimerState(s studytimer.State) {
	running := 0.0
	if s.Running {
		running = 1
	}
	m.TimerRunning.Set(running)
	m.SessionMinutes.Set(float64(s.SessionMinutes))
}

// Handler returns the Prometheus HTTP handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
