// Package prom adapts shardedarc.Metrics onto Prometheus collectors.
package prom

import (
	"github.com/nmegiddo/arc/shardedarc"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements shardedarc.Metrics and exports Prometheus
// counters/gauges. Safe for concurrent use; all Prometheus metric types
// are goroutine-safe, and every method here only ever calls straight
// through to one.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	ghostHit *prometheus.CounterVec
	evicts   prometheus.Counter

	sizeT1 prometheus.Gauge
	sizeT2 prometheus.Gauge
	sizeB1 prometheus.Gauge
	sizeB2 prometheus.Gauge

	target prometheus.Gauge
	cap    prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Resident (T1/T2) Lookup hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Lookups for keys absent from every list",
			ConstLabels: constLabels,
		}),
		ghostHit: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "ghost_hits_total",
				Help:        "Lookup hits against a ghost list, by list",
				ConstLabels: constLabels,
			},
			[]string{"list"},
		),
		evicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "evictions_total",
			Help:        "Resident payloads released via Evict (demotion to a ghost list, or Close)",
			ConstLabels: constLabels,
		}),
		sizeT1: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "t1_size",
			Help: "Resident weight of the recency list", ConstLabels: constLabels,
		}),
		sizeT2: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "t2_size",
			Help: "Resident weight of the frequency list", ConstLabels: constLabels,
		}),
		sizeB1: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "b1_size",
			Help: "Ghost weight of the recency list", ConstLabels: constLabels,
		}),
		sizeB2: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "b2_size",
			Help: "Ghost weight of the frequency list", ConstLabels: constLabels,
		}),
		target: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "target_p",
			Help: "Current adaptive target size of T1", ConstLabels: constLabels,
		}),
		cap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "capacity",
			Help: "Configured capacity target c", ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(
		a.hits, a.misses, a.ghostHit, a.evicts,
		a.sizeT1, a.sizeT2, a.sizeB1, a.sizeB2,
		a.target, a.cap,
	)
	return a
}

func (a *Adapter) Hit()  { a.hits.Inc() }
func (a *Adapter) Miss() { a.misses.Inc() }

func (a *Adapter) GhostHit(list shardedarc.GhostList) {
	a.ghostHit.WithLabelValues(ghostLabel(list)).Inc()
}

func (a *Adapter) Evict() { a.evicts.Inc() }

func (a *Adapter) Sizes(t1, t2, b1, b2 int64) {
	a.sizeT1.Set(float64(t1))
	a.sizeT2.Set(float64(t2))
	a.sizeB1.Set(float64(b1))
	a.sizeB2.Set(float64(b2))
}

func (a *Adapter) Adjust(p, c int64) {
	a.target.Set(float64(p))
	a.cap.Set(float64(c))
}

func ghostLabel(list shardedarc.GhostList) string {
	if list == shardedarc.GhostB2 {
		return "b2"
	}
	return "b1"
}

// Compile-time check: ensure Adapter implements shardedarc.Metrics.
var _ shardedarc.Metrics = (*Adapter)(nil)
