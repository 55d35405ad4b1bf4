// Package metrics exposes pairing engine counters on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/pairing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pairing"

type Metrics struct {
	registry *prometheus.Registry

	rounds        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	rematches     prometheus.Counter
	guardDrops    prometheus.Counter
	coinFlips     prometheus.Counter
	results       prometheus.Counter
	finalizations prometheus.Counter
	ratingDeltas  prometheus.Histogram
}

var _ pairing.Observer = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Pairing runs by tournament kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_duration_seconds",
			Help:      "Time spent generating one round.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"kind"}),
		rematches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forced_rematches_total",
			Help:      "Boards that had to repeat an earlier encounter.",
		}),
		guardDrops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "color_guard_dropped_total",
			Help:      "Swiss rounds paired without color obligations.",
		}),
		coinFlips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "color_coin_flips_total",
			Help:      "Color decisions that fell through to the random draw.",
		}),
		results: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_recorded_total",
			Help:      "Game results written.",
		}),
		finalizations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_finalizations_total",
			Help:      "Tournaments closed with rating updates.",
		}),
		ratingDeltas: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rating_delta",
			Help:      "Per-player rating change at tournament closure.",
			Buckets:   prometheus.LinearBuckets(-64, 16, 9),
		}),
	}
	m.registry.MustRegister(
		m.rounds,
		m.duration,
		m.rematches,
		m.guardDrops,
		m.coinFlips,
		m.results,
		m.finalizations,
		m.ratingDeltas,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ColorCoinFlip() {
	m.coinFlips.Inc()
}

func (m *Metrics) ForcedRematch(domain.Pairing) {
	m.rematches.Inc()
}

func (m *Metrics) ColorGuardDropped(int) {
	m.guardDrops.Inc()
}

func (m *Metrics) ObserveRound(kind domain.Kind, took time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.rounds.WithLabelValues(string(kind), outcome).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(took.Seconds())
}

func (m *Metrics) ResultRecorded() {
	m.results.Inc()
}

func (m *Metrics) RatingsFinalized(deltas []int) {
	m.finalizations.Inc()
	for _, d := range deltas {
		m.ratingDeltas.Observe(float64(d))
	}
}
