package ec

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "e256"

// Operation labels of the membership failure counter.
const (
	opAdd    = "add"
	opNeg    = "neg"
	opMul    = "mul"
	opDecode = "decode"
)

type metrics struct {
	enumerationDuration prometheus.Histogram
	candidatesTested    prometheus.Counter
	curveOrder          prometheus.Gauge
	membershipFailures  *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}

	m := &metrics{
		enumerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "enumeration_duration_seconds",
			Help:      "Time taken to enumerate all points of a curve.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		candidatesTested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "candidates_tested_total",
			Help:      "Number of (x, y) candidates tested against a curve equation.",
		}),
		curveOrder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "curve_order",
			Help:      "Number of points, including the identity, of the most recently constructed curve.",
		}),
		membershipFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "membership_failures_total",
			Help:      "Number of group operations rejected because an input point is not on the curve.",
		}, []string{"op"}),
	}

	var err error
	if m.enumerationDuration, err = register(registerer, m.enumerationDuration); err != nil {
		return nil, err
	}
	if m.candidatesTested, err = register(registerer, m.candidatesTested); err != nil {
		return nil, err
	}
	if m.curveOrder, err = register(registerer, m.curveOrder); err != nil {
		return nil, err
	}
	if m.membershipFailures, err = register(registerer, m.membershipFailures); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c, or returns the equivalent collector if one is already registered.
func register[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, err
}
