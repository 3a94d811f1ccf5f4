package ec

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/e256/internal/logger"
	"github.com/smartcontractkit/libocr/commontypes"
)

type config struct {
	workers           int
	logger            commontypes.Logger
	metricsRegisterer prometheus.Registerer
}

// Option configures the construction of a curve.
type Option func(*config) error

func defaultConfig() *config {
	return &config{
		workers: runtime.GOMAXPROCS(0),
		logger:  logger.Discard(),
	}
}

// WithWorkers sets the number of concurrent workers used to enumerate the curve points. Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("invalid number of workers %d, must be positive", n)
		}
		c.workers = n
		return nil
	}
}

// WithLogger sets the logger. By default, nothing is logged.
func WithLogger(l commontypes.Logger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// WithMetricsRegisterer registers the curve's metrics with the given registerer. Curves sharing a registerer share
// their collectors. By default, metrics are collected into a private registry.
func WithMetricsRegisterer(r prometheus.Registerer) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("metrics registerer must not be nil")
		}
		c.metricsRegisterer = r
		return nil
	}
}
