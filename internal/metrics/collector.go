// Package metrics counts box lifecycle events. Collector implements
// cow.Tracker on prometheus counters and logs each event at debug level.
package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names exported by Collector.
const (
	allocatedName  = "cowbox_boxes_allocated_total"
	duplicatedName = "cowbox_boxes_duplicated_total"
	freedName      = "cowbox_boxes_freed_total"
	liveName       = "cowbox_boxes_live"
)

// Collector records box allocations, copy-on-write duplications and frees.
// It is safe for concurrent use.
type Collector struct {
	registry   *prometheus.Registry
	allocated  prometheus.Counter
	duplicated prometheus.Counter
	freed      prometheus.Counter
	live       prometheus.Gauge
	logger     *slog.Logger
}

// Snapshot is a point-in-time copy of the collector's counters.
type Snapshot struct {
	Allocated  int `json:"allocated" yaml:"allocated"`
	Duplicated int `json:"duplicated" yaml:"duplicated"`
	Freed      int `json:"freed" yaml:"freed"`
	Live       int `json:"live" yaml:"live"`
}

// NewCollector returns a collector with its own registry. A nil logger
// disables event logging.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Collector{
		registry: reg,
		allocated: factory.NewCounter(prometheus.CounterOpts{
			Name: allocatedName,
			Help: "Boxes allocated, including copy-on-write duplicates",
		}),
		duplicated: factory.NewCounter(prometheus.CounterOpts{
			Name: duplicatedName,
			Help: "Boxes allocated by copy-on-write",
		}),
		freed: factory.NewCounter(prometheus.CounterOpts{
			Name: freedName,
			Help: "Boxes whose count reached zero",
		}),
		live: factory.NewGauge(prometheus.GaugeOpts{
			Name: liveName,
			Help: "Boxes allocated and not yet freed",
		}),
		logger: logger,
	}
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Allocated implements cow.Tracker.
func (c *Collector) Allocated(id string) {
	c.allocated.Inc()
	c.live.Inc()
	c.logger.Debug("box allocated", "box", id)
}

// Duplicated implements cow.Tracker.
func (c *Collector) Duplicated(src, dst string) {
	c.duplicated.Inc()
	c.logger.Debug("box duplicated", "src", src, "dst", dst)
}

// Freed implements cow.Tracker.
func (c *Collector) Freed(id string) {
	c.freed.Inc()
	c.live.Dec()
	c.logger.Debug("box freed", "box", id)
}

// Snapshot gathers the current counter values.
func (c *Collector) Snapshot() (Snapshot, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case allocatedName:
				s.Allocated = int(m.GetCounter().GetValue())
			case duplicatedName:
				s.Duplicated = int(m.GetCounter().GetValue())
			case freedName:
				s.Freed = int(m.GetCounter().GetValue())
			case liveName:
				s.Live = int(m.GetGauge().GetValue())
			}
		}
	}
	return s, nil
}
