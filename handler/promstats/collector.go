// Package promstats exports handler statistics as Prometheus metrics.
package promstats

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/svclog/core"
	"github.com/philipp01105/svclog/handler"
)

const namespace = "svclog"

var levels = []core.Level{core.DebugLevel, core.InfoLevel, core.WarningLevel, core.ErrorLevel}

// Collector implements prometheus.Collector over a set of named handlers.
type Collector struct {
	handlers      map[string]handler.StatsProvider
	processedDesc *prometheus.Desc
	failedDesc    *prometheus.Desc
}

// NewCollector returns a Collector reporting every handler under its
// map key as the "handler" label.
func NewCollector(handlers map[string]handler.StatsProvider) *Collector {
	hs := make(map[string]handler.StatsProvider, len(handlers))
	for name, h := range handlers {
		hs[name] = h
	}
	return &Collector{
		handlers: hs,
		processedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "handler", "processed_total"),
			"Lines written by the handler.",
			[]string{"handler"}, nil,
		),
		failedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "handler", "failed_total"),
			"Lines the handler failed to write, by level.",
			[]string{"handler", "level"}, nil,
		),
	}
}

// Describe sends descriptions of metrics.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processedDesc
	ch <- c.failedDesc
}

// Collect sends the current counter values.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	names := make([]string, 0, len(c.handlers))
	for name := range c.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		snap := c.handlers[name].Stats().GetSnapshot()
		ch <- prometheus.MustNewConstMetric(c.processedDesc, prometheus.CounterValue, float64(snap.ProcessedTotal), name)
		for _, level := range levels {
			ch <- prometheus.MustNewConstMetric(c.failedDesc, prometheus.CounterValue,
				float64(snap.FailedTotal[level]), name, level.String())
		}
	}
}
