package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const Namespace = "gymdash"

// SetupPrometheus creates the registry served on the metrics listener. Nil
// collectors are skipped so optional components can be passed as they are.
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.MetricsGC,
				collectors.MetricsMemory,
				collectors.MetricsScheduler,
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: Namespace}),
	)
	for _, c := range extraCollectors {
		if c == nil {
			continue
		}
		promRegistry.MustRegister(c)
	}

	return promRegistry
}

// NewVersionInfoGauge exposes the running version (commit hash) as a
// constant 1 gauge labeled with it.
func NewVersionInfoGauge(versionInfo string) prometheus.Gauge {
	versionInfo = strings.TrimSpace(versionInfo)
	if versionInfo == "" {
		versionInfo = "unknown"
	}
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   Namespace,
		Name:        "version_info",
		Help:        "Running gymdash version.",
		ConstLabels: prometheus.Labels{"version": versionInfo},
	})
	gauge.Set(1)
	return gauge
}
