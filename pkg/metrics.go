package semgraph

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type metrics struct {
	registry *prometheus.Registry

	// Gauges
	records []prometheus.GaugeFunc

	// Latency summaries
	createLatency  prometheus.Summary
	lookupLatency  prometheus.Summary
	assertLatency  prometheus.Summary
	resolveLatency prometheus.Summary
	deleteLatency  prometheus.Summary
	scanLatency    prometheus.Summary
}

func newMetrics(s *Store) *metrics {
	m := &metrics{
		createLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "create_latency_ns",
				Help: "latency to create a class, property, instance or terminal",
			},
		),
		lookupLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "lookup_latency_ns",
				Help: "latency to look up a single record by id",
			},
		),
		assertLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "assert_latency_ns",
				Help: "latency to validate and insert a triple",
			},
		),
		resolveLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "resolve_latency_ns",
				Help: "latency to resolve the subject or object of a triple",
			},
		),
		deleteLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "delete_latency_ns",
				Help: "latency to check references and delete a record",
			},
		),
		scanLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "scan_latency_ns",
				Help: "latency to scan a collection",
			},
		),
	}
	for _, coll := range allCollections {
		coll := coll
		m.records = append(m.records, prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "records",
				Help:        "number of records in a collection",
				ConstLabels: prometheus.Labels{"collection": string(coll.bucket)},
			},
			func() float64 {
				count := 0
				// an uninitialized store just reports zero
				_ = s.view(func(tx *bolt.Tx) error {
					count = coll.count(tx)
					return nil
				})
				return float64(count)
			},
		))
	}

	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	for _, gauge := range m.records {
		reg.MustRegister(gauge)
	}
	reg.MustRegister(m.createLatency)
	reg.MustRegister(m.lookupLatency)
	reg.MustRegister(m.assertLatency)
	reg.MustRegister(m.resolveLatency)
	reg.MustRegister(m.deleteLatency)
	reg.MustRegister(m.scanLatency)
	return m
}

// observe records the time since startTime; meant to be deferred.
func observe(summary prometheus.Summary, startTime time.Time) {
	summary.Observe(float64(time.Since(startTime).Nanoseconds()))
}
