package memory

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes provider statistics as Prometheus metrics.
type Collector struct {
	provider *Provider

	records          *prometheus.Desc
	openRecords      *prometheus.Desc
	notes            *prometheus.Desc
	snapshotRebuilds *prometheus.Desc
	mutations        *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector reading live statistics from the provider.
func NewCollector(provider *Provider) *Collector {
	return &Collector{
		provider: provider,

		records: prometheus.NewDesc(
			"alarm_store_records",
			"Number of alarm records currently stored",
			nil, nil,
		),
		openRecords: prometheus.NewDesc(
			"alarm_store_open_records",
			"Number of stored records whose alarm condition is still active",
			nil, nil,
		),
		notes: prometheus.NewDesc(
			"alarm_store_notes",
			"Number of notes currently stored",
			nil, nil,
		),
		snapshotRebuilds: prometheus.NewDesc(
			"alarm_store_snapshot_rebuilds_total",
			"Total number of snapshot view rebuilds, by view",
			[]string{"view"}, nil,
		),
		mutations: prometheus.NewDesc(
			"alarm_store_mutations_total",
			"Total number of mutating operations applied to the store",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.openRecords
	ch <- c.notes
	ch <- c.snapshotRebuilds
	ch <- c.mutations
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.provider.stats()

	ch <- prometheus.MustNewConstMetric(
		c.records,
		prometheus.GaugeValue,
		float64(stats.records),
	)
	ch <- prometheus.MustNewConstMetric(
		c.openRecords,
		prometheus.GaugeValue,
		float64(stats.openRecords),
	)
	ch <- prometheus.MustNewConstMetric(
		c.notes,
		prometheus.GaugeValue,
		float64(stats.notes),
	)
	ch <- prometheus.MustNewConstMetric(
		c.snapshotRebuilds,
		prometheus.CounterValue,
		float64(stats.alarmRebuilds),
		"alarms",
	)
	ch <- prometheus.MustNewConstMetric(
		c.snapshotRebuilds,
		prometheus.CounterValue,
		float64(stats.noteRebuilds),
		"notes",
	)
	ch <- prometheus.MustNewConstMetric(
		c.mutations,
		prometheus.CounterValue,
		float64(stats.mutations),
	)
}
