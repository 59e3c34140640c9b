// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package metrics exports a live hashmap.Table's size, capacity and
// load factor as Prometheus metrics, pulled fresh on every scrape
// rather than pushed on every mutation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aristanetworks/verset/hashmap"
)

// TableCollector is a prometheus.Collector over a single Table. It
// holds no counters of its own; Collect reads the table directly, so
// the exported values are always current as of the scrape.
type TableCollector[K, V any] struct {
	table        *hashmap.Table[K, V]
	size         *prometheus.Desc
	bucketCount  *prometheus.Desc
	loadFactor   *prometheus.Desc
	displacement *prometheus.Desc
}

// displacementBuckets are the histogram's upper bounds: most keys
// should land in their own home bucket (0) or a handful of probes
// away; anything past 7 signals a degrading hash or load factor.
var displacementBuckets = []float64{0, 1, 2, 3, 5, 7, 15, 31}

// NewTableCollector builds a collector for table, with every metric
// prefixed by name (e.g. "wordfreq" yields "wordfreq_size", ...).
func NewTableCollector[K, V any](name string, table *hashmap.Table[K, V]) *TableCollector[K, V] {
	return &TableCollector[K, V]{
		table:        table,
		size:         prometheus.NewDesc(name+"_size", "Number of keys currently stored.", nil, nil),
		bucketCount:  prometheus.NewDesc(name+"_bucket_count", "Current length of the bucket array.", nil, nil),
		loadFactor:   prometheus.NewDesc(name+"_load_factor", "size divided by bucket_count.", nil, nil),
		displacement: prometheus.NewDesc(name+"_displacement", "Distribution of per-key displacement from home bucket.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *TableCollector[K, V]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.bucketCount
	ch <- c.loadFactor
	ch <- c.displacement
}

// Collect implements prometheus.Collector.
func (c *TableCollector[K, V]) Collect(ch chan<- prometheus.Metric) {
	size := c.table.Size()
	bucketCount := c.table.BucketCount()

	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(size))
	ch <- prometheus.MustNewConstMetric(c.bucketCount, prometheus.GaugeValue, float64(bucketCount))

	var loadFactor float64
	if bucketCount > 0 {
		loadFactor = float64(size) / float64(bucketCount)
	}
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, loadFactor)

	sum, counts := displacementHistogram(c.table)
	ch <- prometheus.MustNewConstHistogram(c.displacement, uint64(size), sum, counts)
}

// displacementHistogram turns a fresh snapshot of per-key
// displacements into the sum and cumulative bucket counts a
// Prometheus const histogram expects.
func displacementHistogram[K, V any](table *hashmap.Table[K, V]) (sum float64, counts map[float64]uint64) {
	counts = make(map[float64]uint64, len(displacementBuckets))
	for _, d := range table.Displacements() {
		sum += float64(d)
		for _, upper := range displacementBuckets {
			if float64(d) <= upper {
				counts[upper]++
			}
		}
	}
	return sum, counts
}
