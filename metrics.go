// Copyright 2026 The Skiptrie Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package skiptrie

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds metrics for the tree.
type Metrics struct {
	// Keys is the number of keys (terminators) in the tree.
	Keys int64
	// Nodes is the number of nodes linked into the live tree.
	Nodes int64
	// RetiredNodes is the number of unlinked nodes held for deferred
	// reclamation until Close.
	RetiredNodes int64
	// Splits is the cumulative number of edge splits performed by inserts.
	Splits int64
	// Merges is the cumulative number of node merges performed by Compact.
	Merges int64
}

// Metrics returns a point-in-time snapshot of the tree's metrics.
func (t *Tree[V]) Metrics() Metrics {
	return Metrics{
		Keys:         t.count.Load(),
		Nodes:        t.nodes.Load(),
		RetiredNodes: t.retiredCount.Load(),
		Splits:       t.splits.Load(),
		Merges:       t.merges.Load(),
	}
}

func (m Metrics) String() string {
	return fmt.Sprintf("keys: %d\nnodes: %d (%d retired)\nsplits: %d\nmerges: %d\n",
		m.Keys, m.Nodes, m.RetiredNodes, m.Splits, m.Merges)
}

var (
	descKeys = prometheus.NewDesc(
		"skiptrie_keys", "Number of keys in the tree.", nil, nil)
	descNodes = prometheus.NewDesc(
		"skiptrie_nodes", "Number of nodes in the live tree.", nil, nil)
	descRetired = prometheus.NewDesc(
		"skiptrie_retired_nodes", "Number of unlinked nodes awaiting reclamation.", nil, nil)
	descSplits = prometheus.NewDesc(
		"skiptrie_splits_total", "Cumulative number of edge splits.", nil, nil)
	descMerges = prometheus.NewDesc(
		"skiptrie_merges_total", "Cumulative number of compaction merges.", nil, nil)
)

// Collector is a prometheus.Collector exposing a tree's metrics.
type Collector struct {
	metrics func() Metrics
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a prometheus.Collector for the given tree.
func NewCollector[V any](t *Tree[V]) *Collector {
	return &Collector{metrics: t.Metrics}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descKeys
	ch <- descNodes
	ch <- descRetired
	ch <- descSplits
	ch <- descMerges
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.metrics()
	ch <- prometheus.MustNewConstMetric(descKeys, prometheus.GaugeValue, float64(m.Keys))
	ch <- prometheus.MustNewConstMetric(descNodes, prometheus.GaugeValue, float64(m.Nodes))
	ch <- prometheus.MustNewConstMetric(descRetired, prometheus.GaugeValue, float64(m.RetiredNodes))
	ch <- prometheus.MustNewConstMetric(descSplits, prometheus.CounterValue, float64(m.Splits))
	ch <- prometheus.MustNewConstMetric(descMerges, prometheus.CounterValue, float64(m.Merges))
}
