package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/match"
)

const namespace = "vipong"

// SnapshotSource provides per-match counters at scrape time
type SnapshotSource interface {
	Snapshots() []match.Snapshot
}

// ScoreCollector exports match counters read from source on every scrape
type ScoreCollector struct {
	source SnapshotSource

	scoreDesc   *prometheus.Desc
	servesDesc  *prometheus.Desc
	framesDesc  *prometheus.Desc
	matchesDesc *prometheus.Desc
}

// NewScoreCollector creates a collector over source
func NewScoreCollector(source SnapshotSource) *ScoreCollector {
	return &ScoreCollector{
		source: source,
		scoreDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "score_total"),
			"Points scored per match and side.",
			[]string{"match", "side"}, nil,
		),
		servesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "serves_total"),
			"Balls served per match.",
			[]string{"match"}, nil,
		),
		framesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "frames_total"),
			"Ticks processed per match.",
			[]string{"match"}, nil,
		),
		matchesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "matches"),
			"Live matches.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *ScoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.scoreDesc
	ch <- c.servesDesc
	ch <- c.framesDesc
	ch <- c.matchesDesc
}

// Collect implements prometheus.Collector
func (c *ScoreCollector) Collect(ch chan<- prometheus.Metric) {
	snaps := c.source.Snapshots()

	for _, s := range snaps {
		id := s.ID.String()
		ch <- prometheus.MustNewConstMetric(c.scoreDesc, prometheus.CounterValue, float64(s.Left), id, core.SideLeft.String())
		ch <- prometheus.MustNewConstMetric(c.scoreDesc, prometheus.CounterValue, float64(s.Right), id, core.SideRight.String())
		ch <- prometheus.MustNewConstMetric(c.servesDesc, prometheus.CounterValue, float64(s.Serves), id)
		ch <- prometheus.MustNewConstMetric(c.framesDesc, prometheus.CounterValue, float64(s.Frame), id)
	}
	ch <- prometheus.MustNewConstMetric(c.matchesDesc, prometheus.GaugeValue, float64(len(snaps)))
}
