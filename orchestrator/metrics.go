// SPDX-License-Identifier: MIT

package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "antpath",
		Name:      "orchestration_duration_seconds",
		Help:      "Wall time of orchestration runs.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "antpath",
		Name:      "orchestrations_total",
		Help:      "Orchestration runs by outcome.",
	}, []string{"outcome"})
)
