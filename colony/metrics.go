// SPDX-License-Identifier: MIT

package colony

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "antpath",
		Name:      "colony_rounds_total",
		Help:      "Colony rounds completed, including aborted rounds.",
	})

	antsWalkedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "antpath",
		Name:      "ants_walked_total",
		Help:      "Ant walks attempted.",
	})

	antsLostTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "antpath",
		Name:      "ants_lost_total",
		Help:      "Ant walks that got lost or could not be scored.",
	})

	coloniesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "antpath",
		Name:      "colonies_total",
		Help:      "Finished colonies by termination kind.",
	}, []string{"termination"})

	walkLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "antpath",
		Name:      "walk_length",
		Help:      "Transitions per ant walk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})
)
