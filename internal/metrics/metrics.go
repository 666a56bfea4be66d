// Package metrics exposes Prometheus counters for the rating engine's
// domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skillserver"

var (
	AnalysesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_recorded_total",
		Help:      "Completed technique analyses folded into a sport profile.",
	}, []string{"sport"})

	TierChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tier_changes_total",
		Help:      "Skill tier transitions produced by the score aggregator.",
	}, []string{"sport"})

	MatchesRated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "matches_rated_total",
		Help:      "Matches whose rating update has been applied.",
	}, []string{"sport"})

	ConfirmConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "confirm_conflicts_total",
		Help:      "Match confirmations rejected as duplicates or from non-participants.",
	}, []string{"reason"})

	RankingRecomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ranking_recomputes_total",
		Help:      "Ranking snapshot recomputations per scope kind.",
	}, []string{"scope"})
)
