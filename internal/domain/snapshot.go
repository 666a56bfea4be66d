package domain

import (
	"time"

	"github.com/google/uuid"
)

// RankingSnapshot is one player's position in one ranking scope for one
// period. Recomputing a period updates Rank in place; PreviousRank is carried
// from the most recent earlier period and never touched by re-runs.
type RankingSnapshot struct {
	PlayerID     uuid.UUID
	Sport        Sport
	Period       string
	Scope        string
	Rank         int
	PreviousRank *int
	ComputedAt   time.Time
}

// Movement is the rank delta against the previous snapshot. Positive means
// the player moved up. Zero when there is no previous rank.
func (s RankingSnapshot) Movement() int {
	if s.PreviousRank == nil {
		return 0
	}
	return *s.PreviousRank - s.Rank
}
