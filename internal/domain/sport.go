package domain

import (
	"time"

	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
)

type Sport string

// InitialElo is the rating a sport profile starts with before any rated match.
const InitialElo = 1000

// SportProfile is one player's standing in one sport. Created lazily the
// first time the player records an analysis or plays a match; never deleted.
type SportProfile struct {
	PlayerID       uuid.UUID
	Sport          Sport
	CompositeScore *float64
	EffectiveScore *float64
	SkillTier      tier.Tier
	MatchElo       int
	MatchesPlayed  int
	MatchesWon     int
	GlobalRank     *int
	CountryRank    *int
	CreatedAt      time.Time
}

// TechniqueScore holds the best completed analysis for one technique.
// BestScore never decreases.
type TechniqueScore struct {
	PlayerID       uuid.UUID
	Sport          Sport
	Technique      string
	BestScore      float64
	LastAnalyzedAt time.Time
}
