package storage

import (
	"context"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
)

// Queries is the set of reads and writes the services need. Implementations
// return sql.ErrNoRows when a row is absent. Inside WithTx every method runs
// against the transaction, so a re-read observes uncommitted writes of the
// same transaction and is isolated from concurrent ones.
type Queries interface {
	AddPlayer(ctx context.Context, p domain.PlayerProfile) error
	GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerProfile, error)
	ListCountries(ctx context.Context) ([]string, error)

	GetSportProfile(ctx context.Context, playerID uuid.UUID, sport domain.Sport) (domain.SportProfile, error)
	CreateSportProfile(ctx context.Context, p domain.SportProfile) error
	// UpdateSportScores overwrites the aggregator-owned fields only.
	UpdateSportScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport, composite, effective *float64, skillTier tier.Tier) error
	// ApplyRating adjusts the rating-engine-owned fields by deltas.
	ApplyRating(ctx context.Context, playerID uuid.UUID, sport domain.Sport, eloDelta int, won bool) error
	// ListRanked returns profiles eligible for ranking (non-null effective
	// score, ranked tier), ordered by effective score descending with player
	// id ascending as the tie break. An empty country means the global scope.
	ListRanked(ctx context.Context, sport domain.Sport, country string) ([]domain.SportProfile, error)
	SetGlobalRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error
	SetCountryRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error

	GetTechniqueScore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, technique string) (domain.TechniqueScore, error)
	CreateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error
	UpdateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error
	ListTechniqueScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport) ([]domain.TechniqueScore, error)

	CreateMatch(ctx context.Context, m domain.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error)
	UpdateMatch(ctx context.Context, m domain.Match) error
	CreateChallenge(ctx context.Context, c domain.Challenge) error
	CompleteChallenge(ctx context.Context, id uuid.UUID) error

	GetSnapshot(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error)
	// LatestSnapshotBefore returns the most recent snapshot of an earlier
	// period for the same player and scope.
	LatestSnapshotBefore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error)
	CreateSnapshot(ctx context.Context, s domain.RankingSnapshot) error
	UpdateSnapshotRank(ctx context.Context, s domain.RankingSnapshot) error
	ListSnapshots(ctx context.Context, sport domain.Sport, period, scope string) ([]domain.RankingSnapshot, error)
}

// Storage adds transaction control. WithTx runs fn atomically: either every
// write made through the passed Queries commits, or none do. Concurrent
// WithTx calls touching the same rows serialize against each other.
type Storage interface {
	Queries
	WithTx(ctx context.Context, fn func(q Queries) error) error
	Close() error
}
