// Package memory is a map-backed Storage used by tests and local runs.
// A coarse lock held for the whole of WithTx gives the same serialization
// guarantees the sqlite implementation gets from its single writer.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/storage"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
)

type sportKey struct {
	playerID uuid.UUID
	sport    domain.Sport
}

type techKey struct {
	playerID  uuid.UUID
	sport     domain.Sport
	technique string
}

type snapKey struct {
	playerID uuid.UUID
	sport    domain.Sport
	period   string
	scope    string
}

type state struct {
	players         map[uuid.UUID]domain.PlayerProfile
	sportProfiles   map[sportKey]domain.SportProfile
	techniqueScores map[techKey]domain.TechniqueScore
	matches         map[uuid.UUID]domain.Match
	challenges      map[uuid.UUID]domain.Challenge
	snapshots       map[snapKey]domain.RankingSnapshot
}

func newState() *state {
	return &state{
		players:         make(map[uuid.UUID]domain.PlayerProfile),
		sportProfiles:   make(map[sportKey]domain.SportProfile),
		techniqueScores: make(map[techKey]domain.TechniqueScore),
		matches:         make(map[uuid.UUID]domain.Match),
		challenges:      make(map[uuid.UUID]domain.Challenge),
		snapshots:       make(map[snapKey]domain.RankingSnapshot),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.players {
		c.players[k] = v
	}
	for k, v := range s.sportProfiles {
		c.sportProfiles[k] = v
	}
	for k, v := range s.techniqueScores {
		c.techniqueScores[k] = v
	}
	for k, v := range s.matches {
		c.matches[k] = v
	}
	for k, v := range s.challenges {
		c.challenges[k] = v
	}
	for k, v := range s.snapshots {
		c.snapshots[k] = v
	}
	return c
}

type Storage struct {
	mu sync.Mutex
	st *state
}

var _ storage.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{st: newState()}
}

func (s *Storage) Close() error {
	return nil
}

// WithTx holds the lock for the whole callback and rolls the state back if
// fn fails, so a failed confirmation leaves nothing half-applied.
func (s *Storage) WithTx(ctx context.Context, fn func(q storage.Queries) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	backup := s.st.clone()
	if err := fn(&queries{st: s.st}); err != nil {
		s.st = backup
		return err
	}
	return nil
}

type queries struct {
	st *state
}

var _ storage.Queries = (*queries)(nil)

func (s *Storage) locked() (*queries, func()) {
	s.mu.Lock()
	return &queries{st: s.st}, s.mu.Unlock
}

func (s *Storage) AddPlayer(ctx context.Context, p domain.PlayerProfile) error {
	q, unlock := s.locked()
	defer unlock()
	return q.AddPlayer(ctx, p)
}

func (s *Storage) GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerProfile, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.GetPlayer(ctx, id)
}

func (s *Storage) ListCountries(ctx context.Context) ([]string, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.ListCountries(ctx)
}

func (s *Storage) GetSportProfile(ctx context.Context, playerID uuid.UUID, sport domain.Sport) (domain.SportProfile, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.GetSportProfile(ctx, playerID, sport)
}

func (s *Storage) CreateSportProfile(ctx context.Context, p domain.SportProfile) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CreateSportProfile(ctx, p)
}

func (s *Storage) UpdateSportScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport, composite, effective *float64, skillTier tier.Tier) error {
	q, unlock := s.locked()
	defer unlock()
	return q.UpdateSportScores(ctx, playerID, sport, composite, effective, skillTier)
}

func (s *Storage) ApplyRating(ctx context.Context, playerID uuid.UUID, sport domain.Sport, eloDelta int, won bool) error {
	q, unlock := s.locked()
	defer unlock()
	return q.ApplyRating(ctx, playerID, sport, eloDelta, won)
}

func (s *Storage) ListRanked(ctx context.Context, sport domain.Sport, country string) ([]domain.SportProfile, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.ListRanked(ctx, sport, country)
}

func (s *Storage) SetGlobalRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	q, unlock := s.locked()
	defer unlock()
	return q.SetGlobalRank(ctx, playerID, sport, rank)
}

func (s *Storage) SetCountryRank(ctx context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	q, unlock := s.locked()
	defer unlock()
	return q.SetCountryRank(ctx, playerID, sport, rank)
}

func (s *Storage) GetTechniqueScore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, technique string) (domain.TechniqueScore, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.GetTechniqueScore(ctx, playerID, sport, technique)
}

func (s *Storage) CreateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CreateTechniqueScore(ctx, ts)
}

func (s *Storage) UpdateTechniqueScore(ctx context.Context, ts domain.TechniqueScore) error {
	q, unlock := s.locked()
	defer unlock()
	return q.UpdateTechniqueScore(ctx, ts)
}

func (s *Storage) ListTechniqueScores(ctx context.Context, playerID uuid.UUID, sport domain.Sport) ([]domain.TechniqueScore, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.ListTechniqueScores(ctx, playerID, sport)
}

func (s *Storage) CreateMatch(ctx context.Context, m domain.Match) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CreateMatch(ctx, m)
}

func (s *Storage) GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.GetMatch(ctx, id)
}

func (s *Storage) UpdateMatch(ctx context.Context, m domain.Match) error {
	q, unlock := s.locked()
	defer unlock()
	return q.UpdateMatch(ctx, m)
}

func (s *Storage) CreateChallenge(ctx context.Context, c domain.Challenge) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CreateChallenge(ctx, c)
}

func (s *Storage) CompleteChallenge(ctx context.Context, id uuid.UUID) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CompleteChallenge(ctx, id)
}

func (s *Storage) GetSnapshot(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.GetSnapshot(ctx, playerID, sport, period, scope)
}

func (s *Storage) LatestSnapshotBefore(ctx context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.LatestSnapshotBefore(ctx, playerID, sport, period, scope)
}

func (s *Storage) CreateSnapshot(ctx context.Context, snap domain.RankingSnapshot) error {
	q, unlock := s.locked()
	defer unlock()
	return q.CreateSnapshot(ctx, snap)
}

func (s *Storage) UpdateSnapshotRank(ctx context.Context, snap domain.RankingSnapshot) error {
	q, unlock := s.locked()
	defer unlock()
	return q.UpdateSnapshotRank(ctx, snap)
}

func (s *Storage) ListSnapshots(ctx context.Context, sport domain.Sport, period, scope string) ([]domain.RankingSnapshot, error) {
	q, unlock := s.locked()
	defer unlock()
	return q.ListSnapshots(ctx, sport, period, scope)
}

func (q *queries) AddPlayer(_ context.Context, p domain.PlayerProfile) error {
	q.st.players[p.ID] = p
	return nil
}

func (q *queries) GetPlayer(_ context.Context, id uuid.UUID) (domain.PlayerProfile, error) {
	p, ok := q.st.players[id]
	if !ok {
		return domain.PlayerProfile{}, sql.ErrNoRows
	}
	return p, nil
}

func (q *queries) ListCountries(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var countries []string
	for _, p := range q.st.players {
		if _, ok := seen[p.Country]; ok {
			continue
		}
		seen[p.Country] = struct{}{}
		countries = append(countries, p.Country)
	}
	sort.Strings(countries)
	return countries, nil
}

func (q *queries) GetSportProfile(_ context.Context, playerID uuid.UUID, sport domain.Sport) (domain.SportProfile, error) {
	p, ok := q.st.sportProfiles[sportKey{playerID, sport}]
	if !ok {
		return domain.SportProfile{}, sql.ErrNoRows
	}
	return p, nil
}

func (q *queries) CreateSportProfile(_ context.Context, p domain.SportProfile) error {
	q.st.sportProfiles[sportKey{p.PlayerID, p.Sport}] = p
	return nil
}

func (q *queries) UpdateSportScores(_ context.Context, playerID uuid.UUID, sport domain.Sport, composite, effective *float64, skillTier tier.Tier) error {
	key := sportKey{playerID, sport}
	p, ok := q.st.sportProfiles[key]
	if !ok {
		return sql.ErrNoRows
	}
	p.CompositeScore = composite
	p.EffectiveScore = effective
	p.SkillTier = skillTier
	q.st.sportProfiles[key] = p
	return nil
}

func (q *queries) ApplyRating(_ context.Context, playerID uuid.UUID, sport domain.Sport, eloDelta int, won bool) error {
	key := sportKey{playerID, sport}
	p, ok := q.st.sportProfiles[key]
	if !ok {
		return sql.ErrNoRows
	}
	p.MatchElo += eloDelta
	p.MatchesPlayed++
	if won {
		p.MatchesWon++
	}
	q.st.sportProfiles[key] = p
	return nil
}

func (q *queries) ListRanked(_ context.Context, sport domain.Sport, country string) ([]domain.SportProfile, error) {
	var profiles []domain.SportProfile
	for _, p := range q.st.sportProfiles {
		if p.Sport != sport || p.EffectiveScore == nil || p.SkillTier == tier.Unranked {
			continue
		}
		if country != "" {
			player, ok := q.st.players[p.PlayerID]
			if !ok || player.Country != country {
				continue
			}
		}
		profiles = append(profiles, p)
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		if *profiles[i].EffectiveScore != *profiles[j].EffectiveScore {
			return *profiles[i].EffectiveScore > *profiles[j].EffectiveScore
		}
		return profiles[i].PlayerID.String() < profiles[j].PlayerID.String()
	})
	return profiles, nil
}

func (q *queries) SetGlobalRank(_ context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	key := sportKey{playerID, sport}
	p, ok := q.st.sportProfiles[key]
	if !ok {
		return sql.ErrNoRows
	}
	r := rank
	p.GlobalRank = &r
	q.st.sportProfiles[key] = p
	return nil
}

func (q *queries) SetCountryRank(_ context.Context, playerID uuid.UUID, sport domain.Sport, rank int) error {
	key := sportKey{playerID, sport}
	p, ok := q.st.sportProfiles[key]
	if !ok {
		return sql.ErrNoRows
	}
	r := rank
	p.CountryRank = &r
	q.st.sportProfiles[key] = p
	return nil
}

func (q *queries) GetTechniqueScore(_ context.Context, playerID uuid.UUID, sport domain.Sport, technique string) (domain.TechniqueScore, error) {
	ts, ok := q.st.techniqueScores[techKey{playerID, sport, technique}]
	if !ok {
		return domain.TechniqueScore{}, sql.ErrNoRows
	}
	return ts, nil
}

func (q *queries) CreateTechniqueScore(_ context.Context, ts domain.TechniqueScore) error {
	q.st.techniqueScores[techKey{ts.PlayerID, ts.Sport, ts.Technique}] = ts
	return nil
}

func (q *queries) UpdateTechniqueScore(_ context.Context, ts domain.TechniqueScore) error {
	key := techKey{ts.PlayerID, ts.Sport, ts.Technique}
	if _, ok := q.st.techniqueScores[key]; !ok {
		return sql.ErrNoRows
	}
	q.st.techniqueScores[key] = ts
	return nil
}

func (q *queries) ListTechniqueScores(_ context.Context, playerID uuid.UUID, sport domain.Sport) ([]domain.TechniqueScore, error) {
	var scores []domain.TechniqueScore
	for _, ts := range q.st.techniqueScores {
		if ts.PlayerID == playerID && ts.Sport == sport {
			scores = append(scores, ts)
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Technique < scores[j].Technique
	})
	return scores, nil
}

func (q *queries) CreateMatch(_ context.Context, m domain.Match) error {
	q.st.matches[m.ID] = m
	return nil
}

func (q *queries) GetMatch(_ context.Context, id uuid.UUID) (domain.Match, error) {
	m, ok := q.st.matches[id]
	if !ok {
		return domain.Match{}, sql.ErrNoRows
	}
	return m, nil
}

func (q *queries) UpdateMatch(_ context.Context, m domain.Match) error {
	if _, ok := q.st.matches[m.ID]; !ok {
		return sql.ErrNoRows
	}
	q.st.matches[m.ID] = m
	return nil
}

func (q *queries) CreateChallenge(_ context.Context, c domain.Challenge) error {
	q.st.challenges[c.ID] = c
	return nil
}

func (q *queries) CompleteChallenge(_ context.Context, id uuid.UUID) error {
	c, ok := q.st.challenges[id]
	if !ok {
		return sql.ErrNoRows
	}
	c.Status = domain.ChallengeCompleted
	q.st.challenges[id] = c
	return nil
}

func (q *queries) GetSnapshot(_ context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	s, ok := q.st.snapshots[snapKey{playerID, sport, period, scope}]
	if !ok {
		return domain.RankingSnapshot{}, sql.ErrNoRows
	}
	return s, nil
}

func (q *queries) LatestSnapshotBefore(_ context.Context, playerID uuid.UUID, sport domain.Sport, period, scope string) (domain.RankingSnapshot, error) {
	var best *domain.RankingSnapshot
	for key, s := range q.st.snapshots {
		if key.playerID != playerID || key.sport != sport || key.scope != scope {
			continue
		}
		if key.period >= period {
			continue
		}
		snap := s
		if best == nil || snap.Period > best.Period {
			best = &snap
		}
	}
	if best == nil {
		return domain.RankingSnapshot{}, sql.ErrNoRows
	}
	return *best, nil
}

func (q *queries) CreateSnapshot(_ context.Context, s domain.RankingSnapshot) error {
	q.st.snapshots[snapKey{s.PlayerID, s.Sport, s.Period, s.Scope}] = s
	return nil
}

func (q *queries) UpdateSnapshotRank(_ context.Context, s domain.RankingSnapshot) error {
	key := snapKey{s.PlayerID, s.Sport, s.Period, s.Scope}
	existing, ok := q.st.snapshots[key]
	if !ok {
		return sql.ErrNoRows
	}
	existing.Rank = s.Rank
	existing.ComputedAt = s.ComputedAt
	q.st.snapshots[key] = existing
	return nil
}

func (q *queries) ListSnapshots(_ context.Context, sport domain.Sport, period, scope string) ([]domain.RankingSnapshot, error) {
	var snapshots []domain.RankingSnapshot
	for key, s := range q.st.snapshots {
		if key.sport == sport && key.period == period && key.scope == scope {
			snapshots = append(snapshots, s)
		}
	}
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Rank < snapshots[j].Rank
	})
	return snapshots, nil
}
