package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/elo"
	"github.com/courtside/skillserver/internal/improve"
	"github.com/courtside/skillserver/internal/metrics"
	"github.com/courtside/skillserver/internal/normalize"
	"github.com/courtside/skillserver/internal/storage"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RatingService owns the score aggregator and the match confirmation state
// machine. Every mutation of SportProfile score or elo fields goes through
// one of its transactional paths.
type RatingService struct {
	storage storage.Storage
	events  EventSink
	log     *logrus.Entry
}

func New(st storage.Storage, events EventSink, l *logrus.Logger) *RatingService {
	return &RatingService{
		storage: st,
		events:  events,
		log: l.WithFields(map[string]interface{}{
			"from": "rating-service",
		}),
	}
}

func (s *RatingService) CreatePlayer(ctx context.Context, name, country, region, city string) (domain.PlayerProfile, error) {
	p := domain.PlayerProfile{
		ID:        uuid.New(),
		Name:      name,
		Country:   normalize.Country(country),
		Region:    region,
		City:      city,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.storage.AddPlayer(ctx, p); err != nil {
		return domain.PlayerProfile{}, err
	}
	return p, nil
}

func (s *RatingService) GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerProfile, error) {
	p, err := s.storage.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PlayerProfile{}, ErrPlayerNotFound
	}
	return p, err
}

// RecordTechniqueResult folds one completed analysis into the player's sport
// profile: best score per technique is monotonically non-decreasing, the
// composite is the mean of all bests and the effective score drives the tier.
func (s *RatingService) RecordTechniqueResult(ctx context.Context, playerID uuid.UUID, sport domain.Sport, technique string, score float64, analyzedAt time.Time) (domain.SportProfile, error) {
	if score < 0 || score > 100 {
		return domain.SportProfile{}, ErrScoreOutOfRange
	}
	var (
		updated    domain.SportProfile
		tierChange *TierChangeEvent
	)
	err := s.storage.WithTx(ctx, func(q storage.Queries) error {
		profile, err := getOrCreateSportProfile(ctx, q, playerID, sport)
		if err != nil {
			return err
		}

		ts, err := q.GetTechniqueScore(ctx, playerID, sport, technique)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			ts = domain.TechniqueScore{
				PlayerID:       playerID,
				Sport:          sport,
				Technique:      technique,
				BestScore:      score,
				LastAnalyzedAt: analyzedAt,
			}
			if err := q.CreateTechniqueScore(ctx, ts); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if score > ts.BestScore {
				ts.BestScore = score
			}
			if analyzedAt.After(ts.LastAnalyzedAt) {
				ts.LastAnalyzedAt = analyzedAt
			}
			if err := q.UpdateTechniqueScore(ctx, ts); err != nil {
				return err
			}
		}

		scores, err := q.ListTechniqueScores(ctx, playerID, sport)
		if err != nil {
			return err
		}
		var sum float64
		for _, t := range scores {
			sum += t.BestScore
		}
		composite := sum / float64(len(scores))
		effective := composite
		newTier := tier.Classify(&effective)

		if err := q.UpdateSportScores(ctx, playerID, sport, &composite, &effective, newTier); err != nil {
			return err
		}
		if newTier != profile.SkillTier {
			tierChange = &TierChangeEvent{
				PlayerID:       playerID.String(),
				Sport:          sport,
				From:           profile.SkillTier,
				To:             newTier,
				EffectiveScore: effective,
			}
		}
		profile.CompositeScore = &composite
		profile.EffectiveScore = &effective
		profile.SkillTier = newTier
		updated = profile
		return nil
	})
	if err != nil {
		return domain.SportProfile{}, err
	}
	metrics.AnalysesRecorded.WithLabelValues(string(sport)).Inc()
	if tierChange != nil {
		metrics.TierChanges.WithLabelValues(string(sport)).Inc()
		s.events.TierChanged(ctx, *tierChange)
	}
	return updated, nil
}

func (s *RatingService) CreateMatch(ctx context.Context, sport domain.Sport, playerA, playerB uuid.UUID, challengeID *uuid.UUID) (domain.Match, error) {
	if playerA == playerB {
		return domain.Match{}, ErrSamePlayer
	}
	m := domain.Match{
		ID:          uuid.New(),
		Sport:       sport,
		SideA:       domain.MatchSide{PlayerID: playerA},
		SideB:       domain.MatchSide{PlayerID: playerB},
		ChallengeID: challengeID,
		CreatedAt:   time.Now().UTC(),
	}
	err := s.storage.WithTx(ctx, func(q storage.Queries) error {
		for _, id := range []uuid.UUID{playerA, playerB} {
			if _, err := q.GetPlayer(ctx, id); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrPlayerNotFound
				}
				return err
			}
			if _, err := getOrCreateSportProfile(ctx, q, id, sport); err != nil {
				return err
			}
		}
		return q.CreateMatch(ctx, m)
	})
	if err != nil {
		return domain.Match{}, err
	}
	return m, nil
}

func (s *RatingService) GetMatch(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	m, err := s.storage.GetMatch(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Match{}, ErrMatchNotFound
	}
	return m, err
}

// ConfirmMatch records one side's self-reported result. The whole decision
// runs inside a single transaction that re-reads the match row, so only one
// of two racing confirmations can observe "the other side is confirmed" and
// the rating update is applied at most once per match.
//
// The two reported results are not cross-validated: both sides claiming WIN
// is accepted as-is.
func (s *RatingService) ConfirmMatch(ctx context.Context, matchID, playerID uuid.UUID, result domain.MatchResult, score string) (domain.Match, error) {
	var (
		out   domain.Match
		rated bool
	)
	err := s.storage.WithTx(ctx, func(q storage.Queries) error {
		m, err := q.GetMatch(ctx, matchID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		if err != nil {
			return err
		}
		acting, other := m.Side(playerID)
		if acting == nil {
			return ErrNotParticipant
		}
		if acting.Confirmed {
			return ErrAlreadyConfirmed
		}
		acting.Result = &result
		acting.Confirmed = true
		if score != "" {
			m.Score = score
		}
		if !other.Confirmed {
			if err := q.UpdateMatch(ctx, m); err != nil {
				return err
			}
			out = m
			return nil
		}
		if err := s.rate(ctx, q, &m); err != nil {
			return err
		}
		if err := q.UpdateMatch(ctx, m); err != nil {
			return err
		}
		if m.ChallengeID != nil {
			if err := q.CompleteChallenge(ctx, *m.ChallengeID); err != nil {
				return err
			}
		}
		out = m
		rated = true
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyConfirmed):
			metrics.ConfirmConflicts.WithLabelValues("already_confirmed").Inc()
		case errors.Is(err, ErrNotParticipant):
			metrics.ConfirmConflicts.WithLabelValues("not_participant").Inc()
		}
		return domain.Match{}, err
	}
	if rated {
		metrics.MatchesRated.WithLabelValues(string(out.Sport)).Inc()
		s.log.WithFields(map[string]interface{}{
			"match": out.ID,
			"state": out.State(),
		}).Info("match rated")
	}
	return out, nil
}

// rate applies the rating update for both sides using each side's rating and
// match count as read within the surrounding transaction. A match with no
// WIN on either side (double no-show) closes with zero deltas.
func (s *RatingService) rate(ctx context.Context, q storage.Queries, m *domain.Match) error {
	aWon := m.SideA.Result != nil && *m.SideA.Result == domain.ResultWin
	bWon := m.SideB.Result != nil && *m.SideB.Result == domain.ResultWin

	changeA, changeB := 0, 0
	if aWon || bWon {
		profileA, err := getOrCreateSportProfile(ctx, q, m.SideA.PlayerID, m.Sport)
		if err != nil {
			return err
		}
		profileB, err := getOrCreateSportProfile(ctx, q, m.SideB.PlayerID, m.Sport)
		if err != nil {
			return err
		}
		scoreA, scoreB := elo.Lose, elo.Lose
		if aWon {
			scoreA = elo.Win
		}
		if bWon {
			scoreB = elo.Win
		}
		_, changeA = elo.Calculate(profileA.MatchElo, profileB.MatchElo, scoreA, profileA.MatchesPlayed)
		_, changeB = elo.Calculate(profileB.MatchElo, profileA.MatchElo, scoreB, profileB.MatchesPlayed)
		if err := q.ApplyRating(ctx, m.SideA.PlayerID, m.Sport, changeA, aWon); err != nil {
			return err
		}
		if err := q.ApplyRating(ctx, m.SideB.PlayerID, m.Sport, changeB, bWon); err != nil {
			return err
		}
	}
	m.SideA.EloChange = &changeA
	m.SideB.EloChange = &changeB
	now := time.Now().UTC()
	m.RatedAt = &now
	return nil
}

// ImprovementPath is a read-only view over the aggregator's output.
func (s *RatingService) ImprovementPath(ctx context.Context, playerID uuid.UUID, sport domain.Sport) (improve.Summary, error) {
	profile, err := s.storage.GetSportProfile(ctx, playerID, sport)
	if errors.Is(err, sql.ErrNoRows) {
		return improve.Summary{}, ErrPlayerNotFound
	}
	if err != nil {
		return improve.Summary{}, err
	}
	scores, err := s.storage.ListTechniqueScores(ctx, playerID, sport)
	if err != nil {
		return improve.Summary{}, err
	}
	return improve.BuildPath(profile, scores, time.Now().UTC()), nil
}

func getOrCreateSportProfile(ctx context.Context, q storage.Queries, playerID uuid.UUID, sport domain.Sport) (domain.SportProfile, error) {
	profile, err := q.GetSportProfile(ctx, playerID, sport)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.SportProfile{}, err
	}
	profile = domain.SportProfile{
		PlayerID:  playerID,
		Sport:     sport,
		SkillTier: tier.Unranked,
		MatchElo:  domain.InitialElo,
		CreatedAt: time.Now().UTC(),
	}
	if err := q.CreateSportProfile(ctx, profile); err != nil {
		return domain.SportProfile{}, err
	}
	return profile, nil
}
