// Package ranking orders sport profiles into periodic snapshots, one set per
// scope. A scope is either the global pool or a single country.
package ranking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/metrics"
	"github.com/courtside/skillserver/internal/normalize"
	"github.com/courtside/skillserver/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

const (
	ScopeGlobal   = "GLOBAL"
	countryPrefix = "COUNTRY:"
)

var ErrUnknownScope = errors.New("unknown ranking scope")

// CountryScope builds the scope key for a country. The country name is
// normalized so the key matches what the player profiles carry.
func CountryScope(country string) string {
	return countryPrefix + normalize.Country(country)
}

// CurrentPeriod formats t as the YYYY-MM period key.
func CurrentPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}

type Service struct {
	storage storage.Storage
	log     *logrus.Entry
}

func New(st storage.Storage, l *logrus.Logger) *Service {
	return &Service{
		storage: st,
		log:     l.WithFields(logrus.Fields{"from": "ranking"}),
	}
}

// Recompute rebuilds one scope's snapshots for the given period and mirrors
// the positions onto the sport profiles. Ranks are dense, starting at 1.
// Re-running the same period overwrites Rank and leaves PreviousRank alone,
// so a recompute is idempotent.
func (s *Service) Recompute(ctx context.Context, sport domain.Sport, scope, period string) (int, error) {
	country, err := scopeCountry(scope)
	if err != nil {
		return 0, err
	}

	ranked := 0
	err = s.storage.WithTx(ctx, func(q storage.Queries) error {
		profiles, err := q.ListRanked(ctx, sport, country)
		if err != nil {
			return fmt.Errorf("list ranked: %w", err)
		}
		now := time.Now().UTC()
		for i, profile := range profiles {
			rank := i + 1
			if err := s.writeSnapshot(ctx, q, profile, scope, period, rank, now); err != nil {
				return err
			}
			if country == "" {
				err = q.SetGlobalRank(ctx, profile.PlayerID, sport, rank)
			} else {
				err = q.SetCountryRank(ctx, profile.PlayerID, sport, rank)
			}
			if err != nil {
				return fmt.Errorf("set rank: %w", err)
			}
		}
		ranked = len(profiles)
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.RankingRecomputes.WithLabelValues(scopeKind(scope)).Inc()
	s.log.WithFields(logrus.Fields{
		"sport":  sport,
		"scope":  scope,
		"period": period,
		"ranked": ranked,
	}).Info("ranking recomputed")
	return ranked, nil
}

// RecomputeAll recomputes the global scope plus one country scope per
// distinct country present among the players.
func (s *Service) RecomputeAll(ctx context.Context, sport domain.Sport, period string) (int, error) {
	countries, err := s.storage.ListCountries(ctx)
	if err != nil {
		return 0, fmt.Errorf("list countries: %w", err)
	}

	scopes := mapset.NewSet(ScopeGlobal)
	for _, country := range countries {
		if country == "" {
			continue
		}
		scopes.Add(CountryScope(country))
	}

	total := 0
	for _, scope := range scopes.ToSlice() {
		n, err := s.Recompute(ctx, sport, scope, period)
		if err != nil {
			return total, fmt.Errorf("scope %s: %w", scope, err)
		}
		total += n
	}
	return total, nil
}

// Rankings returns one scope's snapshots for a period, best rank first.
func (s *Service) Rankings(ctx context.Context, sport domain.Sport, scope, period string) ([]domain.RankingSnapshot, error) {
	if _, err := scopeCountry(scope); err != nil {
		return nil, err
	}
	return s.storage.ListSnapshots(ctx, sport, period, scope)
}

func (s *Service) writeSnapshot(ctx context.Context, q storage.Queries, profile domain.SportProfile, scope, period string, rank int, now time.Time) error {
	existing, err := q.GetSnapshot(ctx, profile.PlayerID, profile.Sport, period, scope)
	if err == nil {
		existing.Rank = rank
		existing.ComputedAt = now
		if err := q.UpdateSnapshotRank(ctx, existing); err != nil {
			return fmt.Errorf("update snapshot: %w", err)
		}
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("get snapshot: %w", err)
	}

	snapshot := domain.RankingSnapshot{
		PlayerID:   profile.PlayerID,
		Sport:      profile.Sport,
		Period:     period,
		Scope:      scope,
		Rank:       rank,
		ComputedAt: now,
	}
	previous, err := q.LatestSnapshotBefore(ctx, profile.PlayerID, profile.Sport, period, scope)
	if err == nil {
		rank := previous.Rank
		snapshot.PreviousRank = &rank
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("latest snapshot: %w", err)
	}
	if err := q.CreateSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

func scopeCountry(scope string) (string, error) {
	if scope == ScopeGlobal {
		return "", nil
	}
	country := strings.TrimPrefix(scope, countryPrefix)
	if country == scope || country == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	return country, nil
}

func scopeKind(scope string) string {
	if scope == ScopeGlobal {
		return "global"
	}
	return "country"
}
