package ranking

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/storage/memory"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sport = domain.Sport("padel")

func newTestService() (*Service, *memory.Storage) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := memory.New()
	return New(st, l), st
}

func seedPlayer(t *testing.T, st *memory.Storage, id uuid.UUID, country string, effective float64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, st.AddPlayer(ctx, domain.PlayerProfile{
		ID:        id,
		Name:      "player " + id.String()[:8],
		Country:   country,
		CreatedAt: time.Now().UTC(),
	}))
	score := effective
	require.NoError(t, st.CreateSportProfile(ctx, domain.SportProfile{
		PlayerID:       id,
		Sport:          sport,
		CompositeScore: &score,
		EffectiveScore: &score,
		SkillTier:      tier.Classify(&score),
		MatchElo:       domain.InitialElo,
		CreatedAt:      time.Now().UTC(),
	}))
}

func TestRecompute_globalOrdering(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	high := uuid.New()
	mid := uuid.New()
	low := uuid.New()
	seedPlayer(t, st, high, "Argentina", 80)
	seedPlayer(t, st, mid, "Argentina", 70)
	seedPlayer(t, st, low, "Chile", 60)

	n, err := s.Recompute(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	snapshots, err := s.Rankings(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	assert.Equal(t, high, snapshots[0].PlayerID)
	assert.Equal(t, mid, snapshots[1].PlayerID)
	assert.Equal(t, low, snapshots[2].PlayerID)
	for i, snap := range snapshots {
		assert.Equal(t, i+1, snap.Rank)
		assert.Nil(t, snap.PreviousRank)
	}

	// Mirrored onto the profile.
	profile, err := st.GetSportProfile(ctx, mid, sport)
	require.NoError(t, err)
	require.NotNil(t, profile.GlobalRank)
	assert.Equal(t, 2, *profile.GlobalRank)
}

func TestRecompute_tieBreakByPlayerID(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	seedPlayer(t, st, b, "Argentina", 55)
	seedPlayer(t, st, a, "Argentina", 55)

	_, err := s.Recompute(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)

	snapshots, err := s.Rankings(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, a, snapshots[0].PlayerID)
	assert.Equal(t, b, snapshots[1].PlayerID)
}

func TestRecompute_excludesUnrankedProfiles(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	ranked := uuid.New()
	seedPlayer(t, st, ranked, "Argentina", 42)

	// A profile with no completed analyses has no effective score.
	bare := uuid.New()
	require.NoError(t, st.AddPlayer(ctx, domain.PlayerProfile{ID: bare, Name: "bare", Country: "Argentina", CreatedAt: time.Now().UTC()}))
	require.NoError(t, st.CreateSportProfile(ctx, domain.SportProfile{
		PlayerID:  bare,
		Sport:     sport,
		SkillTier: tier.Unranked,
		MatchElo:  domain.InitialElo,
		CreatedAt: time.Now().UTC(),
	}))

	n, err := s.Recompute(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecompute_idempotentKeepsPreviousRank(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	seedPlayer(t, st, first, "Argentina", 80)
	seedPlayer(t, st, second, "Argentina", 60)

	_, err := s.Recompute(ctx, sport, ScopeGlobal, "2026-07")
	require.NoError(t, err)
	_, err = s.Recompute(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)

	// The players swap places mid-period, then the period is re-run.
	swap := 95.0
	require.NoError(t, st.UpdateSportScores(ctx, second, sport, &swap, &swap, tier.Classify(&swap)))
	_, err = s.Recompute(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)

	snapshots, err := s.Rankings(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, second, snapshots[0].PlayerID)
	assert.Equal(t, 1, snapshots[0].Rank)
	require.NotNil(t, snapshots[0].PreviousRank)
	// PreviousRank still points at the July standing, not the overwritten run.
	assert.Equal(t, 2, *snapshots[0].PreviousRank)
	assert.Equal(t, 1, snapshots[0].Movement())

	assert.Equal(t, first, snapshots[1].PlayerID)
	require.NotNil(t, snapshots[1].PreviousRank)
	assert.Equal(t, 1, *snapshots[1].PreviousRank)
	assert.Equal(t, -1, snapshots[1].Movement())
}

func TestRecompute_countryScope(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	arg := uuid.New()
	chl := uuid.New()
	seedPlayer(t, st, arg, "Argentina", 50)
	seedPlayer(t, st, chl, "Chile", 90)

	scope := CountryScope("  argentina ")
	assert.Equal(t, "COUNTRY:Argentina", scope)

	n, err := s.Recompute(ctx, sport, scope, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snapshots, err := s.Rankings(ctx, sport, scope, "2026-08")
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, arg, snapshots[0].PlayerID)
	assert.Equal(t, 1, snapshots[0].Rank)

	profile, err := st.GetSportProfile(ctx, arg, sport)
	require.NoError(t, err)
	require.NotNil(t, profile.CountryRank)
	assert.Equal(t, 1, *profile.CountryRank)
	assert.Nil(t, profile.GlobalRank)
}

func TestRecomputeAll(t *testing.T) {
	s, st := newTestService()
	ctx := context.Background()

	seedPlayer(t, st, uuid.New(), "Argentina", 50)
	seedPlayer(t, st, uuid.New(), "Argentina", 60)
	seedPlayer(t, st, uuid.New(), "Chile", 70)

	// Global ranks all three, each country scope ranks its own.
	total, err := s.RecomputeAll(ctx, sport, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 6, total)

	global, err := s.Rankings(ctx, sport, ScopeGlobal, "2026-08")
	require.NoError(t, err)
	assert.Len(t, global, 3)
	chile, err := s.Rankings(ctx, sport, CountryScope("Chile"), "2026-08")
	require.NoError(t, err)
	assert.Len(t, chile, 1)
}

func TestRecompute_unknownScope(t *testing.T) {
	s, _ := newTestService()
	_, err := s.Recompute(context.Background(), sport, "REGION:Cuyo", "2026-08")
	assert.ErrorIs(t, err, ErrUnknownScope)
	_, err = s.Recompute(context.Background(), sport, "COUNTRY:", "2026-08")
	assert.ErrorIs(t, err, ErrUnknownScope)
}

func TestCurrentPeriod(t *testing.T) {
	assert.Equal(t, "2026-08", CurrentPeriod(time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)))
}
