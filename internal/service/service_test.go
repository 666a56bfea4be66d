package service

import (
	"context"
	"io"
	"sync"
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

type recordingSink struct {
	mu     sync.Mutex
	events []TierChangeEvent
}

func (r *recordingSink) TierChanged(_ context.Context, ev TierChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingSink) all() []TierChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]TierChangeEvent(nil), r.events...)
}

func newTestService() (*RatingService, *memory.Storage, *recordingSink) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	st := memory.New()
	sink := &recordingSink{}
	return New(st, sink, l), st, sink
}

func createTwoPlayers(t *testing.T, s *RatingService) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	a, err := s.CreatePlayer(ctx, "Ana", "Argentina", "", "")
	require.NoError(t, err)
	b, err := s.CreatePlayer(ctx, "Bruno", "Argentina", "", "")
	require.NoError(t, err)
	return a.ID, b.ID
}

func TestRecordTechniqueResult_bestScoreMonotonic(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	playerID := uuid.New()
	day := 24 * time.Hour
	t0 := time.Now().UTC().Add(-10 * day)

	_, err := s.RecordTechniqueResult(ctx, playerID, "padel", "volley", 50, t0)
	require.NoError(t, err)

	// A worse analysis later must not lower the best but advances recency.
	_, err = s.RecordTechniqueResult(ctx, playerID, "padel", "volley", 40, t0.Add(day))
	require.NoError(t, err)
	ts, err := st.GetTechniqueScore(ctx, playerID, "padel", "volley")
	require.NoError(t, err)
	assert.Equal(t, 50.0, ts.BestScore)
	assert.Equal(t, t0.Add(day), ts.LastAnalyzedAt)

	_, err = s.RecordTechniqueResult(ctx, playerID, "padel", "volley", 62, t0.Add(2*day))
	require.NoError(t, err)
	ts, err = st.GetTechniqueScore(ctx, playerID, "padel", "volley")
	require.NoError(t, err)
	assert.Equal(t, 62.0, ts.BestScore)
}

func TestRecordTechniqueResult_compositeAndTier(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	playerID := uuid.New()
	now := time.Now().UTC()

	_, err := s.RecordTechniqueResult(ctx, playerID, "padel", "volley", 60, now)
	require.NoError(t, err)
	_, err = s.RecordTechniqueResult(ctx, playerID, "padel", "smash", 40, now)
	require.NoError(t, err)

	profile, err := st.GetSportProfile(ctx, playerID, "padel")
	require.NoError(t, err)
	require.NotNil(t, profile.CompositeScore)
	require.NotNil(t, profile.EffectiveScore)
	assert.InDelta(t, 50, *profile.CompositeScore, 0.001)
	assert.Equal(t, *profile.CompositeScore, *profile.EffectiveScore)
	assert.Equal(t, tier.TerceraA, profile.SkillTier)
}

func TestRecordTechniqueResult_outOfRange(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()
	_, err := s.RecordTechniqueResult(ctx, uuid.New(), "padel", "volley", 140, time.Now())
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
	_, err = s.RecordTechniqueResult(ctx, uuid.New(), "padel", "volley", -1, time.Now())
	assert.ErrorIs(t, err, ErrScoreOutOfRange)
}

func TestRecordTechniqueResult_tierChangeEvents(t *testing.T) {
	s, _, sink := newTestService()
	ctx := context.Background()
	playerID := uuid.New()
	now := time.Now().UTC()

	_, err := s.RecordTechniqueResult(ctx, playerID, "padel", "volley", 15, now)
	require.NoError(t, err)
	events := sink.all()
	require.Len(t, events, 1)
	assert.Equal(t, tier.Unranked, events[0].From)
	assert.Equal(t, tier.QuintaA, events[0].To)

	// Same tier again: no new event.
	_, err = s.RecordTechniqueResult(ctx, playerID, "padel", "smash", 15, now)
	require.NoError(t, err)
	assert.Len(t, sink.all(), 1)
}

func TestConfirmMatch_duplicateRejected(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	first, err := s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "6-3 6-4")
	require.NoError(t, err)
	assert.Equal(t, domain.AwaitingOpponent, first.State())

	_, err = s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "")
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	// Elo fields untouched between the two calls.
	profile, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialElo, profile.MatchElo)
	assert.Equal(t, 0, profile.MatchesPlayed)
}

func TestConfirmMatch_ratesExactlyOnce(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	_, err = s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "")
	require.NoError(t, err)
	rated, err := s.ConfirmMatch(ctx, m.ID, b, domain.ResultLoss, "")
	require.NoError(t, err)

	assert.Equal(t, domain.Rated, rated.State())
	require.NotNil(t, rated.SideA.EloChange)
	require.NotNil(t, rated.SideB.EloChange)
	assert.Equal(t, 16, *rated.SideA.EloChange)
	assert.Equal(t, -16, *rated.SideB.EloChange)

	profileA, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	profileB, err := st.GetSportProfile(ctx, b, "padel")
	require.NoError(t, err)
	assert.Equal(t, 1016, profileA.MatchElo)
	assert.Equal(t, 984, profileB.MatchElo)
	assert.Equal(t, 1, profileA.MatchesPlayed)
	assert.Equal(t, 1, profileB.MatchesPlayed)
	assert.Equal(t, 1, profileA.MatchesWon)
	assert.Equal(t, 0, profileB.MatchesWon)
}

func TestConfirmMatch_bothClaimWinAccepted(t *testing.T) {
	// Contradictory reports are not cross-validated; both sides are rated
	// with their own claimed score. Known gap, kept on purpose.
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	_, err = s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "")
	require.NoError(t, err)
	rated, err := s.ConfirmMatch(ctx, m.ID, b, domain.ResultWin, "")
	require.NoError(t, err)

	assert.Equal(t, 16, *rated.SideA.EloChange)
	assert.Equal(t, 16, *rated.SideB.EloChange)
	profileA, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	assert.Equal(t, 1, profileA.MatchesWon)
}

func TestConfirmMatch_doubleNoShow(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	_, err = s.ConfirmMatch(ctx, m.ID, a, domain.ResultNoShow, "")
	require.NoError(t, err)
	rated, err := s.ConfirmMatch(ctx, m.ID, b, domain.ResultNoShow, "")
	require.NoError(t, err)

	assert.Equal(t, domain.Rated, rated.State())
	assert.Equal(t, 0, *rated.SideA.EloChange)
	assert.Equal(t, 0, *rated.SideB.EloChange)

	profileA, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	assert.Equal(t, domain.InitialElo, profileA.MatchElo)
	assert.Equal(t, 0, profileA.MatchesPlayed)
}

func TestConfirmMatch_typedFailures(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	_, err = s.ConfirmMatch(ctx, uuid.New(), a, domain.ResultWin, "")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = s.ConfirmMatch(ctx, m.ID, uuid.New(), domain.ResultWin, "")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestConfirmMatch_completesChallenge(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)

	challenge := domain.Challenge{ID: uuid.New(), Status: domain.ChallengePending, CreatedAt: time.Now().UTC()}
	require.NoError(t, st.CreateChallenge(ctx, challenge))
	m, err := s.CreateMatch(ctx, "padel", a, b, &challenge.ID)
	require.NoError(t, err)

	_, err = s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "")
	require.NoError(t, err)
	_, err = s.ConfirmMatch(ctx, m.ID, b, domain.ResultLoss, "")
	require.NoError(t, err)

	// Challenge completion and rating commit together.
	got, err := st.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Rated, got.State())
}

func TestConfirmMatch_concurrentOpponents(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, side := range []struct {
		player uuid.UUID
		result domain.MatchResult
	}{
		{player: a, result: domain.ResultWin},
		{player: b, result: domain.ResultLoss},
	} {
		wg.Add(1)
		go func(i int, player uuid.UUID, result domain.MatchResult) {
			defer wg.Done()
			<-start
			_, errs[i] = s.ConfirmMatch(ctx, m.ID, player, result, "")
		}(i, side.player, side.result)
	}
	close(start)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	got, err := st.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Rated, got.State())
	require.NotNil(t, got.SideA.EloChange)
	require.NotNil(t, got.SideB.EloChange)

	// Exactly one rating application per side regardless of interleaving.
	profileA, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	profileB, err := st.GetSportProfile(ctx, b, "padel")
	require.NoError(t, err)
	assert.Equal(t, 1, profileA.MatchesPlayed)
	assert.Equal(t, 1, profileB.MatchesPlayed)
	assert.Equal(t, 1016, profileA.MatchElo)
	assert.Equal(t, 984, profileB.MatchElo)
}

func TestConfirmMatch_concurrentRetriesSameSide(t *testing.T) {
	s, st, _ := newTestService()
	ctx := context.Background()
	a, b := createTwoPlayers(t, s)
	m, err := s.CreateMatch(ctx, "padel", a, b, nil)
	require.NoError(t, err)

	const attempts = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = s.ConfirmMatch(ctx, m.ID, a, domain.ResultWin, "")
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	}
	assert.Equal(t, 1, succeeded)

	profile, err := st.GetSportProfile(ctx, a, "padel")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.MatchesPlayed, "no rating before the opponent confirms")
}

func TestImprovementPath_unknownProfile(t *testing.T) {
	s, _, _ := newTestService()
	_, err := s.ImprovementPath(context.Background(), uuid.New(), "padel")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
