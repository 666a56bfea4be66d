package improve

import (
	"testing"
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 {
	return &f
}

func profile(effective *float64) domain.SportProfile {
	return domain.SportProfile{
		Sport:          "padel",
		EffectiveScore: effective,
		SkillTier:      tier.Classify(effective),
	}
}

func TestBuildPath_ordersWeakestFirst(t *testing.T) {
	now := time.Now()
	scores := []domain.TechniqueScore{
		{Technique: "smash", BestScore: 70, LastAnalyzedAt: now.AddDate(0, 0, -20)},
		{Technique: "bandeja", BestScore: 40, LastAnalyzedAt: now.AddDate(0, 0, -20)},
		{Technique: "volley", BestScore: 55, LastAnalyzedAt: now.AddDate(0, 0, -20)},
	}
	got := BuildPath(profile(fptr(55)), scores, now)
	require.Len(t, got.Techniques, 3)
	assert.Equal(t, "bandeja", got.Techniques[0].Technique)
	assert.Equal(t, "volley", got.Techniques[1].Technique)
	assert.Equal(t, "smash", got.Techniques[2].Technique)

	// mean is 55; only below-average techniques carry impact.
	assert.InDelta(t, 15, got.Techniques[0].PotentialImpact, 0.001)
	assert.InDelta(t, 0, got.Techniques[1].PotentialImpact, 0.001)
	assert.InDelta(t, 0, got.Techniques[2].PotentialImpact, 0.001)
}

func TestBuildPath_recencyGate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		last     time.Time
		want     Status
		wantWait bool
	}{
		{name: "never analyzed", last: time.Time{}, want: StatusRecommended},
		{name: "yesterday", last: now.AddDate(0, 0, -1), want: StatusWait, wantWait: true},
		{name: "thirteen days", last: now.AddDate(0, 0, -13), want: StatusWait, wantWait: true},
		{name: "fourteen days", last: now.AddDate(0, 0, -14), want: StatusReady},
		{name: "forty four days", last: now.AddDate(0, 0, -44), want: StatusReady},
		{name: "forty five days", last: now.AddDate(0, 0, -45), want: StatusRecommended},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPath(profile(fptr(50)), []domain.TechniqueScore{
				{Technique: "serve", BestScore: 50, LastAnalyzedAt: tt.last},
			}, now)
			require.Len(t, got.Techniques, 1)
			assert.Equal(t, tt.want, got.Techniques[0].Status)
			if tt.wantWait {
				assert.NotEmpty(t, got.Techniques[0].WaitMessage)
			} else {
				assert.Empty(t, got.Techniques[0].WaitMessage)
			}
		})
	}
}

func TestBuildPath_reasons(t *testing.T) {
	now := time.Now()
	scores := []domain.TechniqueScore{
		{Technique: "serve", BestScore: 20},
		{Technique: "bandeja", BestScore: 45},
		{Technique: "volley", BestScore: 60},
		{Technique: "smash", BestScore: 95},
	}
	got := BuildPath(profile(fptr(55)), scores, now)
	require.Len(t, got.Techniques, 4)
	assert.Contains(t, got.Techniques[0].Reason, "fundamentals")
	assert.Contains(t, got.Techniques[1].Reason, "highest-leverage")
	// mean 55, volley at 60 and smash at 95 are not below average.
	assert.Contains(t, got.Techniques[2].Reason, "Polish")
	assert.Contains(t, got.Techniques[3].Reason, "Polish")
}

func TestBuildPath_belowAverageReason(t *testing.T) {
	now := time.Now()
	scores := []domain.TechniqueScore{
		{Technique: "volley", BestScore: 60},
		{Technique: "smash", BestScore: 90},
		{Technique: "serve", BestScore: 90},
	}
	// mean 80, volley is 20 points under it.
	got := BuildPath(profile(fptr(80)), scores, now)
	assert.Contains(t, got.Techniques[0].Reason, "below your average")
}

func TestBuildPath_summary(t *testing.T) {
	now := time.Now()
	scores := []domain.TechniqueScore{{Technique: "volley", BestScore: 58}}

	t.Run("very close", func(t *testing.T) {
		got := BuildPath(profile(fptr(58.5)), scores, now)
		assert.Contains(t, got.Message, "very close")
		require.NotNil(t, got.PointsToNextTier)
		assert.InDelta(t, 1.5, *got.PointsToNextTier, 0.001)
	})

	t.Run("banded target names weakest", func(t *testing.T) {
		got := BuildPath(profile(fptr(52)), scores, now)
		assert.Contains(t, got.Message, "volley")
		assert.Contains(t, got.Message, tier.Label(tier.SegundaB))
	})

	t.Run("top tier maintenance", func(t *testing.T) {
		got := BuildPath(profile(fptr(95)), scores, now)
		assert.Nil(t, got.PointsToNextTier)
		assert.Contains(t, got.Message, "top category")
	})

	t.Run("no techniques", func(t *testing.T) {
		got := BuildPath(profile(nil), nil, now)
		assert.Contains(t, got.Message, "first technique analysis")
	})
}
