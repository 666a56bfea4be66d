// Package improve builds the re-training plan for a sport profile: which
// technique to re-evaluate next and why.
package improve

import (
	"fmt"
	"sort"
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/tier"
)

type Status string

const (
	// StatusWait means the technique was analyzed too recently to re-evaluate.
	StatusWait Status = "WAIT"
	// StatusReady means a re-evaluation is allowed.
	StatusReady Status = "READY"
	// StatusRecommended means a re-evaluation is overdue or never happened.
	StatusRecommended Status = "RECOMMENDED"
)

const (
	readyAfterDays    = 14
	overdueAfterDays  = 45
	veryClosePoints   = 2
	largeImpactPoints = 10
	hoursPerDay       = 24
	fundamentalsScore = 30
	highLeverageScore = 50
)

type TechniqueAdvice struct {
	Technique       string
	Score           float64
	Tier            tier.TechniqueTier
	PotentialImpact float64
	Status          Status
	Reason          string
	WaitMessage     string
}

type Summary struct {
	Sport            domain.Sport
	Tier             tier.Tier
	EffectiveScore   *float64
	PointsToNextTier *float64
	Message          string
	Techniques       []TechniqueAdvice
}

// BuildPath is pure: it ranks techniques weakest first, scores how much each
// one drags the average down, applies the re-evaluation recency gate and
// produces the summary the dashboard shows.
func BuildPath(profile domain.SportProfile, scores []domain.TechniqueScore, now time.Time) Summary {
	sorted := make([]domain.TechniqueScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BestScore != sorted[j].BestScore {
			return sorted[i].BestScore < sorted[j].BestScore
		}
		return sorted[i].Technique < sorted[j].Technique
	})

	var mean float64
	if len(sorted) > 0 {
		var sum float64
		for _, ts := range sorted {
			sum += ts.BestScore
		}
		mean = sum / float64(len(sorted))
	}

	advices := make([]TechniqueAdvice, 0, len(sorted))
	for _, ts := range sorted {
		impact := mean - ts.BestScore
		if impact < 0 {
			impact = 0
		}
		status, waitMsg := evaluate(ts.LastAnalyzedAt, now)
		advices = append(advices, TechniqueAdvice{
			Technique:       ts.Technique,
			Score:           ts.BestScore,
			Tier:            tier.ClassifyTechnique(ts.BestScore),
			PotentialImpact: impact,
			Status:          status,
			Reason:          reason(ts.Technique, ts.BestScore, impact),
			WaitMessage:     waitMsg,
		})
	}

	summary := Summary{
		Sport:          profile.Sport,
		Tier:           profile.SkillTier,
		EffectiveScore: profile.EffectiveScore,
		Techniques:     advices,
	}
	next := tier.NextThreshold(profile.SkillTier)
	if next != nil && profile.EffectiveScore != nil {
		pts := next.Score - *profile.EffectiveScore
		if pts < 0 {
			pts = 0
		}
		summary.PointsToNextTier = &pts
	}
	summary.Message = summaryMessage(summary, next)
	return summary
}

func evaluate(lastAnalyzedAt time.Time, now time.Time) (Status, string) {
	if lastAnalyzedAt.IsZero() {
		return StatusRecommended, ""
	}
	days := int(now.Sub(lastAnalyzedAt).Hours() / hoursPerDay)
	switch {
	case days < readyAfterDays:
		return StatusWait, fmt.Sprintf("Re-evaluation available in %d days.", readyAfterDays-days)
	case days < overdueAfterDays:
		return StatusReady, ""
	default:
		return StatusRecommended, ""
	}
}

func reason(technique string, score, impact float64) string {
	switch {
	case score < fundamentalsScore:
		return fmt.Sprintf("Work on the fundamentals of %s; scores under %d respond fastest to basic drills.", technique, fundamentalsScore)
	case score < highLeverageScore:
		return fmt.Sprintf("%s is your highest-leverage technique right now.", technique)
	case impact >= largeImpactPoints:
		return fmt.Sprintf("%s is below your average; improving it lifts your rating directly.", technique)
	default:
		return fmt.Sprintf("Polish %s to squeeze out the remaining points.", technique)
	}
}

func summaryMessage(s Summary, next *tier.Threshold) string {
	if next == nil {
		return "You are in the top category. Keep playing rated matches to defend your position."
	}
	if len(s.Techniques) == 0 {
		return "Record your first technique analysis to get a personalized plan."
	}
	weakest := s.Techniques[0].Technique
	if s.PointsToNextTier != nil && *s.PointsToNextTier <= veryClosePoints {
		return fmt.Sprintf("You are very close to %s: %.1f points to go.", tier.Label(next.Tier), *s.PointsToNextTier)
	}
	if s.PointsToNextTier != nil {
		return fmt.Sprintf("You need %.0f points to reach %s. Start with %s, your weakest technique.",
			*s.PointsToNextTier, tier.Label(next.Tier), weakest)
	}
	return fmt.Sprintf("Start with %s, your weakest technique.", weakest)
}
