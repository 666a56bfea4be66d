package web

import (
	"time"

	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/improve"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
)

type tierData struct {
	Tier          tier.Tier `json:"tier"`
	Label         string    `json:"label"`
	Color         string    `json:"color"`
	CategoryGroup string    `json:"categoryGroup,omitempty"`
}

func newTierData(t tier.Tier) tierData {
	return tierData{
		Tier:          t,
		Label:         tier.Label(t),
		Color:         tier.Color(t),
		CategoryGroup: tier.CategoryGroup(t),
	}
}

type playerData struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country,omitempty"`
	Region    string    `json:"region,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newPlayerData(p domain.PlayerProfile) playerData {
	return playerData{
		ID:        p.ID,
		Name:      p.Name,
		Country:   p.Country,
		Region:    p.Region,
		City:      p.City,
		CreatedAt: p.CreatedAt,
	}
}

type profileData struct {
	PlayerID       uuid.UUID    `json:"playerId"`
	Sport          domain.Sport `json:"sport"`
	CompositeScore *float64     `json:"compositeScore"`
	EffectiveScore *float64     `json:"effectiveScore"`
	SkillTier      tierData     `json:"skillTier"`
	MatchElo       int          `json:"matchElo"`
	MatchesPlayed  int          `json:"matchesPlayed"`
	MatchesWon     int          `json:"matchesWon"`
	GlobalRank     *int         `json:"globalRank"`
	CountryRank    *int         `json:"countryRank"`
}

func newProfileData(p domain.SportProfile) profileData {
	return profileData{
		PlayerID:       p.PlayerID,
		Sport:          p.Sport,
		CompositeScore: p.CompositeScore,
		EffectiveScore: p.EffectiveScore,
		SkillTier:      newTierData(p.SkillTier),
		MatchElo:       p.MatchElo,
		MatchesPlayed:  p.MatchesPlayed,
		MatchesWon:     p.MatchesWon,
		GlobalRank:     p.GlobalRank,
		CountryRank:    p.CountryRank,
	}
}

type matchSideData struct {
	PlayerID  uuid.UUID           `json:"playerId"`
	Result    *domain.MatchResult `json:"result"`
	Confirmed bool                `json:"confirmed"`
	EloChange *int                `json:"eloChange"`
}

type matchData struct {
	ID          uuid.UUID         `json:"id"`
	Sport       domain.Sport      `json:"sport"`
	State       domain.MatchState `json:"state"`
	SideA       matchSideData     `json:"sideA"`
	SideB       matchSideData     `json:"sideB"`
	Score       string            `json:"score,omitempty"`
	ChallengeID *uuid.UUID        `json:"challengeId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	RatedAt     *time.Time        `json:"ratedAt"`
}

func newMatchData(m domain.Match) matchData {
	return matchData{
		ID:          m.ID,
		Sport:       m.Sport,
		State:       m.State(),
		SideA:       newMatchSideData(m.SideA),
		SideB:       newMatchSideData(m.SideB),
		Score:       m.Score,
		ChallengeID: m.ChallengeID,
		CreatedAt:   m.CreatedAt,
		RatedAt:     m.RatedAt,
	}
}

func newMatchSideData(s domain.MatchSide) matchSideData {
	return matchSideData{
		PlayerID:  s.PlayerID,
		Result:    s.Result,
		Confirmed: s.Confirmed,
		EloChange: s.EloChange,
	}
}

type rankingEntryData struct {
	PlayerID     uuid.UUID `json:"playerId"`
	Rank         int       `json:"rank"`
	PreviousRank *int      `json:"previousRank"`
	Movement     int       `json:"movement"`
}

type rankingData struct {
	Sport   domain.Sport       `json:"sport"`
	Scope   string             `json:"scope"`
	Period  string             `json:"period"`
	Entries []rankingEntryData `json:"entries"`
}

func newRankingData(sport domain.Sport, scope, period string, snapshots []domain.RankingSnapshot) rankingData {
	entries := make([]rankingEntryData, 0, len(snapshots))
	for _, s := range snapshots {
		entries = append(entries, rankingEntryData{
			PlayerID:     s.PlayerID,
			Rank:         s.Rank,
			PreviousRank: s.PreviousRank,
			Movement:     s.Movement(),
		})
	}
	return rankingData{Sport: sport, Scope: scope, Period: period, Entries: entries}
}

type adviceData struct {
	Technique       string             `json:"technique"`
	Score           float64            `json:"score"`
	Tier            tier.TechniqueTier `json:"tier"`
	PotentialImpact float64            `json:"potentialImpact"`
	Status          improve.Status     `json:"status"`
	Reason          string             `json:"reason,omitempty"`
	WaitMessage     string             `json:"waitMessage,omitempty"`
}

type improvementData struct {
	Sport            domain.Sport `json:"sport"`
	SkillTier        tierData     `json:"skillTier"`
	EffectiveScore   *float64     `json:"effectiveScore"`
	PointsToNextTier *float64     `json:"pointsToNextTier"`
	Message          string       `json:"message"`
	Techniques       []adviceData `json:"techniques"`
}

func newImprovementData(s improve.Summary) improvementData {
	techniques := make([]adviceData, 0, len(s.Techniques))
	for _, t := range s.Techniques {
		techniques = append(techniques, adviceData{
			Technique:       t.Technique,
			Score:           t.Score,
			Tier:            t.Tier,
			PotentialImpact: t.PotentialImpact,
			Status:          t.Status,
			Reason:          t.Reason,
			WaitMessage:     t.WaitMessage,
		})
	}
	return improvementData{
		Sport:            s.Sport,
		SkillTier:        newTierData(s.Tier),
		EffectiveScore:   s.EffectiveScore,
		PointsToNextTier: s.PointsToNextTier,
		Message:          s.Message,
		Techniques:       techniques,
	}
}
