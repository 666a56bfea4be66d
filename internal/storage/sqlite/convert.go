package sqlite

import (
	"github.com/courtside/skillserver/gen/model"
	"github.com/courtside/skillserver/internal/domain"
	"github.com/courtside/skillserver/internal/tier"

	"github.com/google/uuid"
)

func convertPlayerFromDomain(p domain.PlayerProfile) model.PlayerProfiles {
	m := model.PlayerProfiles{
		ID:        p.ID.String(),
		Name:      p.Name,
		Country:   p.Country,
		CreatedAt: p.CreatedAt,
	}
	if p.Region != "" {
		region := p.Region
		m.Region = &region
	}
	if p.City != "" {
		city := p.City
		m.City = &city
	}
	return m
}

func convertPlayerToDomain(m model.PlayerProfiles) (domain.PlayerProfile, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.PlayerProfile{}, err
	}
	p := domain.PlayerProfile{
		ID:        id,
		Name:      m.Name,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
	}
	if m.Region != nil {
		p.Region = *m.Region
	}
	if m.City != nil {
		p.City = *m.City
	}
	return p, nil
}

func convertSportProfileFromDomain(p domain.SportProfile) model.SportProfiles {
	return model.SportProfiles{
		PlayerID:       p.PlayerID.String(),
		Sport:          string(p.Sport),
		CompositeScore: p.CompositeScore,
		EffectiveScore: p.EffectiveScore,
		SkillTier:      string(p.SkillTier),
		MatchElo:       int32(p.MatchElo),
		MatchesPlayed:  int32(p.MatchesPlayed),
		MatchesWon:     int32(p.MatchesWon),
		GlobalRank:     int32Ptr(p.GlobalRank),
		CountryRank:    int32Ptr(p.CountryRank),
		CreatedAt:      p.CreatedAt,
	}
}

func convertSportProfileToDomain(m model.SportProfiles) (domain.SportProfile, error) {
	id, err := uuid.Parse(m.PlayerID)
	if err != nil {
		return domain.SportProfile{}, err
	}
	skillTier, err := tier.Parse(m.SkillTier)
	if err != nil {
		return domain.SportProfile{}, err
	}
	return domain.SportProfile{
		PlayerID:       id,
		Sport:          domain.Sport(m.Sport),
		CompositeScore: m.CompositeScore,
		EffectiveScore: m.EffectiveScore,
		SkillTier:      skillTier,
		MatchElo:       int(m.MatchElo),
		MatchesPlayed:  int(m.MatchesPlayed),
		MatchesWon:     int(m.MatchesWon),
		GlobalRank:     intPtr(m.GlobalRank),
		CountryRank:    intPtr(m.CountryRank),
		CreatedAt:      m.CreatedAt,
	}, nil
}

func convertTechniqueScoreFromDomain(ts domain.TechniqueScore) model.TechniqueScores {
	return model.TechniqueScores{
		PlayerID:       ts.PlayerID.String(),
		Sport:          string(ts.Sport),
		Technique:      ts.Technique,
		BestScore:      ts.BestScore,
		LastAnalyzedAt: ts.LastAnalyzedAt,
	}
}

func convertTechniqueScoreToDomain(m model.TechniqueScores) (domain.TechniqueScore, error) {
	id, err := uuid.Parse(m.PlayerID)
	if err != nil {
		return domain.TechniqueScore{}, err
	}
	return domain.TechniqueScore{
		PlayerID:       id,
		Sport:          domain.Sport(m.Sport),
		Technique:      m.Technique,
		BestScore:      m.BestScore,
		LastAnalyzedAt: m.LastAnalyzedAt,
	}, nil
}

func convertMatchFromDomain(m domain.Match) model.Matches {
	dbm := model.Matches{
		ID:         m.ID.String(),
		Sport:      string(m.Sport),
		PlayerA:    m.SideA.PlayerID.String(),
		PlayerB:    m.SideB.PlayerID.String(),
		ResultA:    resultPtr(m.SideA.Result),
		ResultB:    resultPtr(m.SideB.Result),
		ConfirmedA: m.SideA.Confirmed,
		ConfirmedB: m.SideB.Confirmed,
		EloChangeA: int32Ptr(m.SideA.EloChange),
		EloChangeB: int32Ptr(m.SideB.EloChange),
		Score:      m.Score,
		CreatedAt:  m.CreatedAt,
		RatedAt:    m.RatedAt,
	}
	if m.ChallengeID != nil {
		id := m.ChallengeID.String()
		dbm.ChallengeID = &id
	}
	return dbm
}

func convertMatchToDomain(m model.Matches) (domain.Match, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.Match{}, err
	}
	playerA, err := uuid.Parse(m.PlayerA)
	if err != nil {
		return domain.Match{}, err
	}
	playerB, err := uuid.Parse(m.PlayerB)
	if err != nil {
		return domain.Match{}, err
	}
	resultA, err := resultFromPtr(m.ResultA)
	if err != nil {
		return domain.Match{}, err
	}
	resultB, err := resultFromPtr(m.ResultB)
	if err != nil {
		return domain.Match{}, err
	}
	match := domain.Match{
		ID:    id,
		Sport: domain.Sport(m.Sport),
		SideA: domain.MatchSide{
			PlayerID:  playerA,
			Result:    resultA,
			Confirmed: m.ConfirmedA,
			EloChange: intPtr(m.EloChangeA),
		},
		SideB: domain.MatchSide{
			PlayerID:  playerB,
			Result:    resultB,
			Confirmed: m.ConfirmedB,
			EloChange: intPtr(m.EloChangeB),
		},
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
		RatedAt:   m.RatedAt,
	}
	if m.ChallengeID != nil {
		challengeID, err := uuid.Parse(*m.ChallengeID)
		if err != nil {
			return domain.Match{}, err
		}
		match.ChallengeID = &challengeID
	}
	return match, nil
}

func convertSnapshotFromDomain(s domain.RankingSnapshot) model.RankingSnapshots {
	return model.RankingSnapshots{
		PlayerID:     s.PlayerID.String(),
		Sport:        string(s.Sport),
		Period:       s.Period,
		Scope:        s.Scope,
		Rank:         int32(s.Rank),
		PreviousRank: int32Ptr(s.PreviousRank),
		ComputedAt:   s.ComputedAt,
	}
}

func convertSnapshotToDomain(m model.RankingSnapshots) (domain.RankingSnapshot, error) {
	id, err := uuid.Parse(m.PlayerID)
	if err != nil {
		return domain.RankingSnapshot{}, err
	}
	return domain.RankingSnapshot{
		PlayerID:     id,
		Sport:        domain.Sport(m.Sport),
		Period:       m.Period,
		Scope:        m.Scope,
		Rank:         int(m.Rank),
		PreviousRank: intPtr(m.PreviousRank),
		ComputedAt:   m.ComputedAt,
	}, nil
}

func resultPtr(r *domain.MatchResult) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func resultFromPtr(s *string) (*domain.MatchResult, error) {
	if s == nil {
		return nil, nil
	}
	r, err := domain.ParseMatchResult(*s)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	i := int32(*v)
	return &i
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
