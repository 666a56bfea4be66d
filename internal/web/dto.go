package web

import (
	"errors"
	"time"

	"github.com/courtside/skillserver/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrMissingName      = errors.New("player name must not be empty")
	ErrMissingSport     = errors.New("sport must not be empty")
	ErrMissingPlayer    = errors.New("both players must be present")
	ErrMissingTechnique = errors.New("technique must not be empty")
	ErrMissingResult    = errors.New("result must be WIN, LOSS or NO_SHOW")
)

type createPlayer struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

func (c createPlayer) Validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	return nil
}

type recordAnalysis struct {
	PlayerID   uuid.UUID  `json:"playerId"`
	Sport      string     `json:"sport"`
	Technique  string     `json:"technique"`
	Score      float64    `json:"score"`
	AnalyzedAt *time.Time `json:"analyzedAt"`
}

func (r recordAnalysis) Validate() error {
	var err error
	if r.PlayerID == uuid.Nil {
		err = errors.Join(err, ErrMissingPlayer)
	}
	if r.Sport == "" {
		err = errors.Join(err, ErrMissingSport)
	}
	if r.Technique == "" {
		err = errors.Join(err, ErrMissingTechnique)
	}
	return err
}

func (r recordAnalysis) analyzedAt() time.Time {
	if r.AnalyzedAt != nil {
		return r.AnalyzedAt.UTC()
	}
	return time.Now().UTC()
}

type createMatch struct {
	Sport       string     `json:"sport"`
	PlayerA     uuid.UUID  `json:"playerAId"`
	PlayerB     uuid.UUID  `json:"playerBId"`
	ChallengeID *uuid.UUID `json:"challengeId"`
}

func (c createMatch) Validate() error {
	var err error
	if c.Sport == "" {
		err = errors.Join(err, ErrMissingSport)
	}
	if c.PlayerA == uuid.Nil || c.PlayerB == uuid.Nil {
		err = errors.Join(err, ErrMissingPlayer)
	}
	return err
}

type confirmMatch struct {
	PlayerID uuid.UUID `json:"profileId"`
	Result   string    `json:"result"`
	Score    string    `json:"score"`
}

func (c confirmMatch) Validate() error {
	var err error
	if c.PlayerID == uuid.Nil {
		err = errors.Join(err, ErrMissingPlayer)
	}
	if _, perr := domain.ParseMatchResult(c.Result); perr != nil {
		err = errors.Join(err, ErrMissingResult)
	}
	return err
}

type recomputeRankings struct {
	Sport string `json:"sport"`
	// Scope is optional. Empty means every scope: global plus one per country.
	Scope  string `json:"scope"`
	Period string `json:"period"`
}

func (r recomputeRankings) Validate() error {
	if r.Sport == "" {
		return ErrMissingSport
	}
	return nil
}
