package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MatchResult string

const (
	ResultWin    MatchResult = "WIN"
	ResultLoss   MatchResult = "LOSS"
	ResultNoShow MatchResult = "NO_SHOW"
)

func ParseMatchResult(s string) (MatchResult, error) {
	switch MatchResult(s) {
	case ResultWin, ResultLoss, ResultNoShow:
		return MatchResult(s), nil
	}
	return "", fmt.Errorf("unknown match result %q", s)
}

type MatchState string

const (
	AwaitingBoth     MatchState = "AWAITING_BOTH"
	AwaitingOpponent MatchState = "AWAITING_OPPONENT"
	Rated            MatchState = "RATED"
)

// MatchSide is one participant's view of a match: the self-reported result,
// whether that side has confirmed, and the rating delta once applied.
type MatchSide struct {
	PlayerID  uuid.UUID
	Result    *MatchResult
	Confirmed bool
	EloChange *int
}

type Match struct {
	ID          uuid.UUID
	Sport       Sport
	SideA       MatchSide
	SideB       MatchSide
	Score       string
	ChallengeID *uuid.UUID
	CreatedAt   time.Time
	RatedAt     *time.Time
}

func (m Match) State() MatchState {
	switch {
	case m.RatedAt != nil:
		return Rated
	case m.SideA.Confirmed || m.SideB.Confirmed:
		return AwaitingOpponent
	default:
		return AwaitingBoth
	}
}

// Side returns pointers to the acting player's side and the opposing side,
// or nil if the player is not a participant.
func (m *Match) Side(playerID uuid.UUID) (acting, other *MatchSide) {
	switch playerID {
	case m.SideA.PlayerID:
		return &m.SideA, &m.SideB
	case m.SideB.PlayerID:
		return &m.SideB, &m.SideA
	}
	return nil, nil
}

type ChallengeStatus string

const (
	ChallengePending   ChallengeStatus = "PENDING"
	ChallengeCompleted ChallengeStatus = "COMPLETED"
)

// Challenge is the higher-level contest a match may be linked to. It is
// marked completed in the same transaction that rates its match.
type Challenge struct {
	ID        uuid.UUID
	Status    ChallengeStatus
	CreatedAt time.Time
}
