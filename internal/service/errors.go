package service

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
	// ErrNotParticipant rejects confirmations from players that are on
	// neither side of the match.
	ErrNotParticipant = errors.New("player is not a participant of this match")
	// ErrAlreadyConfirmed rejects a duplicate confirmation from the same
	// side. Callers must treat it as "nothing to do", not as a retried
	// success.
	ErrAlreadyConfirmed = errors.New("you already confirmed this match")
	ErrScoreOutOfRange  = errors.New("technique score must be between 0 and 100")
	ErrSamePlayer       = errors.New("a match needs two different players")
)
