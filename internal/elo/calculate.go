package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Lose Points = 0
)

const (
	// ProvisionalMatches is how many rated matches a player converges fast for.
	ProvisionalMatches = 30
	provisionalK       = 32
	steadyK            = 16
)

// KFactor returns the sensitivity coefficient for a player with the given
// number of rated matches.
func KFactor(matchesPlayed int) int {
	if matchesPlayed < ProvisionalMatches {
		return provisionalK
	}
	return steadyK
}

// Calculate returns the new rating and the applied delta for one side of a
// match. Sa is 1 for a win, 0 otherwise. The two sides of a match are rated
// independently with their own K, so their deltas are not required to be
// equal and opposite.
func Calculate(Ra int, Rb int, Sa Points, matchesPlayed int) (newRating int, change int) {
	ra := float64(Ra)
	rb := float64(Rb)
	k := float64(KFactor(matchesPlayed))

	Ea := 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
	change = int(math.Round(k * (float64(Sa) - Ea)))
	return Ra + change, change
}
