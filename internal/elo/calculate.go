package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw        = 0.5
	Lose        = 0
)

// K is the fixed tournament development coefficient.
const K = 32

// Expected score of a player rated Ra against Rb.
func Expected(Ra int, Rb int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(Rb-Ra)/400.0))
}

// Step is the unrounded change of Ra after a single game.
func Step(Ra int, Rb int, K int, Sa Points) float64 {
	return float64(K) * (float64(Sa) - Expected(Ra, Rb))
}

// Calculate new rating.
// Ra - player A rating.
// Rb - player B rating.
// K - development coefficient.
// Sa - points: 1 for win; 0.5 for draw; 0 for lose.
func Calculate(Ra int, Rb int, K int, Sa Points) int {
	return int(math.Round(float64(Ra) + Step(Ra, Rb, K, Sa)))
}
