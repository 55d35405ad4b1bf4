// Package tiebreak computes standings tie-breaks from the full game list of
// a tournament. Nothing is carried between calls.
package tiebreak

import (
	"math"

	"github.com/goserg/pairingserver/internal/domain"
)

// Compute returns tie-breaks for every participant. Opponent scores are the
// current participation scores, not the scores at the time of the game.
// Only played games count; byes, absences and unplayed games are skipped.
func Compute(t domain.Tournament, games []domain.Game, participations []domain.Participation) map[int]domain.TieBreaks {
	scores := make(map[int]float64, len(participations))
	for _, p := range participations {
		scores[p.CompetitorID] = p.Score
	}

	type acc struct {
		values domain.TieBreaks
		lowest float64
		games  int
	}
	accs := make(map[int]*acc, len(participations))
	for _, p := range participations {
		accs[p.CompetitorID] = &acc{lowest: math.Inf(1)}
	}
	add := func(id, opp int, weight float64) {
		a, ok := accs[id]
		if !ok {
			return
		}
		oppScore := scores[opp]
		a.games++
		a.lowest = math.Min(a.lowest, oppScore)
		if t.TieBreak == domain.PolicyWeightedSquare {
			a.values.WeightedSquare += weight * oppScore * oppScore
		} else {
			a.values.Buchholz += oppScore
		}
		a.values.SonnebornBerger += weight * oppScore
	}

	for _, g := range games {
		if g.IsBye() {
			continue
		}
		out := g.Result.Outcome()
		if !out.Played {
			continue
		}
		add(g.Player1, g.Player2, out.Points1)
		add(g.Player2, g.Player1, out.Points2)
	}

	res := make(map[int]domain.TieBreaks, len(accs))
	for id, a := range accs {
		v := a.values
		if t.TieBreak != domain.PolicyWeightedSquare && a.games > 0 {
			v.BuchholzCut1 = v.Buchholz - a.lowest
		}
		res[id] = v
	}
	return res
}

// Scores sums the points every competitor collected, including byes and
// absences with partial credit.
func Scores(games []domain.Game) map[int]float64 {
	scores := make(map[int]float64)
	for _, g := range games {
		out := g.Result.Outcome()
		scores[g.Player1] += out.Points1
		if !g.IsBye() {
			scores[g.Player2] += out.Points2
		}
	}
	return scores
}
