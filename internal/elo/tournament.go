package elo

import (
	"fmt"
	"math"

	"github.com/goserg/pairingserver/internal/domain"
)

// Rated is a competitor's rating before the tournament is closed.
type Rated struct {
	ID     int
	Rating int
	Peak   int
}

type Change struct {
	Old   int
	New   int
	Delta int
	Peak  int
}

// RatingDeltas sums the unrounded K=32 steps of all games using the ratings
// held before the tournament, then applies one rounded delta per competitor. A bye adds a full actual point with no expectation.
// Games that were not played are skipped.
func RatingDeltas(ratings []Rated, games []domain.Game) (map[int]Change, error) {
	byID := make(map[int]Rated, len(ratings))
	for _, r := range ratings {
		byID[r.ID] = r
	}

	change := make(map[int]float64, len(ratings))
	for _, g := range games {
		if _, ok := byID[g.Player1]; !ok {
			return nil, fmt.Errorf("%w: game in round %d has unknown competitor %d",
				domain.ErrInconsistentHistory, g.Round, g.Player1)
		}
		if g.IsBye() {
			if domain.ParseResult(string(g.Result)) == domain.ResultBye {
				change[g.Player1] += K
			}
			continue
		}
		if _, ok := byID[g.Player2]; !ok {
			return nil, fmt.Errorf("%w: game in round %d has unknown competitor %d",
				domain.ErrInconsistentHistory, g.Round, g.Player2)
		}
		out := g.Result.Outcome()
		if !out.Played {
			continue
		}
		a, b := byID[g.Player1], byID[g.Player2]
		change[a.ID] += Step(a.Rating, b.Rating, K, Points(out.Points1))
		change[b.ID] += Step(b.Rating, a.Rating, K, Points(out.Points2))
	}

	res := make(map[int]Change, len(ratings))
	for _, r := range ratings {
		delta := int(math.Round(change[r.ID]))
		next := r.Rating + delta
		res[r.ID] = Change{
			Old:   r.Rating,
			New:   next,
			Delta: delta,
			Peak:  max(r.Peak, next),
		}
	}
	return res, nil
}
