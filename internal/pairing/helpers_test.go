package pairing

import (
	"math/rand"
	"testing"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/stretchr/testify/require"
)

func testOptions(seed int64) Options {
	return Options{Rand: rand.New(rand.NewSource(seed))}
}

// field builds n competitors with ids 1..n and strictly decreasing ratings.
func field(n int, top, step int) []domain.Competitor {
	competitors := make([]domain.Competitor, 0, n)
	for i := 0; i < n; i++ {
		competitors = append(competitors, domain.Competitor{
			ID:     i + 1,
			Rating: top - i*step,
		})
	}
	return competitors
}

func indexByID(competitors []domain.Competitor) map[int]int {
	idx := make(map[int]int, len(competitors))
	for i, c := range competitors {
		idx[c.ID] = i
	}
	return idx
}

// applyRound appends the round to every history. The lower id wins unless
// (round+board)%3 == 0, which is a draw.
func applyRound(t *testing.T, competitors []domain.Competitor, r domain.Round) {
	t.Helper()
	idx := indexByID(competitors)
	for board, p := range r.Pairings {
		a, ok := idx[p.Player1]
		require.True(t, ok)
		b, ok := idx[p.Player2]
		require.True(t, ok)
		competitors[a].Opponents = append(competitors[a].Opponents, p.Player2)
		competitors[a].Colors = append(competitors[a].Colors, p.Color1)
		competitors[b].Opponents = append(competitors[b].Opponents, p.Player1)
		competitors[b].Colors = append(competitors[b].Colors, p.Color2)
		switch {
		case (r.Number+board)%3 == 0:
			competitors[a].Score += 0.5
			competitors[b].Score += 0.5
		case p.Player1 < p.Player2:
			competitors[a].Score++
		default:
			competitors[b].Score++
		}
	}
	if r.Bye != nil {
		i := idx[r.Bye.Player1]
		competitors[i].Opponents = append(competitors[i].Opponents, domain.ByeID)
		competitors[i].Colors = append(competitors[i].Colors, domain.NoColor)
		competitors[i].HadBye = true
		competitors[i].Score++
	}
}

// requireWellFormed checks that every competitor appears at most once and
// that colors are opposite on every board.
func requireWellFormed(t *testing.T, competitors []domain.Competitor, r domain.Round) {
	t.Helper()
	require.Len(t, r.Pairings, len(competitors)/2)
	seen := make(map[int]bool)
	for _, p := range r.All() {
		require.False(t, seen[p.Player1], "competitor %d paired twice", p.Player1)
		seen[p.Player1] = true
		if p.IsBye() {
			require.Equal(t, domain.NoColor, p.Color1)
			continue
		}
		require.False(t, seen[p.Player2], "competitor %d paired twice", p.Player2)
		seen[p.Player2] = true
		require.NotEqual(t, p.Color1, p.Color2)
		require.NotEqual(t, domain.NoColor, p.Color1)
		require.NotEqual(t, domain.NoColor, p.Color2)
	}
	require.Len(t, seen, len(competitors))
}

type countingObserver struct {
	flips     int
	rematches int
	dropped   []int
}

func (o *countingObserver) ColorCoinFlip()               { o.flips++ }
func (o *countingObserver) ForcedRematch(domain.Pairing) { o.rematches++ }
func (o *countingObserver) ColorGuardDropped(round int)  { o.dropped = append(o.dropped, round) }
