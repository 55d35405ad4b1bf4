package pairing

import (
	"errors"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meetings(t *testing.T, rounds []domain.Round) mapset.Set[[2]int] {
	t.Helper()
	met := mapset.NewThreadUnsafeSet[[2]int]()
	for _, r := range rounds {
		for _, p := range r.Pairings {
			key := [2]int{min(p.Player1, p.Player2), max(p.Player1, p.Player2)}
			require.False(t, met.Contains(key), "round %d repeats %v", r.Number, key)
			met.Add(key)
		}
	}
	return met
}

func TestRoundRobin_OddFieldEveryoneRestsOnce(t *testing.T) {
	competitors := field(7, 2000, 25)

	rounds, err := NewRoundRobin(0, testOptions(1)).GenerateAllRounds(competitors)
	require.NoError(t, err)
	require.Len(t, rounds, 7)

	byes := make(map[int]int)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.Number)
		requireWellFormed(t, competitors, r)
		require.NotNil(t, r.Bye)
		byes[r.Bye.Player1]++
	}
	for _, c := range competitors {
		assert.Equal(t, 1, byes[c.ID], "competitor %d", c.ID)
	}
	assert.Equal(t, 21, meetings(t, rounds).Cardinality())
}

func TestRoundRobin_EvenFieldCompleteness(t *testing.T) {
	competitors := field(8, 2000, 25)

	rounds, err := NewRoundRobin(0, testOptions(1)).GenerateAllRounds(competitors)
	require.NoError(t, err)
	require.Len(t, rounds, 7)
	for _, r := range rounds {
		requireWellFormed(t, competitors, r)
		assert.Nil(t, r.Bye)
	}
	assert.Equal(t, 28, meetings(t, rounds).Cardinality())
}

func TestRoundRobin_SingleCycleColorBounds(t *testing.T) {
	for n := 2; n <= 16; n++ {
		rounds, err := NewRoundRobin(0, testOptions(1)).GenerateAllRounds(field(n, 2000, 10))
		require.NoError(t, err)
		assert.Empty(t, colorViolations(rounds), "%d competitors", n)
	}
}

func TestRoundRobin_ReplaysCycleWithSwappedColors(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		rounds int
		cycle  int
	}{
		{name: "six players two cycles", size: 6, rounds: 10, cycle: 5},
		{name: "five players partial second cycle", size: 5, rounds: 8, cycle: 5},
		{name: "four players two cycles", size: 4, rounds: 6, cycle: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rounds, err := NewRoundRobin(tt.rounds, testOptions(1)).GenerateAllRounds(field(tt.size, 2000, 10))
			require.NoError(t, err)
			require.Len(t, rounds, tt.rounds)

			for k := 0; k+tt.cycle < len(rounds); k++ {
				first, replay := rounds[k], rounds[k+tt.cycle]
				require.Len(t, replay.Pairings, len(first.Pairings))
				for i, p := range first.Pairings {
					assert.Equal(t, p.Swapped(), replay.Pairings[i], "round %d board %d", replay.Number, i+1)
				}
				assert.Equal(t, first.Bye, replay.Bye)
			}
		})
	}
}

func TestRoundRobin_MultiCycleColorBounds(t *testing.T) {
	tests := []struct {
		size   int
		rounds int
	}{
		{size: 5, rounds: 15},
		{size: 6, rounds: 15},
		{size: 7, rounds: 14},
		{size: 8, rounds: 14},
		{size: 10, rounds: 27},
	}
	for _, tt := range tests {
		rounds, err := NewRoundRobin(tt.rounds, testOptions(1)).GenerateAllRounds(field(tt.size, 2000, 10))
		require.NoError(t, err)
		assert.Empty(t, colorViolations(rounds), "%d competitors over %d rounds", tt.size, tt.rounds)
	}
}

func TestRoundRobin_GeneratePairings(t *testing.T) {
	competitors := field(6, 2000, 10)
	rr := NewRoundRobin(0, testOptions(1))
	all, err := rr.GenerateAllRounds(competitors)
	require.NoError(t, err)

	var previous []domain.Round
	for round := 1; round <= len(all); round++ {
		got, err := rr.GeneratePairings(competitors, round, previous)
		require.NoError(t, err)
		assert.Equal(t, all[round-1], got)
		previous = append(previous, got)
	}

	_, err = rr.GeneratePairings(competitors, len(all)+1, previous)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestForTournament(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.Kind
		want    Strategy
		wantErr bool
	}{
		{name: "swiss", kind: domain.Swiss, want: &Swiss{}},
		{name: "round robin", kind: domain.RoundRobin, want: &RoundRobin{}},
		{name: "unknown", kind: domain.Kind("knockout"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ForTournament(domain.Tournament{Kind: tt.kind, RoundCount: 5}, testOptions(1))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}
