package pairing

import (
	"errors"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwiss_FirstRoundSplitsByRating(t *testing.T) {
	competitors := field(8, 2200, 100)
	// shuffle input order, the strategy must sort by rating itself
	competitors[0], competitors[5] = competitors[5], competitors[0]
	competitors[2], competitors[7] = competitors[7], competitors[2]

	got, err := NewSwiss(testOptions(1)).GeneratePairings(competitors, 1, nil)
	require.NoError(t, err)

	want := []domain.Pairing{
		{Player1: 1, Player2: 5, Color1: domain.White, Color2: domain.Black},
		{Player1: 2, Player2: 6, Color1: domain.Black, Color2: domain.White},
		{Player1: 3, Player2: 7, Color1: domain.White, Color2: domain.Black},
		{Player1: 4, Player2: 8, Color1: domain.Black, Color2: domain.White},
	}
	if diff := cmp.Diff(want, got.Pairings); diff != "" {
		t.Errorf("GeneratePairings() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, got.Bye)
	assert.Equal(t, 1, got.Number)
}

func TestSwiss_FirstRoundOddFieldGivesLowestRatedBye(t *testing.T) {
	competitors := field(5, 2200, 100)

	got, err := NewSwiss(testOptions(1)).GeneratePairings(competitors, 1, nil)
	require.NoError(t, err)

	require.NotNil(t, got.Bye)
	assert.Equal(t, domain.NewBye(5), *got.Bye)
	want := []domain.Pairing{
		{Player1: 1, Player2: 3, Color1: domain.White, Color2: domain.Black},
		{Player1: 2, Player2: 4, Color1: domain.Black, Color2: domain.White},
	}
	if diff := cmp.Diff(want, got.Pairings); diff != "" {
		t.Errorf("GeneratePairings() mismatch (-want +got):\n%s", diff)
	}
}

func TestSwiss_WidensScoreDifference(t *testing.T) {
	competitors := field(6, 2000, 100)
	round1 := domain.Round{Number: 1, Pairings: []domain.Pairing{
		{Player1: 1, Player2: 4, Color1: domain.White, Color2: domain.Black},
		{Player1: 2, Player2: 5, Color1: domain.Black, Color2: domain.White},
		{Player1: 3, Player2: 6, Color1: domain.White, Color2: domain.Black},
	}}
	history := map[int]struct {
		opp   int
		color domain.Color
		score float64
	}{
		1: {4, domain.White, 0.5},
		4: {1, domain.Black, 0.5},
		2: {5, domain.Black, 1},
		5: {2, domain.White, 0},
		3: {6, domain.White, 1},
		6: {3, domain.Black, 0},
	}
	for i := range competitors {
		h := history[competitors[i].ID]
		competitors[i].Opponents = []int{h.opp}
		competitors[i].Colors = []domain.Color{h.color}
		competitors[i].Score = h.score
	}

	got, err := NewSwiss(testOptions(1)).GeneratePairings(competitors, 2, []domain.Round{round1})
	require.NoError(t, err)
	requireWellFormed(t, competitors, got)

	var pairs [][2]int
	for _, p := range got.Pairings {
		pairs = append(pairs, [2]int{p.Player1, p.Player2})
		assert.False(t, p.Rematch)
	}
	// 1 and 4 share a score but already met, so 1 drops half a point to 5
	assert.Equal(t, [][2]int{{2, 3}, {1, 5}, {4, 6}}, pairs)
	assert.Equal(t, domain.White, got.Pairings[0].Color1, "2 had black, 3 had white")
}

func TestSwiss_ByePrefersCompetitorWithoutBye(t *testing.T) {
	competitors := field(5, 2200, 100)
	history := map[int]struct {
		opp   int
		color domain.Color
		score float64
	}{
		1: {3, domain.White, 1},
		3: {1, domain.Black, 0},
		2: {4, domain.White, 0.5},
		4: {2, domain.Black, 0.5},
		5: {domain.ByeID, domain.NoColor, 0},
	}
	for i := range competitors {
		h := history[competitors[i].ID]
		competitors[i].Opponents = []int{h.opp}
		competitors[i].Colors = []domain.Color{h.color}
		competitors[i].Score = h.score
	}
	competitors[4].HadBye = true
	bye := domain.NewBye(5)
	round1 := domain.Round{Number: 1, Bye: &bye, Pairings: []domain.Pairing{
		{Player1: 1, Player2: 3, Color1: domain.White, Color2: domain.Black},
		{Player1: 2, Player2: 4, Color1: domain.White, Color2: domain.Black},
	}}

	got, err := NewSwiss(testOptions(1)).GeneratePairings(competitors, 2, []domain.Round{round1})
	require.NoError(t, err)
	requireWellFormed(t, competitors, got)

	require.NotNil(t, got.Bye)
	assert.Equal(t, 3, got.Bye.Player1)
	assert.Equal(t, 1, got.Pairings[0].Player1)
	assert.Equal(t, 2, got.Pairings[0].Player2)
	assert.Equal(t, 4, got.Pairings[1].Player1)
	assert.Equal(t, 5, got.Pairings[1].Player2)
}

func TestSwiss_ForcedRematchWhenEveryoneMet(t *testing.T) {
	rounds := []domain.Round{
		{Number: 1, Pairings: []domain.Pairing{
			{Player1: 1, Player2: 2, Color1: domain.White, Color2: domain.Black},
			{Player1: 3, Player2: 4, Color1: domain.White, Color2: domain.Black},
		}},
		{Number: 2, Pairings: []domain.Pairing{
			{Player1: 1, Player2: 3, Color1: domain.Black, Color2: domain.White},
			{Player1: 2, Player2: 4, Color1: domain.White, Color2: domain.Black},
		}},
		{Number: 3, Pairings: []domain.Pairing{
			{Player1: 1, Player2: 4, Color1: domain.Black, Color2: domain.White},
			{Player1: 2, Player2: 3, Color1: domain.White, Color2: domain.Black},
		}},
	}
	competitors := field(4, 2200, 100)
	for _, r := range rounds {
		applyRound(t, competitors, r)
	}

	obs := &countingObserver{}
	opts := testOptions(7)
	opts.Observer = obs
	opts.SearchBudget = 50
	got, err := NewSwiss(opts).GeneratePairings(competitors, 4, rounds)
	require.NoError(t, err)
	requireWellFormed(t, competitors, got)

	assert.Equal(t, 2, got.Rematches())
	assert.Equal(t, 2, obs.rematches)
	assert.Equal(t, []int{4}, obs.dropped)
	for _, p := range got.Pairings {
		assert.True(t, p.Rematch)
	}
}

func TestSwiss_DropsColorGuardWhenOnlyFreshPairsClash(t *testing.T) {
	// 1 and 2 had White twice, 3 and 4 Black twice, and the only fresh
	// pairs are 1-2 and 3-4.
	rounds := []domain.Round{
		{Number: 1, Pairings: []domain.Pairing{
			{Player1: 1, Player2: 3, Color1: domain.White, Color2: domain.Black},
			{Player1: 2, Player2: 4, Color1: domain.White, Color2: domain.Black},
		}},
		{Number: 2, Pairings: []domain.Pairing{
			{Player1: 1, Player2: 4, Color1: domain.White, Color2: domain.Black},
			{Player1: 2, Player2: 3, Color1: domain.White, Color2: domain.Black},
		}},
	}
	competitors := field(4, 2200, 100)
	for _, r := range rounds {
		applyRound(t, competitors, r)
	}

	obs := &countingObserver{}
	opts := testOptions(3)
	opts.Observer = obs
	got, err := NewSwiss(opts).GeneratePairings(competitors, 3, rounds)
	require.NoError(t, err)
	requireWellFormed(t, competitors, got)

	var pairs [][2]int
	for _, p := range got.Pairings {
		pairs = append(pairs, [2]int{min(p.Player1, p.Player2), max(p.Player1, p.Player2)})
	}
	assert.ElementsMatch(t, [][2]int{{1, 2}, {3, 4}}, pairs)
	assert.Zero(t, got.Rematches())
	assert.Zero(t, obs.rematches)
	assert.Equal(t, []int{3}, obs.dropped)
}

func TestSwiss_InvalidRequests(t *testing.T) {
	valid := field(4, 2000, 10)
	tests := []struct {
		name        string
		competitors []domain.Competitor
		round       int
		previous    []domain.Round
		wantErr     error
	}{
		{name: "empty field", competitors: nil, round: 1, wantErr: domain.ErrInvalidInput},
		{name: "round zero", competitors: valid, round: 0, wantErr: domain.ErrInvalidInput},
		{name: "missing previous rounds", competitors: valid, round: 3, previous: []domain.Round{{Number: 1}}, wantErr: domain.ErrInvalidInput},
		{
			name: "diverging histories",
			competitors: []domain.Competitor{
				{ID: 1, Opponents: []int{2}},
				{ID: 2, Opponents: []int{1}, Colors: []domain.Color{domain.Black}},
			},
			round:    2,
			previous: []domain.Round{{Number: 1}},
			wantErr:  domain.ErrInconsistentHistory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSwiss(testOptions(1)).GeneratePairings(tt.competitors, tt.round, tt.previous)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSwiss_Properties(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		rounds int
	}{
		{name: "sixteen players seven rounds", size: 16, rounds: 7},
		{name: "eleven players six rounds", size: 11, rounds: 6},
		{name: "ten players six rounds", size: 10, rounds: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 10; seed++ {
				competitors := field(tt.size, 2400, 50)
				swiss := NewSwiss(testOptions(seed))
				met := mapset.NewSet[[2]int]()
				byes := make(map[int]int)
				var previous []domain.Round

				for round := 1; round <= tt.rounds; round++ {
					got, err := swiss.GeneratePairings(competitors, round, previous)
					require.NoError(t, err)
					requireWellFormed(t, competitors, got)
					for _, p := range got.Pairings {
						key := [2]int{min(p.Player1, p.Player2), max(p.Player1, p.Player2)}
						require.False(t, met.Contains(key), "seed %d round %d repeats %v", seed, round, key)
						require.False(t, p.Rematch)
						met.Add(key)
					}
					if got.Bye != nil {
						byes[got.Bye.Player1]++
						require.Equal(t, 1, byes[got.Bye.Player1], "second bye for %d", got.Bye.Player1)
					}
					applyRound(t, competitors, got)
					previous = append(previous, got)
				}
				require.Empty(t, colorViolations(previous), "seed %d", seed)
			}
		})
	}
}
