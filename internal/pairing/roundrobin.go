package pairing

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/sirupsen/logrus"
)

// RoundRobin schedules every competitor against every other one using
// Berger tables. Rounds beyond the first cycle replay it with colors
// swapped on every other cycle.
type RoundRobin struct {
	roundCount int
	log        logrus.FieldLogger
}

var _ Strategy = (*RoundRobin)(nil)

// NewRoundRobin schedules roundCount rounds; zero or less means one cycle.
func NewRoundRobin(roundCount int, opts Options) *RoundRobin {
	opts = opts.withDefaults()
	return &RoundRobin{
		roundCount: roundCount,
		log:        opts.Log,
	}
}

// GeneratePairings returns round of the precomputed schedule.
func (rr *RoundRobin) GeneratePairings(competitors []domain.Competitor, round int, previous []domain.Round) (domain.Round, error) {
	if err := validateRequest(competitors, round, previous); err != nil {
		return domain.Round{}, err
	}
	rounds, err := rr.GenerateAllRounds(competitors)
	if err != nil {
		return domain.Round{}, err
	}
	if round > len(rounds) {
		return domain.Round{}, fmt.Errorf("%w: round %d exceeds the %d scheduled rounds",
			domain.ErrInvalidInput, round, len(rounds))
	}
	return rounds[round-1], nil
}

// GenerateAllRounds materializes the whole event.
func (rr *RoundRobin) GenerateAllRounds(competitors []domain.Competitor) ([]domain.Round, error) {
	if err := domain.ValidateCompetitors(competitors); err != nil {
		return nil, err
	}

	seeds := make([]int, 0, len(competitors)+1)
	seeded := slices.Clone(competitors)
	slices.SortStableFunc(seeded, func(a, b domain.Competitor) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	for _, c := range seeded {
		seeds = append(seeds, c.ID)
	}
	if len(seeds)%2 == 1 {
		seeds = append(seeds, domain.ByeID)
	}

	cycle := bergerCycle(seeds)
	total := rr.roundCount
	if total <= 0 {
		total = len(cycle)
	}

	if total > len(cycle) {
		cycles := min((total+len(cycle)-1)/len(cycle), 3)
		offset, ok := replayOffset(cycle, cycles)
		if !ok {
			rr.log.WithFields(logrus.Fields{
				"competitors": len(competitors),
				"rounds":      total,
			}).Warn("no round order keeps colors balanced across cycles")
		}
		cycle = append(slices.Clone(cycle[offset:]), cycle[:offset]...)
	}

	rounds := make([]domain.Round, 0, total)
	for i := 0; i < total; i++ {
		r := cycleRound(cycle[i%len(cycle)], i/len(cycle)%2 == 1)
		r.Number = i + 1
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// bergerCycle returns one cycle for an even number of seeds. The last seed
// stays fixed and alternates colors; every other board keeps its
// orientation while the numbers advance by n/2 modulo n-1.
func bergerCycle(seeds []int) [][]domain.Pairing {
	n := len(seeds)
	m := n - 1
	half := n / 2

	// positions are 1-based seed numbers, n is the fixed seed
	row := make([][2]int, half)
	row[0] = [2]int{1, n}
	for i := 2; i <= half; i++ {
		row[i-1] = [2]int{i, n + 1 - i}
	}
	advance := func(v int) int {
		return (v-1+half)%m + 1
	}

	cycle := make([][]domain.Pairing, 0, m)
	for r := 0; r < m; r++ {
		boards := make([]domain.Pairing, 0, half)
		for k, b := range row {
			white, black := b[0], b[1]
			if k == 0 && r%2 == 1 {
				white, black = black, white
			}
			boards = append(boards, domain.Pairing{
				Player1: seeds[white-1],
				Player2: seeds[black-1],
				Color1:  domain.White,
				Color2:  domain.Black,
			})
		}
		cycle = append(cycle, boards)

		row[0] = [2]int{advance(row[0][0]), n}
		for k := 1; k < half; k++ {
			row[k] = [2]int{advance(row[k][0]), advance(row[k][1])}
		}
	}
	return cycle
}

// cycleRound turns Berger boards into a Round, moving the board against the
// phantom seed to Bye.
func cycleRound(boards []domain.Pairing, swapped bool) domain.Round {
	var r domain.Round
	for _, b := range boards {
		switch {
		case b.Player1 == domain.ByeID:
			bye := domain.NewBye(b.Player2)
			r.Bye = &bye
		case b.Player2 == domain.ByeID:
			bye := domain.NewBye(b.Player1)
			r.Bye = &bye
		case swapped:
			r.Pairings = append(r.Pairings, b.Swapped())
		default:
			r.Pairings = append(r.Pairings, b)
		}
	}
	return r
}

// replayOffset finds the first rotation of the cycle whose replay with
// swapped colors keeps everyone within the color bounds for the given
// number of cycles.
func replayOffset(cycle [][]domain.Pairing, cycles int) (int, bool) {
	for offset := range cycle {
		rotated := append(slices.Clone(cycle[offset:]), cycle[:offset]...)
		rounds := make([]domain.Round, 0, cycles*len(cycle))
		for c := 0; c < cycles; c++ {
			for _, boards := range rotated {
				rounds = append(rounds, cycleRound(boards, c%2 == 1))
			}
		}
		if len(colorViolations(rounds)) == 0 {
			return offset, true
		}
	}
	return 0, false
}

// colorViolations lists competitors whose color sequence over rounds breaks
// the balance bound or repeats a color three times in a row. Byes are
// skipped.
func colorViolations(rounds []domain.Round) []int {
	sequences := make(map[int][]domain.Color)
	var order []int
	add := func(id int, c domain.Color) {
		if _, ok := sequences[id]; !ok {
			order = append(order, id)
		}
		sequences[id] = append(sequences[id], c)
	}
	for _, r := range rounds {
		for _, p := range r.Pairings {
			add(p.Player1, p.Color1)
			add(p.Player2, p.Color2)
		}
	}

	var bad []int
	for _, id := range order {
		seq := sequences[id]
		balance := 0
		for i, c := range seq {
			if c == domain.White {
				balance++
			} else {
				balance--
			}
			tripled := i >= 2 && seq[i-1] == c && seq[i-2] == c
			if abs(balance) > maxColorBalance || tripled {
				bad = append(bad, id)
				break
			}
		}
	}
	return bad
}
