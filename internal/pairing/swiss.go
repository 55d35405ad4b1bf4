package pairing

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/sirupsen/logrus"
)

// Swiss pairs competitors with equal or nearest scores who have not met yet.
type Swiss struct {
	colors   *ColorAllocator
	log      logrus.FieldLogger
	budget   int
	observer Observer
}

var _ Strategy = (*Swiss)(nil)

func NewSwiss(opts Options) *Swiss {
	opts = opts.withDefaults()
	return &Swiss{
		colors:   NewColorAllocator(opts),
		log:      opts.Log,
		budget:   opts.SearchBudget,
		observer: opts.Observer,
	}
}

func (s *Swiss) GeneratePairings(competitors []domain.Competitor, round int, previous []domain.Round) (domain.Round, error) {
	if err := validateRequest(competitors, round, previous); err != nil {
		return domain.Round{}, err
	}
	if round == 1 {
		return s.firstRound(competitors), nil
	}

	queue := slices.Clone(competitors)
	slices.SortStableFunc(queue, func(a, b domain.Competitor) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TieBreak, a.TieBreak); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	result := domain.Round{Number: round}
	if len(queue)%2 == 1 {
		i := byeIndex(queue)
		bye := domain.NewBye(queue[i].ID)
		result.Bye = &bye
		queue = slices.Delete(queue, i, i+1)
	}

	pairs, err := s.pairQueue(round, queue, playedSets(competitors, previous))
	if err != nil {
		return domain.Round{}, fmt.Errorf("round %d: %w", round, err)
	}
	for _, pr := range pairs {
		p := domain.Pairing{Player1: pr.a.ID, Player2: pr.b.ID, Rematch: pr.rematch}
		p.Color1, p.Color2 = s.colors.DecideColors(pr.a, pr.b)
		if p.Rematch {
			s.observer.ForcedRematch(p)
			s.log.WithFields(logrus.Fields{
				"round":   round,
				"player1": p.Player1,
				"player2": p.Player2,
			}).Warn("no fresh opponent left, pairing a rematch")
		}
		result.Pairings = append(result.Pairings, p)
	}
	return result, nil
}

// firstRound splits the rating-ordered field in halves and pairs board i of
// the top half with board i of the bottom half. The top player takes White
// on even boards so neither half is favored.
func (s *Swiss) firstRound(competitors []domain.Competitor) domain.Round {
	seeded := slices.Clone(competitors)
	slices.SortStableFunc(seeded, func(a, b domain.Competitor) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	result := domain.Round{Number: 1}
	if len(seeded)%2 == 1 {
		bye := domain.NewBye(seeded[len(seeded)-1].ID)
		result.Bye = &bye
		seeded = seeded[:len(seeded)-1]
	}

	half := len(seeded) / 2
	for i := 0; i < half; i++ {
		p := domain.Pairing{
			Player1: seeded[i].ID,
			Player2: seeded[half+i].ID,
			Color1:  domain.White,
			Color2:  domain.Black,
		}
		if i%2 == 1 {
			p = p.Swapped()
		}
		result.Pairings = append(result.Pairings, p)
	}
	return result
}

// byeIndex picks the lowest-ranked competitor without a previous bye, or the
// lowest-ranked one if everybody already had a bye.
func byeIndex(queue []domain.Competitor) int {
	for i := len(queue) - 1; i >= 0; i-- {
		if !queue[i].HadBye {
			return i
		}
	}
	return len(queue) - 1
}

// playedSets merges opponent histories with the encounters found in the
// previous rounds.
func playedSets(competitors []domain.Competitor, previous []domain.Round) map[int]mapset.Set[int] {
	played := make(map[int]mapset.Set[int], len(competitors))
	for _, c := range competitors {
		set := mapset.NewThreadUnsafeSet[int]()
		for _, opp := range c.Opponents {
			if opp != domain.ByeID {
				set.Add(opp)
			}
		}
		played[c.ID] = set
	}
	for _, r := range previous {
		for _, p := range r.Pairings {
			if p.IsBye() {
				continue
			}
			if set, ok := played[p.Player1]; ok {
				set.Add(p.Player2)
			}
			if set, ok := played[p.Player2]; ok {
				set.Add(p.Player1)
			}
		}
	}
	return played
}

type pair struct {
	a, b    domain.Competitor
	rematch bool
}

// pairQueue tries, in order: a complete assignment without rematches that
// respects color obligations, one without rematches only, and finally the
// greedy pass that allows rematches. Leaving the first stage is reported
// to the observer since colors may then break their bounds.
func (s *Swiss) pairQueue(round int, queue []domain.Competitor, played map[int]mapset.Set[int]) ([]pair, error) {
	for _, guardColors := range []bool{true, false} {
		srch := searcher{
			queue:       queue,
			played:      played,
			guardColors: guardColors,
			budget:      s.budget,
			used:        make([]bool, len(queue)),
		}
		if srch.run() {
			if !guardColors {
				s.dropColorGuard(round, "pairing without color obligations")
			}
			return srch.pairs, nil
		}
		s.log.WithFields(logrus.Fields{
			"guard_colors": guardColors,
			"exhausted":    srch.budget < 0,
		}).Debug("search found no complete assignment")
	}
	s.dropColorGuard(round, "pairing greedily without color obligations")
	return greedy(queue, played)
}

func (s *Swiss) dropColorGuard(round int, msg string) {
	s.observer.ColorGuardDropped(round)
	s.log.WithField("round", round).Warn(msg)
}

type searcher struct {
	queue       []domain.Competitor
	played      map[int]mapset.Set[int]
	guardColors bool
	budget      int

	used  []bool
	pairs []pair
}

func (s *searcher) run() bool {
	first := -1
	for i := range s.queue {
		if !s.used[i] {
			first = i
			break
		}
	}
	if first < 0 {
		return true
	}

	p := s.queue[first]
	s.used[first] = true
	for _, j := range candidates(s.queue, s.used, first) {
		if s.budget--; s.budget < 0 {
			break
		}
		q := s.queue[j]
		if s.played[p.ID].Contains(q.ID) {
			continue
		}
		if s.guardColors && !colorCompatible(p, q) {
			continue
		}
		s.used[j] = true
		s.pairs = append(s.pairs, pair{a: p, b: q})
		if s.run() {
			return true
		}
		s.pairs = s.pairs[:len(s.pairs)-1]
		s.used[j] = false
	}
	s.used[first] = false
	return false
}

// greedy pairs in queue order with the nearest-score fresh opponent and,
// when none is left, with the next available competitor.
func greedy(queue []domain.Competitor, played map[int]mapset.Set[int]) ([]pair, error) {
	used := make([]bool, len(queue))
	var pairs []pair
	for i := range queue {
		if used[i] {
			continue
		}
		used[i] = true
		p := queue[i]

		next := -1
		rematch := false
		for _, j := range candidates(queue, used, i) {
			if !played[p.ID].Contains(queue[j].ID) {
				next = j
				break
			}
		}
		if next < 0 {
			for j := i + 1; j < len(queue); j++ {
				if !used[j] {
					next = j
					rematch = true
					break
				}
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: no opponent left for competitor %d", domain.ErrNoValidPairing, p.ID)
		}
		used[next] = true
		pairs = append(pairs, pair{a: p, b: queue[next], rematch: rematch})
	}
	return pairs, nil
}

// candidates lists the unused queue indexes in the order they are tried
// for queue[i]: score difference ascending in half-point steps, then queue
// order.
func candidates(queue []domain.Competitor, used []bool, i int) []int {
	own := halfPoints(queue[i].Score)
	maxDiff := 0
	for j := range queue {
		if !used[j] {
			maxDiff = max(maxDiff, abs(halfPoints(queue[j].Score)-own))
		}
	}

	out := make([]int, 0, len(queue))
	for diff := 0; diff <= maxDiff; diff++ {
		for j := range queue {
			if !used[j] && abs(halfPoints(queue[j].Score)-own) == diff {
				out = append(out, j)
			}
		}
	}
	return out
}

func halfPoints(score float64) int {
	return int(math.Round(score * 2))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
