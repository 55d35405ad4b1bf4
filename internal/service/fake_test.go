package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/elo"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/google/uuid"
)

// fakeStorage keeps everything in maps and enforces the same uniqueness
// rules as the sqlite schema.
type fakeStorage struct {
	mu          sync.Mutex
	players     map[int]domain.Player
	names       map[string]int
	tournaments map[uuid.UUID]domain.Tournament
	competitors map[uuid.UUID][]domain.Competitor
	rounds      map[uuid.UUID][]domain.Round
	games       map[uuid.UUID][]domain.Game
	nextGameID  int
	finalized   int
}

var _ storage.Storage = (*fakeStorage)(nil)

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		players:     make(map[int]domain.Player),
		names:       make(map[string]int),
		tournaments: make(map[uuid.UUID]domain.Tournament),
		competitors: make(map[uuid.UUID][]domain.Competitor),
		rounds:      make(map[uuid.UUID][]domain.Round),
		games:       make(map[uuid.UUID][]domain.Game),
	}
}

func (f *fakeStorage) ListPlayers(context.Context) ([]domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	players := make([]domain.Player, 0, len(f.players))
	for _, p := range f.players {
		players = append(players, p)
	}
	slices.SortFunc(players, func(a, b domain.Player) int { return a.ID - b.ID })
	return players, nil
}

func (f *fakeStorage) GetPlayer(_ context.Context, id int) (domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.players[id]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *fakeStorage) FindPlayer(_ context.Context, normalizedName string) (domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.names[normalizedName]
	if !ok {
		return domain.Player{}, storage.ErrNotFound
	}
	return f.players[id], nil
}

func (f *fakeStorage) AddPlayer(_ context.Context, player domain.Player, normalizedName string) (domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.names[normalizedName]; ok {
		return domain.Player{}, fmt.Errorf("%w: duplicate", domain.ErrInvalidInput)
	}
	player.ID = len(f.players) + 1
	f.players[player.ID] = player
	f.names[normalizedName] = player.ID
	return player, nil
}

func (f *fakeStorage) CreateTournament(_ context.Context, t domain.Tournament) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tournaments[t.ID] = t
	return nil
}

func (f *fakeStorage) GetTournament(_ context.Context, id uuid.UUID) (domain.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tournaments[id]
	if !ok {
		return domain.Tournament{}, storage.ErrNotFound
	}
	return t, nil
}

func (f *fakeStorage) ListTournaments(context.Context) ([]domain.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ts []domain.Tournament
	for _, t := range f.tournaments {
		ts = append(ts, t)
	}
	return ts, nil
}

func (f *fakeStorage) AddCompetitor(_ context.Context, tournamentID uuid.UUID, playerID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.competitors[tournamentID] {
		if c.ID == playerID {
			return fmt.Errorf("%w: duplicate competitor", domain.ErrInvalidInput)
		}
	}
	p := f.players[playerID]
	f.competitors[tournamentID] = append(f.competitors[tournamentID], domain.Competitor{
		ID:     p.ID,
		Name:   p.Name,
		Rating: p.Rating,
	})
	return nil
}

func (f *fakeStorage) ListCompetitors(_ context.Context, tournamentID uuid.UUID) ([]domain.Competitor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Competitor, 0, len(f.competitors[tournamentID]))
	for _, c := range f.competitors[tournamentID] {
		c.Opponents = slices.Clone(c.Opponents)
		c.Colors = slices.Clone(c.Colors)
		c.Rating = f.players[c.ID].Rating
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStorage) ListRounds(_ context.Context, tournamentID uuid.UUID) ([]domain.Round, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.rounds[tournamentID]), nil
}

func (f *fakeStorage) ListGames(_ context.Context, tournamentID uuid.UUID) ([]domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.games[tournamentID]), nil
}

func (f *fakeStorage) SaveRound(_ context.Context, tournamentID uuid.UUID, round domain.Round, scores map[int]float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rounds[tournamentID] {
		if r.Number == round.Number {
			return storage.ErrRoundExists
		}
	}
	f.rounds[tournamentID] = append(f.rounds[tournamentID], round)
	for _, g := range convertRoundToGames(round) {
		f.nextGameID++
		g.ID = f.nextGameID
		f.games[tournamentID] = append(f.games[tournamentID], g)
	}

	competitors := f.competitors[tournamentID]
	idx := make(map[int]int, len(competitors))
	for i, c := range competitors {
		idx[c.ID] = i
	}
	for _, p := range round.All() {
		a := &competitors[idx[p.Player1]]
		a.Opponents = append(a.Opponents, p.Player2)
		a.Colors = append(a.Colors, p.Color1)
		if p.IsBye() {
			a.HadBye = true
			continue
		}
		b := &competitors[idx[p.Player2]]
		b.Opponents = append(b.Opponents, p.Player1)
		b.Colors = append(b.Colors, p.Color2)
	}
	f.setScores(tournamentID, scores)
	return nil
}

func (f *fakeStorage) RecordResult(_ context.Context, tournamentID uuid.UUID, gameID int, result domain.Result, scores map[int]float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	games := f.games[tournamentID]
	i := slices.IndexFunc(games, func(g domain.Game) bool { return g.ID == gameID })
	if i < 0 {
		return storage.ErrNotFound
	}
	games[i].Result = result
	f.setScores(tournamentID, scores)
	return nil
}

func (f *fakeStorage) FinalizeRatings(_ context.Context, tournamentID uuid.UUID, changes map[int]elo.Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.tournaments[tournamentID]
	if t.Finalized {
		return storage.ErrAlreadyFinalized
	}
	t.Finalized = true
	f.tournaments[tournamentID] = t
	for id, c := range changes {
		p := f.players[id]
		p.Rating = c.New
		p.PeakRating = c.Peak
		f.players[id] = p
	}
	f.finalized++
	return nil
}

func (f *fakeStorage) setScores(tournamentID uuid.UUID, scores map[int]float64) {
	competitors := f.competitors[tournamentID]
	for i := range competitors {
		if s, ok := scores[competitors[i].ID]; ok {
			competitors[i].Score = s
		}
	}
}

// stallingStorage parks the next ListGames call until release is closed.
type stallingStorage struct {
	*fakeStorage
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func newStallingStorage() *stallingStorage {
	return &stallingStorage{
		fakeStorage: newFakeStorage(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (s *stallingStorage) ListGames(ctx context.Context, tournamentID uuid.UUID) ([]domain.Game, error) {
	games, err := s.fakeStorage.ListGames(ctx, tournamentID)
	if s.armed.CompareAndSwap(true, false) {
		close(s.entered)
		<-s.release
	}
	return games, err
}
