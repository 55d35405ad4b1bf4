package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/goserg/pairingserver/internal/cache/mem"
	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/metrics"
	"github.com/goserg/pairingserver/internal/normalize"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrTournamentBusy is returned when another write on the same tournament
// is in flight.
var ErrTournamentBusy = errors.New("tournament busy")

type Config struct {
	// Seed makes color coin flips reproducible; zero seeds from the clock.
	Seed         int64
	SearchBudget int
}

type TournamentService struct {
	storage storage.Storage
	cache   *mem.Cache
	metrics *metrics.Metrics
	log     *logrus.Entry
	cfg     Config

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func New(l *logrus.Logger, st storage.Storage, cache *mem.Cache, m *metrics.Metrics, cfg Config) *TournamentService {
	return &TournamentService{
		storage: st,
		cache:   cache,
		metrics: m,
		log: l.WithFields(map[string]interface{}{
			"from": "service",
		}),
		cfg:   cfg,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock takes the single-writer lock of a tournament without waiting.
func (s *TournamentService) lock(id uuid.UUID) (func(), error) {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	if !l.TryLock() {
		return nil, fmt.Errorf("tournament %s: %w", id, ErrTournamentBusy)
	}
	return l.Unlock, nil
}

func (s *TournamentService) rand(round int) *rand.Rand {
	if s.cfg.Seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(s.cfg.Seed + int64(round)))
}

func (s *TournamentService) CreatePlayer(ctx context.Context, name string, rating int) (domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Player{}, fmt.Errorf("%w: empty player name", domain.ErrInvalidInput)
	}
	if rating <= 0 {
		return domain.Player{}, fmt.Errorf("%w: rating must be positive", domain.ErrInvalidInput)
	}
	player, err := s.storage.AddPlayer(ctx, domain.Player{
		Name:         name,
		Rating:       rating,
		PeakRating:   rating,
		RegisteredAt: time.Now(),
	}, normalize.Name(name))
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.InvalidatePlayers()
	s.log.WithFields(logrus.Fields{"id": player.ID, "name": player.Name}).Info("player created")
	return player, nil
}

func (s *TournamentService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return s.storage.ListPlayers(ctx)
}

func (s *TournamentService) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetByName resolves a player through the name cache, refilling it on a
// miss.
func (s *TournamentService) GetByName(ctx context.Context, name string) (domain.Player, error) {
	if p, ok := s.cache.GetPlayerByName(name); ok {
		return p, nil
	}
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.UpdatePlayers(players)
	if p, ok := s.cache.GetPlayerByName(name); ok {
		return p, nil
	}
	return domain.Player{}, fmt.Errorf("player %q: %w", name, storage.ErrNotFound)
}

func (s *TournamentService) CreateTournament(ctx context.Context, t domain.Tournament) (domain.Tournament, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return domain.Tournament{}, fmt.Errorf("%w: empty tournament name", domain.ErrInvalidInput)
	}
	if t.TieBreak == "" {
		t.TieBreak = domain.PolicyBuchholz
	}
	if err := t.Validate(); err != nil {
		return domain.Tournament{}, err
	}
	t.ID = uuid.New()
	t.Finalized = false
	t.CreatedAt = time.Now()
	if err := s.storage.CreateTournament(ctx, t); err != nil {
		return domain.Tournament{}, err
	}
	s.log.WithFields(logrus.Fields{
		"tournament": t.ID,
		"kind":       t.Kind,
		"rounds":     t.RoundCount,
	}).Info("tournament created")
	return t, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id uuid.UUID) (domain.Tournament, error) {
	return s.storage.GetTournament(ctx, id)
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	return s.storage.ListTournaments(ctx)
}

// AddCompetitor enters a player before the first round is paired.
func (s *TournamentService) AddCompetitor(ctx context.Context, tournamentID uuid.UUID, playerID int) error {
	unlock, err := s.lock(tournamentID)
	if err != nil {
		return err
	}
	defer unlock()

	t, err := s.storage.GetTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	if t.Finalized {
		return fmt.Errorf("tournament %s: %w", tournamentID, storage.ErrAlreadyFinalized)
	}
	rounds, err := s.storage.ListRounds(ctx, tournamentID)
	if err != nil {
		return err
	}
	if len(rounds) > 0 {
		return fmt.Errorf("%w: tournament %s already started", domain.ErrInvalidInput, tournamentID)
	}
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return err
	}
	if err := s.storage.AddCompetitor(ctx, tournamentID, playerID); err != nil {
		return err
	}
	s.cache.InvalidateStandings(tournamentID)
	return nil
}

func (s *TournamentService) ListCompetitors(ctx context.Context, tournamentID uuid.UUID) ([]domain.Competitor, error) {
	return s.storage.ListCompetitors(ctx, tournamentID)
}

func (s *TournamentService) ListRounds(ctx context.Context, tournamentID uuid.UUID) ([]domain.Round, error) {
	return s.storage.ListRounds(ctx, tournamentID)
}

func (s *TournamentService) ListGames(ctx context.Context, tournamentID uuid.UUID) ([]domain.Game, error) {
	return s.storage.ListGames(ctx, tournamentID)
}
