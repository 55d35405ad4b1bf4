package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/pairing"
	"github.com/goserg/pairingserver/internal/storage"
	"github.com/goserg/pairingserver/internal/tiebreak"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (s *TournamentService) strategy(t domain.Tournament, round int) (pairing.Strategy, error) {
	return pairing.ForTournament(t, pairing.Options{
		Rand:         s.rand(round),
		Log:          s.log.WithField("tournament", t.ID),
		SearchBudget: s.cfg.SearchBudget,
		Observer:     s.metrics,
	})
}

// GeneratePairings pairs the given round and persists it. Only the next
// unpaired round can be requested; asking again for a stored round fails
// with storage.ErrRoundExists.
func (s *TournamentService) GeneratePairings(ctx context.Context, tournamentID uuid.UUID, round int) (domain.Round, error) {
	unlock, err := s.lock(tournamentID)
	if err != nil {
		return domain.Round{}, err
	}
	defer unlock()

	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return domain.Round{}, err
	}
	t := snap.tournament
	if t.Finalized {
		return domain.Round{}, fmt.Errorf("tournament %s: %w", t.ID, storage.ErrAlreadyFinalized)
	}
	if round <= len(snap.rounds) {
		return domain.Round{}, fmt.Errorf("round %d: %w", round, storage.ErrRoundExists)
	}
	if round != len(snap.rounds)+1 {
		return domain.Round{}, fmt.Errorf("%w: next round is %d, got %d", domain.ErrInvalidInput, len(snap.rounds)+1, round)
	}
	if round > t.RoundCount {
		return domain.Round{}, fmt.Errorf("%w: tournament has %d rounds", domain.ErrInvalidInput, t.RoundCount)
	}
	if t.Kind == domain.Swiss {
		if pending := pendingGames(snap.games, round-1); pending > 0 {
			return domain.Round{}, fmt.Errorf("%w: round %d has %d games without result", domain.ErrInvalidInput, round-1, pending)
		}
	}

	competitors := slices.Clone(snap.competitors)
	tb := tiebreak.Compute(t, snap.games, convertCompetitorsToParticipations(competitors))
	for i := range competitors {
		competitors[i].TieBreak = tb[competitors[i].ID].Primary(t.TieBreak)
	}

	strategy, err := s.strategy(t, round)
	if err != nil {
		return domain.Round{}, err
	}
	start := time.Now()
	next, err := strategy.GeneratePairings(competitors, round, snap.rounds)
	s.metrics.ObserveRound(t.Kind, time.Since(start), err)
	if err != nil {
		return domain.Round{}, err
	}

	games := append(slices.Clone(snap.games), convertRoundToGames(next)...)
	scores := scoresFor(competitors, tiebreak.Scores(games))
	if err := s.storage.SaveRound(ctx, t.ID, next, scores); err != nil {
		return domain.Round{}, err
	}
	s.cache.InvalidateStandings(t.ID)
	s.log.WithFields(logrus.Fields{
		"tournament": t.ID,
		"round":      next.Number,
		"boards":     len(next.Pairings),
		"bye":        next.Bye != nil,
		"rematches":  next.Rematches(),
	}).Info("round paired")
	return next, nil
}

// Schedule returns the whole round-robin timetable without storing it.
func (s *TournamentService) Schedule(ctx context.Context, tournamentID uuid.UUID) ([]domain.Round, error) {
	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if snap.tournament.Kind != domain.RoundRobin {
		return nil, fmt.Errorf("%w: only round-robin tournaments have a fixed schedule", domain.ErrInvalidInput)
	}
	rr := pairing.NewRoundRobin(snap.tournament.RoundCount, pairing.Options{
		Log: s.log.WithField("tournament", tournamentID),
	})
	return rr.GenerateAllRounds(snap.competitors)
}

func pendingGames(games []domain.Game, round int) int {
	n := 0
	for _, g := range games {
		if g.Round == round && domain.ParseResult(string(g.Result)) == domain.ResultNotPlayed {
			n++
		}
	}
	return n
}
