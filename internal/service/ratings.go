package service

import (
	"context"
	"fmt"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/elo"
	"github.com/goserg/pairingserver/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FinalizeRatings closes the tournament and applies Elo changes to the
// club ratings. It runs at most once per tournament: the in-process lock
// rejects concurrent calls and storage rejects a second closure.
func (s *TournamentService) FinalizeRatings(ctx context.Context, tournamentID uuid.UUID) (map[int]elo.Change, error) {
	unlock, err := s.lock(tournamentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if snap.tournament.Finalized {
		return nil, fmt.Errorf("tournament %s: %w", tournamentID, storage.ErrAlreadyFinalized)
	}
	if pending := pendingGames(snap.games, len(snap.rounds)); pending > 0 {
		s.log.WithFields(logrus.Fields{
			"tournament": tournamentID,
			"pending":    pending,
		}).Warn("finalizing with unplayed games in the last round")
	}

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	peaks := make(map[int]int, len(players))
	for _, p := range players {
		peaks[p.ID] = p.PeakRating
	}
	rated := make([]elo.Rated, 0, len(snap.competitors))
	for _, c := range snap.competitors {
		rated = append(rated, elo.Rated{ID: c.ID, Rating: c.Rating, Peak: peaks[c.ID]})
	}

	changes, err := elo.RatingDeltas(rated, snap.games)
	if err != nil {
		return nil, err
	}
	if err := s.storage.FinalizeRatings(ctx, tournamentID, changes); err != nil {
		return nil, err
	}

	deltas := make([]int, 0, len(changes))
	for _, c := range changes {
		deltas = append(deltas, c.Delta)
	}
	s.metrics.RatingsFinalized(deltas)
	s.cache.InvalidatePlayers()
	s.cache.InvalidateStandings(tournamentID)
	s.log.WithFields(logrus.Fields{
		"tournament": tournamentID,
		"players":    len(changes),
	}).Info("ratings finalized")
	return changes, nil
}

// PreviewGame shows how one rated game between two club players would move
// both ratings. Nothing is stored.
func (s *TournamentService) PreviewGame(ctx context.Context, player1, player2 int, result string) (elo.Change, elo.Change, error) {
	if player1 == player2 {
		return elo.Change{}, elo.Change{}, fmt.Errorf("%w: a player cannot meet themselves", domain.ErrInvalidInput)
	}
	out := domain.ParseResult(result).Outcome()
	if !out.Played {
		return elo.Change{}, elo.Change{}, fmt.Errorf("%w: result %q is not a rated game", domain.ErrInvalidInput, result)
	}
	a, err := s.storage.GetPlayer(ctx, player1)
	if err != nil {
		return elo.Change{}, elo.Change{}, err
	}
	b, err := s.storage.GetPlayer(ctx, player2)
	if err != nil {
		return elo.Change{}, elo.Change{}, err
	}
	return previewChange(a, b, elo.Points(out.Points1)), previewChange(b, a, elo.Points(out.Points2)), nil
}

func previewChange(p, opp domain.Player, sa elo.Points) elo.Change {
	next := elo.Calculate(p.Rating, opp.Rating, elo.K, sa)
	return elo.Change{
		Old:   p.Rating,
		New:   next,
		Delta: next - p.Rating,
		Peak:  max(p.PeakRating, next),
	}
}
