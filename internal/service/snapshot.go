package service

import (
	"context"

	"github.com/goserg/pairingserver/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// snapshot is everything the engine needs about one tournament, read
// before any write.
type snapshot struct {
	tournament  domain.Tournament
	competitors []domain.Competitor
	rounds      []domain.Round
	games       []domain.Game
}

func (s *TournamentService) loadSnapshot(ctx context.Context, id uuid.UUID) (snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := s.storage.GetTournament(ctx, id)
		if err != nil {
			return err
		}
		snap.tournament = t
		return nil
	})
	g.Go(func() error {
		competitors, err := s.storage.ListCompetitors(ctx, id)
		if err != nil {
			return err
		}
		snap.competitors = competitors
		return nil
	})
	g.Go(func() error {
		rounds, err := s.storage.ListRounds(ctx, id)
		if err != nil {
			return err
		}
		snap.rounds = rounds
		return nil
	})
	g.Go(func() error {
		games, err := s.storage.ListGames(ctx, id)
		if err != nil {
			return err
		}
		snap.games = games
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}
