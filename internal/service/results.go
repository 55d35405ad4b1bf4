package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/goserg/pairingserver/internal/domain"
	"github.com/goserg/pairingserver/internal/storage"
	"github.com/goserg/pairingserver/internal/tiebreak"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RecordResult stores a result for a board and refreshes every score.
// Strings outside the result vocabulary are stored as not played.
func (s *TournamentService) RecordResult(ctx context.Context, tournamentID uuid.UUID, gameID int, result string) (domain.Game, error) {
	unlock, err := s.lock(tournamentID)
	if err != nil {
		return domain.Game{}, err
	}
	defer unlock()

	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return domain.Game{}, err
	}
	if snap.tournament.Finalized {
		return domain.Game{}, fmt.Errorf("tournament %s: %w", tournamentID, storage.ErrAlreadyFinalized)
	}
	i := slices.IndexFunc(snap.games, func(g domain.Game) bool { return g.ID == gameID })
	if i < 0 {
		return domain.Game{}, fmt.Errorf("game %d: %w", gameID, storage.ErrNotFound)
	}
	if snap.games[i].IsBye() {
		return domain.Game{}, fmt.Errorf("%w: game %d is a bye", domain.ErrInvalidInput, gameID)
	}

	parsed := domain.ParseResult(result)
	if parsed == domain.ResultNotPlayed && !domain.Result(result).Known() {
		s.log.WithFields(logrus.Fields{"game": gameID, "result": result}).Warn("unknown result, storing as not played")
	}
	games := slices.Clone(snap.games)
	games[i].Result = parsed
	scores := scoresFor(snap.competitors, tiebreak.Scores(games))
	if err := s.storage.RecordResult(ctx, tournamentID, gameID, parsed, scores); err != nil {
		return domain.Game{}, err
	}
	s.metrics.ResultRecorded()
	s.cache.InvalidateStandings(tournamentID)
	return games[i], nil
}

// Standings ranks competitors by score, the tournament's tie-break,
// Sonneborn-Berger and rating.
func (s *TournamentService) Standings(ctx context.Context, tournamentID uuid.UUID) ([]domain.Standing, error) {
	if cached, ok := s.cache.GetStandings(tournamentID); ok {
		return cached, nil
	}
	gen := s.cache.StandingsGeneration(tournamentID)
	snap, err := s.loadSnapshot(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	standings := computeStandings(snap)
	if !s.cache.UpdateStandings(tournamentID, gen, standings) {
		s.log.WithField("tournament", tournamentID).Debug("standings changed while computing, not cached")
	}
	return standings, nil
}

func computeStandings(snap snapshot) []domain.Standing {
	policy := snap.tournament.TieBreak
	tb := tiebreak.Compute(snap.tournament, snap.games, convertCompetitorsToParticipations(snap.competitors))

	standings := make([]domain.Standing, 0, len(snap.competitors))
	for _, c := range snap.competitors {
		standings = append(standings, domain.Standing{
			CompetitorID: c.ID,
			Name:         c.Name,
			Rating:       c.Rating,
			Score:        c.Score,
			TieBreaks:    tb[c.ID],
		})
	}
	slices.SortStableFunc(standings, func(a, b domain.Standing) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TieBreaks.Primary(policy), a.TieBreaks.Primary(policy)); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TieBreaks.SonnebornBerger, a.TieBreaks.SonnebornBerger); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.CompetitorID, b.CompetitorID)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
