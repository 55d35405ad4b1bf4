package sqlite

import (
	"github.com/goserg/pairingserver/gen/model"
	"github.com/goserg/pairingserver/internal/domain"

	"github.com/google/uuid"
)

func convertPlayerToDomain(player model.Players) domain.Player {
	p := domain.Player{
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
		Rating:       int(player.Rating),
		PeakRating:   int(player.PeakRating),
	}
	if player.ID != nil {
		p.ID = int(*player.ID)
	}
	return p
}

func convertPlayersToDomain(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerToDomain(player))
	}
	return converted
}

func convertPlayerFromDomain(player domain.Player, normalizedName string) model.Players {
	return model.Players{
		Name:           player.Name,
		NormalizedName: normalizedName,
		Rating:         int32(player.Rating),
		PeakRating:     int32(max(player.PeakRating, player.Rating)),
		CreatedAt:      player.RegisteredAt,
	}
}

func convertTournamentToDomain(t model.Tournaments) (domain.Tournament, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return domain.Tournament{}, err
	}
	return domain.Tournament{
		ID:         id,
		Name:       t.Name,
		Kind:       domain.Kind(t.Kind),
		RoundCount: int(t.RoundCount),
		TieBreak:   domain.TieBreakPolicy(t.TieBreak),
		Finalized:  t.Finalized,
		CreatedAt:  t.CreatedAt,
	}, nil
}

func convertTournamentFromDomain(t domain.Tournament) model.Tournaments {
	return model.Tournaments{
		ID:         t.ID.String(),
		Name:       t.Name,
		Kind:       string(t.Kind),
		RoundCount: int32(t.RoundCount),
		TieBreak:   string(t.TieBreak),
		Finalized:  t.Finalized,
		CreatedAt:  t.CreatedAt,
	}
}

func convertGameToDomain(g model.Games) domain.Game {
	game := domain.Game{
		Round:   int(g.Round),
		Board:   int(g.Board),
		Player1: int(g.Player1),
		Player2: int(g.Player2),
		Color1:  domain.ParseColor(g.Color1),
		Color2:  domain.ParseColor(g.Color2),
		Result:  domain.ParseResult(g.Result),
		Rematch: g.Rematch,
	}
	if g.ID != nil {
		game.ID = int(*g.ID)
	}
	return game
}

func convertGamesToDomain(games []model.Games) []domain.Game {
	converted := make([]domain.Game, 0, len(games))
	for _, g := range games {
		converted = append(converted, convertGameToDomain(g))
	}
	return converted
}

// convertRoundToGames numbers the boards from 1 and stores the bye last with
// its point already recorded.
func convertRoundToGames(tournamentID uuid.UUID, round domain.Round) []model.Games {
	games := make([]model.Games, 0, len(round.Pairings)+1)
	for i, p := range round.All() {
		result := domain.ResultNotPlayed
		if p.IsBye() {
			result = domain.ResultBye
		}
		games = append(games, model.Games{
			TournamentID: tournamentID.String(),
			Round:        int32(round.Number),
			Board:        int32(i + 1),
			Player1:      int32(p.Player1),
			Player2:      int32(p.Player2),
			Color1:       p.Color1.String(),
			Color2:       p.Color2.String(),
			Result:       string(result),
			Rematch:      p.Rematch,
		})
	}
	return games
}

func convertRoundToHistory(tournamentID uuid.UUID, round domain.Round) []model.HistoryEntries {
	entries := make([]model.HistoryEntries, 0, 2*len(round.Pairings)+1)
	add := func(player, opponent int, color domain.Color) {
		entries = append(entries, model.HistoryEntries{
			TournamentID: tournamentID.String(),
			PlayerID:     int32(player),
			Round:        int32(round.Number),
			OpponentID:   int32(opponent),
			Color:        color.String(),
		})
	}
	for _, p := range round.All() {
		add(p.Player1, p.Player2, p.Color1)
		if !p.IsBye() {
			add(p.Player2, p.Player1, p.Color2)
		}
	}
	return entries
}

// convertGamesToRounds groups games by round. Rounds without games still
// appear, in number order.
func convertGamesToRounds(numbers []int, games []domain.Game) []domain.Round {
	rounds := make([]domain.Round, 0, len(numbers))
	index := make(map[int]int, len(numbers))
	for _, n := range numbers {
		index[n] = len(rounds)
		rounds = append(rounds, domain.Round{Number: n})
	}
	for _, g := range games {
		i, ok := index[g.Round]
		if !ok {
			continue
		}
		p := domain.Pairing{
			Player1: g.Player1,
			Player2: g.Player2,
			Color1:  g.Color1,
			Color2:  g.Color2,
			Rematch: g.Rematch,
		}
		if p.IsBye() {
			rounds[i].Bye = &p
			continue
		}
		rounds[i].Pairings = append(rounds[i].Pairings, p)
	}
	return rounds
}
